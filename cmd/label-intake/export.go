package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/extract"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out         string
		stdinFormat string
	)

	cmd := &cobra.Command{
		Use:   "export --out FILE.xlsx [file|dir|-]...",
		Short: "Write a check-in workbook for the given label extractions",
		Long: `Export processes the inputs like process and writes an XLSX workbook with a
CheckIn sheet: one row per label, with rows that need a human review
highlighted. Use --out - to write the workbook to standard output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, runErr := a.runInputs(cmd.Context(), args, cmd.InOrStdin(), vision.Format(stdinFormat), false)
			if len(batches) == 0 {
				return runErr
			}

			var results []extract.ExtractionResult
			for _, b := range batches {
				results = append(results, b.Results()...)
			}

			svc := export.NewService(a.logger)
			if out == "-" {
				return errors.Join(svc.WriteXLSX(cmd.OutOrStdout(), results, a.cfg.Review.MinConfidence), runErr)
			}
			if err := writeFileAtomic(out, func(w io.Writer) error {
				return svc.WriteXLSX(w, results, a.cfg.Review.MinConfidence)
			}); err != nil {
				return errors.Join(err, runErr)
			}
			a.logger.Info("cli.export.written", "path", out, "rows", len(results))
			return runErr
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output XLSX path, or - for standard output")
	cmd.Flags().StringVar(&stdinFormat, "stdin-format", "json", "format of standard input: json or yaml")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// writeFileAtomic writes through a temp file in the target directory.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
