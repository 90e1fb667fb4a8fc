package main

import (
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

func newProcessCmd(a *app) *cobra.Command {
	var stdinFormat string

	cmd := &cobra.Command{
		Use:   "process [file|dir|-]...",
		Short: "Validate and normalize raw label extractions",
		Long: `Process reads raw vision-model output (JSON or YAML; a single label, an array
of labels, or {"labels": [...]}) and prints one batch per input with the
normalized record and review status of every label.

Directories are scanned for .json, .yaml and .yml files. Use "-" to read
standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printBatches(cmd, args, stdinFormat, false)
		},
	}
	cmd.Flags().StringVar(&stdinFormat, "stdin-format", "json", "format of standard input: json or yaml")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var stdinFormat string

	cmd := &cobra.Command{
		Use:   "report [file|dir|-]...",
		Short: "Process labels and include the per-field validation report",
		Long: `Report works like process and adds, for every label, what was decided for each
field versus the raw input: carrier, tracking number, recipient, service type,
PMB, package size and the confidence degradations applied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printBatches(cmd, args, stdinFormat, true)
		},
	}
	cmd.Flags().StringVar(&stdinFormat, "stdin-format", "json", "format of standard input: json or yaml")
	return cmd
}

func (a *app) printBatches(cmd *cobra.Command, args []string, stdinFormat string, withReport bool) error {
	batches, runErr := a.runInputs(cmd.Context(), args, cmd.InOrStdin(), vision.Format(stdinFormat), withReport)
	if len(batches) > 0 {
		if err := export.Encode(cmd.OutOrStdout(), a.format, batches); err != nil {
			return err
		}
	}
	return runErr
}
