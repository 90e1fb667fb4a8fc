package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joseph-ayodele/label-intake/internal/common"
	"github.com/joseph-ayodele/label-intake/internal/ingest"
	"github.com/joseph-ayodele/label-intake/internal/pipeline"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

// stdinArg reads one payload from standard input.
const stdinArg = "-"

// expandInputs turns file, directory and "-" arguments into a flat list.
// Directories are scanned for raw-extraction files; duplicate content is
// skipped.
func (a *app) expandInputs(ctx context.Context, args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == stdinArg {
			out = append(out, arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, common.NewAppError("INPUT_NOT_FOUND", arg, common.ErrNotFound)
			}
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}

		results, stats, err := ingest.ScanDirectory(ctx, arg, nil, true)
		if err != nil {
			return nil, err
		}
		a.logger.Info("cli.scan.ok", "root", arg, "matched", stats.Matched, "duplicates", stats.Duplicates, "failed", stats.Failed)
		for _, r := range results {
			switch {
			case r.Err != "":
				a.logger.Warn("cli.scan.skip", "path", r.Path, "err", r.Err)
			case r.Duplicate:
				a.logger.Info("cli.scan.duplicate", "path", r.Path)
			case !pipeline.IsResultFile(r.Path):
				out = append(out, r.Path)
			}
		}
	}
	if len(out) == 0 {
		return nil, common.NewAppError("NO_INPUT", "no raw-extraction files found", common.ErrInvalidInput)
	}
	return out, nil
}

// runInputs processes every input. Failed inputs are logged and reported in
// the joined error; batches for the rest are still returned.
func (a *app) runInputs(ctx context.Context, args []string, stdin io.Reader, stdinFormat vision.Format, withReport bool) ([]pipeline.Batch, error) {
	inputs, err := a.expandInputs(ctx, args)
	if err != nil {
		return nil, err
	}

	r := a.runner()
	var (
		batches []pipeline.Batch
		errs    []error
	)
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return batches, err
		}

		var b pipeline.Batch
		if in == stdinArg {
			data, rerr := io.ReadAll(stdin)
			if rerr != nil {
				errs = append(errs, fmt.Errorf("read stdin: %w", rerr))
				continue
			}
			b, err = r.Run(ctx, "stdin", data, stdinFormat, withReport)
		} else {
			b, _, err = r.RunFile(ctx, in, withReport)
		}
		if err != nil {
			a.logger.Error("cli.input.failed", "input", in, "err", err)
			errs = append(errs, err)
			continue
		}
		batches = append(batches, b)
	}
	return batches, errors.Join(errs...)
}
