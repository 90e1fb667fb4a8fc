package main

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/internal/async"
	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/ingest"
	"github.com/joseph-ayodele/label-intake/internal/pipeline"
)

type watchSummary struct {
	Roots     []string `json:"roots" yaml:"roots"`
	OutputDir string   `json:"outputDir" yaml:"outputDir"`
	Processed int64    `json:"processed" yaml:"processed"`
	Failed    int64    `json:"failed" yaml:"failed"`
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		outDir        string
		initialScan   bool
		force         bool
		handleTimeout time.Duration
		drainTimeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch DIR...",
		Short: "Process raw label extractions as they land in a directory",
		Long: `Watch follows the given directories (recursively) and processes every new or
changed .json/.yaml/.yml file, writing NAME.result.yaml (or .json) into the
output directory. Files whose content was already processed are skipped
unless --force is set. Stop with Ctrl-C; queued files are drained first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if outDir == "" {
				outDir = a.cfg.Watch.OutputDir
			}
			if outDir == "" {
				outDir = filepath.Join(args[0], "results")
			}
			absOut, err := filepath.Abs(outDir)
			if err != nil {
				return err
			}

			sink, err := pipeline.NewFileSink(a.runner(), absOut, a.format, a.logger)
			if err != nil {
				return err
			}
			q := async.NewWorkerQueue(sink.Handle, a.logger,
				async.WithWorkers(a.cfg.Watch.Workers),
				async.WithQueueSize(a.cfg.Watch.QueueSize),
				async.WithHandleTimeout(handleTimeout),
			)

			events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
				Roots:       args,
				SkipHidden:  true,
				InitialScan: initialScan,
				Debounce:    a.cfg.Watch.Debounce,
				Logger:      a.logger,
			})
			if err != nil {
				q.Shutdown(context.Background())
				return err
			}
			a.logger.Info("cli.watch.started", "roots", args, "output_dir", absOut, "workers", a.cfg.Watch.Workers)

			pump(ctx, a, q, events, errs, absOut, force)

			drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			defer cancel()
			q.Shutdown(drainCtx)

			stats := q.Stats()
			return export.Encode(cmd.OutOrStdout(), a.format, watchSummary{
				Roots:     args,
				OutputDir: absOut,
				Processed: stats.Processed,
				Failed:    stats.Failed,
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for result files (default: watch.output_dir or DIR/results)")
	cmd.Flags().BoolVar(&initialScan, "initial-scan", true, "process files already present at start")
	cmd.Flags().BoolVar(&force, "force", false, "reprocess files even when their content was seen before")
	cmd.Flags().DurationVar(&handleTimeout, "timeout", time.Minute, "per-file processing timeout")
	cmd.Flags().DurationVar(&drainTimeout, "drain-timeout", 30*time.Second, "how long to wait for queued files on shutdown")
	return cmd
}

// pump feeds watcher events into the queue until ctx ends or the watcher
// stops.
func pump(ctx context.Context, a *app, q async.Queue, events <-chan string, errs <-chan error, outDir string, force bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			a.logger.Warn("cli.watch.error", "err", err)
		case p, ok := <-events:
			if !ok {
				return
			}
			if pipeline.IsResultFile(p) || within(outDir, p) {
				continue
			}
			job := async.NewJob(p)
			job.Force = force
			if err := q.Enqueue(ctx, job); err != nil {
				a.logger.Warn("cli.watch.enqueue_failed", "path", p, "err", err)
			}
		}
	}
}

func within(dir, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
