package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/label-intake/internal/async"
	"github.com/joseph-ayodele/label-intake/internal/common"
	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/ingest"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

// resultMarker tags files written by the watch sink so they are not picked
// up again as input.
const resultMarker = ".result."

// IsResultFile reports whether path was written by a FileSink.
func IsResultFile(path string) bool {
	return strings.Contains(filepath.Base(path), resultMarker)
}

// ResultPath is where the batch for input is written inside dir.
func ResultPath(dir, input string, format export.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+resultMarker+format.Ext())
}

// FileSink processes watched files and writes one result file per input.
type FileSink struct {
	runner *Runner
	dir    string
	format export.Format
	seen   *ingest.Registry
	logger *slog.Logger
}

func NewFileSink(runner *Runner, dir string, format export.Format, logger *slog.Logger) (*FileSink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if format != export.FormatJSON && format != export.FormatYAML {
		return nil, common.NewAppError("BAD_FORMAT", fmt.Sprintf("watch output must be yaml or json, got %q", format), common.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileSink{runner: runner, dir: dir, format: format, seen: ingest.NewRegistry(), logger: logger}, nil
}

// Handle is an async.Handler.
func (s *FileSink) Handle(ctx context.Context, job async.Job) error {
	logger := common.LoggerFromContext(common.WithLogger(ctx, s.logger))
	if IsResultFile(job.Path) {
		return nil
	}

	data, fr, err := ingest.ReadFile(job.Path)
	if err != nil {
		return err
	}
	if first, fresh := s.seen.Mark(fr.HashHex, fr.Path); !fresh && !job.Force {
		logger.Info("pipeline.sink.skip_duplicate", "path", fr.Path, "first", first)
		return nil
	}

	batch, err := s.runner.Run(ctx, fr.Path, data, vision.FormatForExt(fr.Ext), false)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, s.format, batch); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out := ResultPath(s.dir, fr.Path, s.format)
	tmp := out + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if err := os.Rename(tmp, out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	logger.Info("pipeline.sink.written", "input", fr.Path, "output", out,
		"labels", batch.Count, "needs_review", batch.NeedsReview)
	return nil
}
