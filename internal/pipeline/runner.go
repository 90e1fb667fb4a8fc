// Package pipeline coordinates the decode and extract stages for one input
// payload and writes results out for watch mode.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/extract"
	"github.com/joseph-ayodele/label-intake/internal/ingest"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

// Item is one processed label with its review verdict.
type Item struct {
	Index  int                       `json:"index" yaml:"index"`
	Review constants.ReviewStatus    `json:"review" yaml:"review"`
	Result extract.ExtractionResult  `json:"result" yaml:"result"`
	Report []extract.FieldValidation `json:"report,omitempty" yaml:"report,omitempty"`
}

// Batch is everything produced from one input payload.
type Batch struct {
	BatchID     string    `json:"batchId" yaml:"batchId"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Count       int       `json:"count" yaml:"count"`
	NeedsReview int       `json:"needsReview" yaml:"needsReview"`
	Items       []Item    `json:"items" yaml:"items"`
}

// Results returns the bare extraction results in input order.
func (b Batch) Results() []extract.ExtractionResult {
	out := make([]extract.ExtractionResult, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.Result
	}
	return out
}

// Runner wires a vision.Decoder to an extract.Processor.
type Runner struct {
	logger        *slog.Logger
	decoder       *vision.Decoder
	proc          *extract.Processor
	minConfidence float64
}

func NewRunner(logger *slog.Logger, decoder *vision.Decoder, proc *extract.Processor, minConfidence float64) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if decoder == nil {
		decoder = vision.NewDecoder(vision.WithDecodeLogger(logger))
	}
	if proc == nil {
		proc = extract.NewProcessor(extract.WithLogger(logger))
	}
	if minConfidence <= 0 {
		minConfidence = extract.DefaultMinConfidence
	}
	return &Runner{logger: logger, decoder: decoder, proc: proc, minConfidence: minConfidence}
}

// Run decodes data, processes every label in it and attaches review status
// and, when withReport is set, the per-field validation report.
func (r *Runner) Run(ctx context.Context, source string, data []byte, format vision.Format, withReport bool) (Batch, error) {
	start := time.Now()
	batch := Batch{BatchID: uuid.NewString(), Source: source, GeneratedAt: start.UTC()}

	raws, err := r.decoder.Decode(data, format)
	if err != nil {
		r.logger.Error("pipeline.decode.failed", "source", source, "err", err)
		return batch, fmt.Errorf("decode %s: %w", source, err)
	}

	results, err := r.proc.ProcessBatch(ctx, raws)
	if err != nil {
		return batch, fmt.Errorf("process %s: %w", source, err)
	}

	batch.Items = make([]Item, len(results))
	for i, res := range results {
		it := Item{Index: i, Review: extract.Review(res, r.minConfidence), Result: res}
		if withReport {
			it.Report = extract.GenerateValidationReport(raws[i], res)
		}
		if it.Review == constants.ReviewNeedsReview {
			batch.NeedsReview++
		}
		batch.Items[i] = it
	}
	batch.Count = len(batch.Items)

	r.logger.Info("pipeline.run.ok",
		"batch_id", batch.BatchID,
		"source", source,
		"labels", batch.Count,
		"needs_review", batch.NeedsReview,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return batch, nil
}

// RunFile reads one raw-extraction file and runs it.
func (r *Runner) RunFile(ctx context.Context, path string, withReport bool) (Batch, ingest.FileResult, error) {
	data, fr, err := ingest.ReadFile(path)
	if err != nil {
		return Batch{}, fr, err
	}
	b, err := r.Run(ctx, fr.Path, data, vision.FormatForExt(fr.Ext), withReport)
	return b, fr, err
}

func (r *Runner) MinConfidence() float64 { return r.minConfidence }
