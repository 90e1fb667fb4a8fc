// Package extract runs raw vision-model output through carrier
// identification, tracking validation, recipient parsing and service-type
// detection, and assembles the scored result.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/carrier"
	"github.com/joseph-ayodele/label-intake/internal/recipient"
	"github.com/joseph-ayodele/label-intake/internal/servicetype"
	"github.com/joseph-ayodele/label-intake/internal/tracking"
)

// Processor turns RawExtractions into ExtractionResults. It holds no
// per-record state and is safe for concurrent use.
type Processor struct {
	logger       *slog.Logger
	workers      int
	textTracking bool
}

type Option func(*Processor)

func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithWorkers bounds how many records ProcessBatch handles at once.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithTextTrackingFallback makes Process pull a tracking number out of the
// raw label text when the tracking field is blank.
func WithTextTrackingFallback(on bool) Option {
	return func(p *Processor) { p.textTracking = on }
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		logger:  slog.Default(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process validates and normalizes one label. It never fails: missing or
// malformed fields fall back to defaults and lower the confidence.
func (p *Processor) Process(raw RawExtraction) ExtractionResult {
	trackingInput := raw.TrackingNumber
	if p.textTracking && strings.TrimSpace(trackingInput) == "" && raw.RawLabelText != "" {
		if candidates := tracking.ExtractFromText(raw.RawLabelText); len(candidates) > 0 {
			trackingInput = candidates[0]
			p.logger.Debug("extract.tracking.recovered", "candidate", trackingInput, "candidates", len(candidates))
		}
	}

	// 1) carrier
	id := carrier.Identify(trackingInput, raw.Carrier, raw.RawLabelText)

	// 2) tracking, validated against the identified carrier
	tv := tracking.Validate(trackingInput, id.Carrier)

	// 3) recipient
	rp := recipient.Parse(raw.RecipientName)

	// 4) service type, from everything above
	st := servicetype.Detect(servicetype.Context{
		RecipientAddress: raw.RecipientAddress,
		RecipientName:    rp.Name,
		PMBNumber:        raw.PMBNumber,
		Carrier:          id.Carrier,
		TrackingNumber:   tv.TrackingNumber,
		RawLabelText:     raw.RawLabelText,
		SenderName:       raw.SenderName,
	})

	// 5) PMB and 6) size
	pmb := NormalizePMB(raw.PMBNumber)
	size := constants.NormalizePackageSize(raw.PackageSize)

	// 7) score
	score := ComputeScore(raw.Confidence, Degradations{
		TrackingInvalid: !tv.Valid,
		CarrierLow:      id.Confidence == constants.ConfidenceLow,
		RecipientEmpty:  rp.Name == "",
	})

	p.logger.Debug("extract.process.ok",
		"carrier", id.Carrier,
		"carrier_rule", id.MatchedRule,
		"tracking_valid", tv.Valid,
		"service_type", st.ServiceType,
		"confidence", score.Value,
		"degradations", score.Applied,
	)

	return ExtractionResult{
		Carrier:            id.Carrier,
		CarrierConfidence:  id.Confidence,
		CarrierMatchedRule: id.MatchedRule,

		TrackingNumber:         tv.TrackingNumber,
		TrackingNumberValid:    tv.Valid,
		TrackingValidationRule: tv.Rule,

		RecipientName:       rp.Name,
		RecipientIsBusiness: rp.IsBusiness,
		RecipientNameRaw:    rp.RawInput,

		ServiceType:            st.ServiceType,
		ServiceTypeMatchedRule: st.MatchedRule,

		PMBNumber:     pmb,
		SenderName:    strings.TrimSpace(raw.SenderName),
		SenderAddress: strings.TrimSpace(raw.SenderAddress),
		PackageSize:   size,
		Confidence:    score.Value,
	}
}

// ProcessBatch processes records independently on a bounded pool of
// goroutines. Output order matches input order. The only error is ctx's.
func (p *Processor) ProcessBatch(ctx context.Context, raws []RawExtraction) ([]ExtractionResult, error) {
	out := make([]ExtractionResult, len(raws))
	if len(raws) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.Process(raws[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.logger.Warn("extract.batch.canceled", "records", len(raws), "err", err)
		return nil, fmt.Errorf("process batch: %w", err)
	}

	p.logger.Debug("extract.batch.ok", "records", len(raws), "workers", p.workers)
	return out, nil
}
