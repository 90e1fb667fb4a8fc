package extract

import (
	"math"

	"github.com/joseph-ayodele/label-intake/constants"
)

// DefaultBaseConfidence is used when the vision model reports no confidence.
const DefaultBaseConfidence = 0.5

// Degradation factor names, as listed in Score.Applied.
const (
	FactorTrackingInvalid = "tracking_invalid"
	FactorCarrierLow      = "carrier_low_confidence"
	FactorRecipientEmpty  = "recipient_empty"
)

var factorWeights = map[string]float64{
	FactorTrackingInvalid: 0.7,
	FactorCarrierLow:      0.8,
	FactorRecipientEmpty:  0.6,
}

// Degradations are the validation failures that lower the aggregate score.
type Degradations struct {
	TrackingInvalid bool
	CarrierLow      bool
	RecipientEmpty  bool
}

// DegradationsOf reads the degradations back off a finished result.
func DegradationsOf(r ExtractionResult) Degradations {
	return Degradations{
		TrackingInvalid: !r.TrackingNumberValid,
		CarrierLow:      r.CarrierConfidence == constants.ConfidenceLow,
		RecipientEmpty:  r.RecipientName == "",
	}
}

// Score is the aggregate confidence and the factors that produced it.
type Score struct {
	Value   float64  `json:"value"`
	Applied []string `json:"applied"`
}

// ComputeScore multiplies the base confidence by each applicable factor and
// rounds to two decimals. A nil base means DefaultBaseConfidence; the base is
// clamped to [0,1].
func ComputeScore(base *float64, d Degradations) Score {
	v := DefaultBaseConfidence
	if base != nil && !math.IsNaN(*base) {
		v = math.Max(0, math.Min(1, *base))
	}

	applied := make([]string, 0, 3)
	apply := func(on bool, name string) {
		if on {
			v *= factorWeights[name]
			applied = append(applied, name)
		}
	}
	apply(d.TrackingInvalid, FactorTrackingInvalid)
	apply(d.CarrierLow, FactorCarrierLow)
	apply(d.RecipientEmpty, FactorRecipientEmpty)

	return Score{Value: math.Round(v*100) / 100, Applied: applied}
}
