// Package carrier classifies a shipment into one of the supported carriers
// from its tracking number, the vision model's carrier guess and the label text.
package carrier

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/label-intake/constants"
)

// minTrackingLen is the shortest cleaned tracking string worth matching.
const minTrackingLen = 6

var reTrackingSeparators = regexp.MustCompile(`[\s-]`)

// Identification is the carrier decision and the rule that produced it.
type Identification struct {
	Carrier     constants.Carrier    `json:"carrier"`
	Confidence  constants.Confidence `json:"confidence"`
	MatchedRule string               `json:"matchedRule"`
}

// Identify picks a carrier using, in order: tracking-number format, the
// AI carrier guess, brand keywords in the label text, and finally the
// unvalidated guess. Empty strings mean the signal is absent.
//
// Format evidence always wins over a name: a 1Z number is UPS even when the
// guess says FedEx.
func Identify(tracking, carrierGuess, labelText string) Identification {
	clean := reTrackingSeparators.ReplaceAllString(strings.TrimSpace(tracking), "")

	if len(clean) >= minTrackingLen {
		for _, r := range trackingRules {
			if r.pattern.MatchString(clean) {
				return Identification{Carrier: r.carrier, Confidence: r.confidence, MatchedRule: r.rule}
			}
		}
	}

	if carrierGuess != "" {
		if c, ok := constants.CanonicalizeCarrier(carrierGuess); ok {
			return Identification{
				Carrier:     c,
				Confidence:  constants.ConfidenceMedium,
				MatchedRule: "AI vision identified: " + carrierGuess,
			}
		}
	}

	if labelText != "" {
		for _, tr := range textRules {
			for _, p := range tr.patterns {
				if p.MatchString(labelText) {
					return Identification{Carrier: tr.carrier, Confidence: tr.confidence, MatchedRule: tr.rule}
				}
			}
		}
	}

	// Keep the model's signal around, flagged, rather than dropping it.
	if strings.TrimSpace(carrierGuess) != "" {
		c, _ := constants.CanonicalizeCarrier(carrierGuess)
		return Identification{
			Carrier:     c,
			Confidence:  constants.ConfidenceLow,
			MatchedRule: "AI carrier (unvalidated): " + carrierGuess,
		}
	}

	return Identification{
		Carrier:     constants.CarrierOther,
		Confidence:  constants.ConfidenceLow,
		MatchedRule: "No carrier identified",
	}
}
