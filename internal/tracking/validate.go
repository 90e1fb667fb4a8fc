// Package tracking normalizes tracking numbers read off a label and checks
// them against the format rules of the identified carrier.
package tracking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/label-intake/constants"
)

const minLength = 6

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reOCRNoise   = regexp.MustCompile(`^[#*:]+|[#*:]+$`)
)

// Validation is the cleaned tracking number plus the verdict on its format.
// An invalid number is still returned cleaned; it is never discarded.
type Validation struct {
	TrackingNumber string   `json:"trackingNumber"`
	Valid          bool     `json:"valid"`
	Rule           string   `json:"rule"`
	Corrections    []string `json:"corrections"`
}

// Normalize applies the cleanup steps in a fixed order and reports every
// step that changed the string.
func Normalize(raw string) (string, []string) {
	corrections := make([]string, 0, 4)
	cleaned := strings.TrimSpace(raw)

	if reWhitespace.MatchString(cleaned) {
		cleaned = reWhitespace.ReplaceAllString(cleaned, "")
		corrections = append(corrections, "Removed embedded spaces")
	}
	if strings.Contains(cleaned, "-") {
		cleaned = strings.ReplaceAll(cleaned, "-", "")
		corrections = append(corrections, "Removed dashes")
	}
	if strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		corrections = append(corrections, "Removed dots")
	}
	if upper := strings.ToUpper(cleaned); upper != cleaned {
		cleaned = upper
		corrections = append(corrections, "Uppercased")
	}
	if stripped := reOCRNoise.ReplaceAllString(cleaned, ""); stripped != cleaned {
		cleaned = stripped
		corrections = append(corrections, "Stripped OCR noise characters")
	}
	return cleaned, corrections
}

// Validate cleans raw and checks it against the carrier's format table.
// Carriers without a table (other) get a permissive generic check.
func Validate(raw string, carrier constants.Carrier) Validation {
	if strings.TrimSpace(raw) == "" {
		return Validation{Rule: "Empty tracking number", Corrections: []string{}}
	}

	cleaned, corrections := Normalize(raw)
	if len(cleaned) < minLength {
		return Validation{
			TrackingNumber: cleaned,
			Rule:           fmt.Sprintf("Tracking number too short (< %d characters)", minLength),
			Corrections:    corrections,
		}
	}

	label := strings.ToUpper(string(carrier))
	if rules, ok := carrierFormats[carrier]; ok {
		for _, r := range rules {
			if r.pattern.MatchString(cleaned) {
				return Validation{
					TrackingNumber: cleaned,
					Valid:          true,
					Rule:           label + ": " + r.description,
					Corrections:    corrections,
				}
			}
		}
		return Validation{
			TrackingNumber: cleaned,
			Rule:           fmt.Sprintf("No %s tracking pattern matched", label),
			Corrections:    corrections,
		}
	}

	if reGeneric.MatchString(cleaned) {
		return Validation{
			TrackingNumber: cleaned,
			Valid:          true,
			Rule:           "Generic tracking format (no carrier-specific validation available)",
			Corrections:    corrections,
		}
	}
	return Validation{
		TrackingNumber: cleaned,
		Rule:           "Does not match any known tracking format",
		Corrections:    corrections,
	}
}

// HasFormat reports whether the carrier has a dedicated tracking grammar.
func HasFormat(carrier constants.Carrier) bool {
	_, ok := carrierFormats[carrier]
	return ok
}
