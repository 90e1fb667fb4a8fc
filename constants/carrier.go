package constants

import (
	"regexp"
	"strings"
)

// Carrier is the canonical carrier id stored on a checked-in package.
type Carrier string

const (
	CarrierAmazon    Carrier = "amazon"
	CarrierUPS       Carrier = "ups"
	CarrierFedEx     Carrier = "fedex"
	CarrierUSPS      Carrier = "usps"
	CarrierDHL       Carrier = "dhl"
	CarrierLaserShip Carrier = "lasership"
	CarrierOnTrac    Carrier = "ontrac"
	CarrierOther     Carrier = "other"
)

var allCarriers = []Carrier{
	CarrierAmazon,
	CarrierUPS,
	CarrierFedEx,
	CarrierUSPS,
	CarrierDHL,
	CarrierLaserShip,
	CarrierOnTrac,
	CarrierOther,
}

// AllCarriers returns every supported carrier, "other" last.
func AllCarriers() []Carrier {
	out := make([]Carrier, len(allCarriers))
	copy(out, allCarriers)
	return out
}

// CarriersAsStringSlice is used for schema enums and prompts.
func CarriersAsStringSlice() []string {
	result := make([]string, len(allCarriers))
	for i, c := range allCarriers {
		result[i] = string(c)
	}
	return result
}

// carrierAliases maps cleaned free text to a carrier. Retail brands that
// ship through someone else's network resolve to "other" on purpose.
var carrierAliases = map[string]Carrier{
	"amazon":           CarrierAmazon,
	"amazon.com":       CarrierAmazon,
	"amzl":             CarrierAmazon,
	"amazon logistics": CarrierAmazon,

	"ups":                   CarrierUPS,
	"united parcel service": CarrierUPS,

	"fedex":           CarrierFedEx,
	"federal express": CarrierFedEx,
	"fdx":             CarrierFedEx,

	"usps":                         CarrierUSPS,
	"us postal service":            CarrierUSPS,
	"united states postal service": CarrierUSPS,
	"us mail":                      CarrierUSPS,

	"dhl":           CarrierDHL,
	"dhl express":   CarrierDHL,
	"dhl ecommerce": CarrierDHL,

	"lasership":  CarrierLaserShip,
	"laser ship": CarrierLaserShip,
	"lso":        CarrierLaserShip,

	"ontrac":  CarrierOnTrac,
	"on trac": CarrierOnTrac,

	"temu":    CarrierOther,
	"shein":   CarrierOther,
	"walmart": CarrierOther,
	"target":  CarrierOther,
}

var reCarrierNoise = regexp.MustCompile(`[^a-z0-9\s.]`)

// CanonicalizeCarrier maps a free-text carrier name to a Carrier.
// The bool is false when the name is not a recognized carrier; the
// returned carrier is then always CarrierOther.
func CanonicalizeCarrier(input string) (Carrier, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return CarrierOther, false
	}
	cleaned = strings.TrimSpace(reCarrierNoise.ReplaceAllString(cleaned, ""))

	if c, ok := carrierAliases[cleaned]; ok && c != CarrierOther {
		return c, true
	}
	return CarrierOther, false
}

// Valid reports whether c is one of the closed set of carriers.
func (c Carrier) Valid() bool {
	for _, known := range allCarriers {
		if c == known {
			return true
		}
	}
	return false
}

func (c Carrier) String() string { return string(c) }
