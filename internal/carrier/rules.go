package carrier

import (
	"regexp"

	"github.com/joseph-ayodele/label-intake/constants"
)

// trackingRule classifies a cleaned tracking string by its format.
type trackingRule struct {
	carrier    constants.Carrier
	pattern    *regexp.Regexp
	confidence constants.Confidence
	rule       string
}

// trackingRules is evaluated top to bottom. USPS must stay ahead of the
// FedEx digit-count rules: 20 and 22 digit USPS numbers also satisfy them.
var trackingRules = []trackingRule{
	// Amazon
	{constants.CarrierAmazon, regexp.MustCompile(`(?i)^TBA\d{10,15}$`), constants.ConfidenceHigh,
		"Amazon: TBA prefix + 10-15 digits"},

	// UPS
	{constants.CarrierUPS, regexp.MustCompile(`(?i)^1Z[A-Z0-9]{16}$`), constants.ConfidenceHigh,
		"UPS: 1Z + 16 alphanumeric"},
	{constants.CarrierUPS, regexp.MustCompile(`^(T|J)\d{10}$`), constants.ConfidenceMedium,
		"UPS: T/J + 10 digits (Mail Innovations)"},

	// LaserShip
	{constants.CarrierLaserShip, regexp.MustCompile(`(?i)^1LS\d{12,}$`), constants.ConfidenceHigh,
		"LaserShip: 1LS + 12+ digits"},
	{constants.CarrierLaserShip, regexp.MustCompile(`(?i)^LS\d{10,}$`), constants.ConfidenceMedium,
		"LaserShip: LS + 10+ digits"},
	{constants.CarrierLaserShip, regexp.MustCompile(`(?i)^LX\d{10,}$`), constants.ConfidenceMedium,
		"LaserShip: LX + 10+ digits"},

	// OnTrac
	{constants.CarrierOnTrac, regexp.MustCompile(`^C\d{8,14}$`), constants.ConfidenceMedium,
		"OnTrac: C + 8-14 digits"},
	{constants.CarrierOnTrac, regexp.MustCompile(`^D\d{14}$`), constants.ConfidenceMedium,
		"OnTrac: D + 14 digits"},

	// DHL
	{constants.CarrierDHL, regexp.MustCompile(`^JD\d{18,}$`), constants.ConfidenceHigh,
		"DHL: JD + 18+ digits (eCommerce)"},
	{constants.CarrierDHL, regexp.MustCompile(`^[A-Z]{3}\d{7}$`), constants.ConfidenceMedium,
		"DHL: 3 letters + 7 digits (waybill)"},

	// USPS
	{constants.CarrierUSPS, regexp.MustCompile(`^(94|93|92)\d{18,22}$`), constants.ConfidenceHigh,
		"USPS: 92/93/94 prefix + 18-22 digits"},
	{constants.CarrierUSPS, regexp.MustCompile(`^7[0-9]\d{18,}$`), constants.ConfidenceHigh,
		"USPS: 70-79 prefix + 18+ digits"},
	{constants.CarrierUSPS, regexp.MustCompile(`(?i)^(EA|EC|CP|RA|RF|EJ)\d{9}US$`), constants.ConfidenceHigh,
		"USPS: International (EA/EC/CP/RA/RF/EJ + 9d + US)"},
	{constants.CarrierUSPS, regexp.MustCompile(`^420\d{5}(92|93|94)\d{18,22}$`), constants.ConfidenceHigh,
		"USPS: 420 + ZIP + 92/93/94 tracking (Intelligent Mail)"},
	{constants.CarrierUSPS, regexp.MustCompile(`^420\d{5}\d{18,24}$`), constants.ConfidenceHigh,
		"USPS: 420 + ZIP + 18-24 digits (Intelligent Mail)"},
	{constants.CarrierUSPS, regexp.MustCompile(`^9[1-5]\d{19,}$`), constants.ConfidenceMedium,
		"USPS: 9x prefix + 19+ digits"},

	// FedEx
	{constants.CarrierFedEx, regexp.MustCompile(`^6\d{19,21}$`), constants.ConfidenceHigh,
		"FedEx: starts with 6, 20-22 digits (Ground 96/SmartPost)"},
	{constants.CarrierFedEx, regexp.MustCompile(`^\d{12}$`), constants.ConfidenceMedium,
		"FedEx: exactly 12 digits (Express)"},
	{constants.CarrierFedEx, regexp.MustCompile(`^\d{15}$`), constants.ConfidenceMedium,
		"FedEx: exactly 15 digits (Ground)"},
	{constants.CarrierFedEx, regexp.MustCompile(`^\d{20}$`), constants.ConfidenceMedium,
		"FedEx: exactly 20 digits (Ground 96)"},
	{constants.CarrierFedEx, regexp.MustCompile(`^\d{22}$`), constants.ConfidenceMedium,
		"FedEx: exactly 22 digits (SmartPost)"},
}

// textRule matches brand tokens printed on the label.
type textRule struct {
	carrier    constants.Carrier
	patterns   []*regexp.Regexp
	confidence constants.Confidence
	rule       string
}

func words(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// All keyword rules are high confidence: each needs an explicit brand token.
var textRules = []textRule{
	{constants.CarrierAmazon, words(
		`\bamazon\b`,
		`\bamazon\.com\b`,
		`\bamzl?\b`,
		`\bprime\b`,
		`\btba\s*\d`,
	), constants.ConfidenceHigh, "Amazon: logo/text match"},
	{constants.CarrierUPS, words(
		`\bups\b`,
		`\bunited\s*parcel\s*service\b`,
		`\bups\.com\b`,
		`\b1Z[A-Z0-9]`,
	), constants.ConfidenceHigh, "UPS: logo/text match"},
	{constants.CarrierFedEx, words(
		`\bfed\s*ex\b`,
		`\bfedex\b`,
		`\bfederal\s*express\b`,
		`\bfdx\b`,
		`\bfedex\.com\b`,
	), constants.ConfidenceHigh, "FedEx: logo/text match"},
	{constants.CarrierUSPS, words(
		`\busps\b`,
		`\bus\s*postal\b`,
		`\bunited\s*states\s*postal`,
		`\bpriority\s*mail\b`,
		`\bfirst[- ]?class\s*mail\b`,
		`\bparcel\s*select\b`,
		`\busps\.com\b`,
	), constants.ConfidenceHigh, "USPS: logo/text match"},
	{constants.CarrierDHL, words(
		`\bdhl\b`,
		`\bdhl\s*express\b`,
		`\bdhl\s*ecommerce\b`,
		`\bdhl\.com\b`,
	), constants.ConfidenceHigh, "DHL: logo/text match"},
	{constants.CarrierLaserShip, words(
		`\blaser\s*ship\b`,
		`\blasership\b`,
		`\blso\b`,
	), constants.ConfidenceHigh, "LaserShip: logo/text match"},
	{constants.CarrierOnTrac, words(
		`\bon\s*trac\b`,
		`\bontrac\b`,
	), constants.ConfidenceHigh, "OnTrac: logo/text match"},
}
