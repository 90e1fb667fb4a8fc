package tracking

import (
	"regexp"

	"github.com/joseph-ayodele/label-intake/constants"
)

type formatRule struct {
	pattern     *regexp.Regexp
	description string
}

func rule(expr, description string) formatRule {
	return formatRule{pattern: regexp.MustCompile(expr), description: description}
}

// carrierFormats holds the full tracking grammar per carrier, first match wins.
// Numbers reach these rules already upper-cased and free of separators.
var carrierFormats = map[constants.Carrier][]formatRule{
	constants.CarrierUPS: {
		rule(`^1Z[A-Z0-9]{16}$`, "1Z + 16 alphanumeric"),
		rule(`^(T|J)\d{10}$`, "T/J + 10 digits (Mail Innovations)"),
		rule(`^K\d{10}$`, "K + 10 digits (SurePost)"),
	},
	constants.CarrierAmazon: {
		rule(`^TBA\d{10,15}$`, "TBA + 10-15 digits"),
	},
	constants.CarrierFedEx: {
		rule(`^\d{12}$`, "12 digits (Express)"),
		rule(`^\d{15}$`, "15 digits (Ground)"),
		rule(`^\d{20}$`, "20 digits (Ground 96)"),
		rule(`^\d{22}$`, "22 digits (SmartPost)"),
		rule(`^96\d{2}\d{16,18}$`, "96xx + 16-18 digits (Ground 96 with prefix)"),
		rule(`^DT\d{12}$`, "DT + 12 digits (Door Tag)"),
	},
	constants.CarrierUSPS: {
		rule(`^(94|93|92)\d{18,22}$`, "92/93/94 + 18-22 digits"),
		rule(`^7[0-9]\d{18,}$`, "70-79 + 18+ digits"),
		rule(`^(EA|EC|CP|RA|RF|EJ)\d{9}US$`, "International (XX + 9d + US)"),
		rule(`^420\d{5}(92|93|94)\d{18,22}$`, "420+ZIP + tracking (Intelligent Mail)"),
		rule(`^9[1-5]\d{19,25}$`, "9x + 19-25 digits (Priority/First Class)"),
		rule(`^\d{20,34}$`, "20-34 digits (generic USPS)"),
	},
	constants.CarrierDHL: {
		rule(`^JD\d{18,22}$`, "JD + 18-22 digits (eCommerce)"),
		rule(`^\d{10}$`, "10 digits (Express)"),
		rule(`^[A-Z]{3}\d{7}$`, "3 letters + 7 digits (waybill)"),
		rule(`^GM\d{16,}$`, "GM + 16+ digits (Global Mail)"),
	},
	constants.CarrierLaserShip: {
		rule(`^1LS\d{12,}$`, "1LS + 12+ digits"),
		rule(`^LS\d{10,}$`, "LS + 10+ digits"),
		rule(`^LX\d{10,}$`, "LX + 10+ digits"),
	},
	constants.CarrierOnTrac: {
		rule(`^C\d{8,14}$`, "C + 8-14 digits"),
		rule(`^D\d{14}$`, "D + 14 digits"),
	},
}

// reGeneric accepts anything tracking-shaped for carriers without a grammar.
var reGeneric = regexp.MustCompile(`^[A-Z0-9]{6,40}$`)

// textPatterns find tracking-shaped substrings in free label text.
var textPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b1Z[A-Z0-9]{16}\b`),
	regexp.MustCompile(`(?i)\bTBA\d{10,15}\b`),
	regexp.MustCompile(`(?i)\b(EA|EC|CP|RA|RF|EJ)\d{9}US\b`),
	regexp.MustCompile(`\bJD\d{18,22}\b`),
	regexp.MustCompile(`(?i)\b1LS\d{12,}\b`),
	regexp.MustCompile(`\b\d{12,34}\b`),
	regexp.MustCompile(`\bC\d{8,14}\b`),
}
