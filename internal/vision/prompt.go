package vision

import (
	"strings"

	"github.com/joseph-ayodele/label-intake/constants"
)

var packageSizes = []constants.PackageSize{
	constants.SizeLetter,
	constants.SizePack,
	constants.SizeSmall,
	constants.SizeMedium,
	constants.SizeLarge,
	constants.SizeXLarge,
}

// SystemPrompt is the instruction sent with each label photo. The carrier and
// size lists come from the same constants the pipeline validates against.
func SystemPrompt() string {
	sizes := make([]string, len(packageSizes))
	for i, s := range packageSizes {
		sizes[i] = string(s)
	}

	parts := []string{
		"You analyze shipping labels for a mailbox store (CMRA).",
		"Return ONLY a JSON array with one object per visible label. No markdown, no explanation.",
		"If a field is not visible or unclear, use an empty string.",
		"",
		"Fields:",
		"- carrier (lowercase, one of: " + strings.Join(constants.CarriersAsStringSlice(), ", ") + ").",
		"  Clues: logo or printed carrier name; tracking prefix (TBA=amazon, 1Z=ups, 92/93/94=usps, JD=dhl);",
		"  label colors (brown shield=ups, purple and orange=fedex, blue and red=usps, yellow and red=dhl).",
		"- trackingNumber: the primary tracking barcode number, full length, no spaces or dashes.",
		"  Prefer it over ZIP barcodes and reference numbers. UPS 1Z is 18 characters; USPS is 20-34 digits",
		"  starting 92/93/94; FedEx is 12-22 digits; Amazon starts with TBA.",
		"- senderName: name from the FROM / return address block.",
		"- senderAddress: the sender street, city, state and ZIP.",
		"- recipientName: ONLY the person or business name from the SHIP TO / DELIVER TO block.",
		"  Take the name after ATTN: as the recipient. Leave out PMB/Suite/Unit numbers.",
		"  When both a person and a business appear, give the person.",
		"- recipientAddress: the full delivery address from the SHIP TO block.",
		"- pmbNumber: the PMB, Suite, STE, Unit, Box, Apt or # number in the delivery address.",
		"- packageSize: one of " + strings.Join(sizes, ", ") + ".",
		"- confidence: number from 0 to 1, your confidence in the whole extraction.",
		"- rawLabelText: other notable label text, especially program names (UPS Access Point,",
		"  FedEx Hold At Location, Amazon Hub, Kinek, iPostal), handling marks (HOLD AT LOCATION,",
		"  ACCESS POINT, HUB COUNTER) and visible account or reference codes.",
	}
	return strings.Join(parts, "\n")
}
