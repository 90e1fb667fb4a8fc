package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/label-intake/constants"
)

func TestIdentify_TrackingPrefix(t *testing.T) {
	tests := []struct {
		name       string
		tracking   string
		carrier    constants.Carrier
		confidence constants.Confidence
	}{
		{"amazon tba", "TBA123456789012", constants.CarrierAmazon, constants.ConfidenceHigh},
		{"ups 1z", "1Z999AA10123456784", constants.CarrierUPS, constants.ConfidenceHigh},
		{"ups 1z lowercase", "1z999aa10123456784", constants.CarrierUPS, constants.ConfidenceHigh},
		{"ups mail innovations", "T1234567890", constants.CarrierUPS, constants.ConfidenceMedium},
		{"lasership 1ls", "1LS123456789012", constants.CarrierLaserShip, constants.ConfidenceHigh},
		{"lasership lx", "LX1234567890", constants.CarrierLaserShip, constants.ConfidenceMedium},
		{"ontrac c", "C12345678901", constants.CarrierOnTrac, constants.ConfidenceMedium},
		{"ontrac d", "D12345678901234", constants.CarrierOnTrac, constants.ConfidenceMedium},
		{"dhl jd", "JD014600003828392932", constants.CarrierDHL, constants.ConfidenceHigh},
		{"dhl waybill", "ABC1234567", constants.CarrierDHL, constants.ConfidenceMedium},
		{"usps 94", "9400111899223100012345", constants.CarrierUSPS, constants.ConfidenceHigh},
		{"usps international", "EA123456789US", constants.CarrierUSPS, constants.ConfidenceHigh},
		{"usps 420 zip", "420100019400111899223100012345", constants.CarrierUSPS, constants.ConfidenceHigh},
		{"fedex ground 96", "61299998820821171811", constants.CarrierFedEx, constants.ConfidenceHigh},
		{"fedex express 12", "123456789012", constants.CarrierFedEx, constants.ConfidenceMedium},
		{"fedex ground 15", "123456789012345", constants.CarrierFedEx, constants.ConfidenceMedium},
		{"spaced and dashed", " 1Z 999 AA1-0123456784 ", constants.CarrierUPS, constants.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identify(tt.tracking, "", "")
			assert.Equal(t, tt.carrier, got.Carrier)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.NotEmpty(t, got.MatchedRule)
		})
	}
}

func TestIdentify_USPSBeforeFedEx(t *testing.T) {
	// 22 digits: satisfies both the USPS 92-prefix rule and FedEx's 22-digit rule.
	got := Identify("9205590164917312751089", "", "")
	assert.Equal(t, constants.CarrierUSPS, got.Carrier)

	// 20 digits starting with 7x: USPS 70-79 rule and FedEx's 20-digit rule.
	got = Identify("70131710000012345678", "", "")
	assert.Equal(t, constants.CarrierUSPS, got.Carrier)
}

func TestIdentify_TrackingOutranksGuess(t *testing.T) {
	got := Identify("1Z999AA10123456784", "fedex", "")
	assert.Equal(t, constants.CarrierUPS, got.Carrier)
	assert.Equal(t, constants.ConfidenceHigh, got.Confidence)
}

func TestIdentify_GuessNormalization(t *testing.T) {
	got := Identify("", "United Parcel Service", "")
	assert.Equal(t, constants.CarrierUPS, got.Carrier)
	assert.Equal(t, constants.ConfidenceMedium, got.Confidence)
	assert.Equal(t, "AI vision identified: United Parcel Service", got.MatchedRule)

	got = Identify("12AB", "Amazon.com", "")
	assert.Equal(t, constants.CarrierAmazon, got.Carrier)
}

func TestIdentify_LabelText(t *testing.T) {
	tests := []struct {
		text    string
		carrier constants.Carrier
	}{
		{"PRIORITY MAIL 2-DAY", constants.CarrierUSPS},
		{"Delivered by FedEx Ground", constants.CarrierFedEx},
		{"AMZL US station 4", constants.CarrierAmazon},
		{"ONTRAC GROUND", constants.CarrierOnTrac},
		{"LaserShip Inc", constants.CarrierLaserShip},
		{"DHL eCommerce", constants.CarrierDHL},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Identify("", "", tt.text)
			assert.Equal(t, tt.carrier, got.Carrier)
			assert.Equal(t, constants.ConfidenceHigh, got.Confidence)
		})
	}
}

func TestIdentify_UnrecognizedGuessFallsThroughToText(t *testing.T) {
	got := Identify("", "Temu", "shipped via UPS")
	assert.Equal(t, constants.CarrierUPS, got.Carrier)
	assert.Equal(t, "UPS: logo/text match", got.MatchedRule)
}

func TestIdentify_Fallbacks(t *testing.T) {
	got := Identify("", "Speedy Couriers", "")
	assert.Equal(t, constants.CarrierOther, got.Carrier)
	assert.Equal(t, constants.ConfidenceLow, got.Confidence)
	assert.Equal(t, "AI carrier (unvalidated): Speedy Couriers", got.MatchedRule)

	got = Identify("", "", "")
	assert.Equal(t, constants.CarrierOther, got.Carrier)
	assert.Equal(t, constants.ConfidenceLow, got.Confidence)
	assert.Equal(t, "No carrier identified", got.MatchedRule)

	got = Identify("   ", "  ", "")
	assert.Equal(t, "No carrier identified", got.MatchedRule)
}
