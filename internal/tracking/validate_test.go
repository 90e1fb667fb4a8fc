package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/label-intake/constants"
)

func TestValidate_CarrierFormats(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		carrier constants.Carrier
		rule    string
	}{
		{"ups 1z", "1Z999AA10123456784", constants.CarrierUPS, "UPS: 1Z + 16 alphanumeric"},
		{"ups surepost", "K1234567890", constants.CarrierUPS, "UPS: K + 10 digits (SurePost)"},
		{"amazon", "TBA123456789000", constants.CarrierAmazon, "AMAZON: TBA + 10-15 digits"},
		{"fedex 12", "123456789012", constants.CarrierFedEx, "FEDEX: 12 digits (Express)"},
		{"fedex door tag", "DT123456789012", constants.CarrierFedEx, "FEDEX: DT + 12 digits (Door Tag)"},
		{"fedex 96 prefix", "9612019123456789012345", constants.CarrierFedEx, "FEDEX: 22 digits (SmartPost)"},
		{"fedex 96 prefix 21", "961201912345678901234", constants.CarrierFedEx, "FEDEX: 96xx + 16-18 digits (Ground 96 with prefix)"},
		{"usps 94", "9400111899223100012345", constants.CarrierUSPS, "USPS: 92/93/94 + 18-22 digits"},
		{"usps international", "ea123456789us", constants.CarrierUSPS, "USPS: International (XX + 9d + US)"},
		{"usps generic", "12345678901234567890123456", constants.CarrierUSPS, "USPS: 20-34 digits (generic USPS)"},
		{"dhl express", "1234567890", constants.CarrierDHL, "DHL: 10 digits (Express)"},
		{"dhl global mail", "GM1234567890123456", constants.CarrierDHL, "DHL: GM + 16+ digits (Global Mail)"},
		{"lasership", "1LS123456789012", constants.CarrierLaserShip, "LASERSHIP: 1LS + 12+ digits"},
		{"ontrac", "C123456789", constants.CarrierOnTrac, "ONTRAC: C + 8-14 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.raw, tt.carrier)
			assert.True(t, got.Valid)
			assert.Equal(t, tt.rule, got.Rule)
		})
	}
}

func TestValidate_Normalization(t *testing.T) {
	got := Validate("  1z 999-aa1.0123456784# ", constants.CarrierUPS)
	require.True(t, got.Valid)
	assert.Equal(t, "1Z999AA10123456784", got.TrackingNumber)
	assert.Equal(t, []string{
		"Removed embedded spaces",
		"Removed dashes",
		"Removed dots",
		"Uppercased",
		"Stripped OCR noise characters",
	}, got.Corrections)

	clean := Validate("1Z999AA10123456784", constants.CarrierUPS)
	assert.Empty(t, clean.Corrections)
}

func TestValidate_Idempotent(t *testing.T) {
	inputs := []struct {
		raw     string
		carrier constants.Carrier
	}{
		{"1z 999 aa1 0123 4567 84", constants.CarrierUPS},
		{"9400-1118-9922-3100-0123-45", constants.CarrierUSPS},
		{"*TBA123456789000*", constants.CarrierAmazon},
		{"ABC-123.456", constants.CarrierOther},
	}
	for _, in := range inputs {
		first := Validate(in.raw, in.carrier)
		second := Validate(first.TrackingNumber, in.carrier)
		assert.Equal(t, first.TrackingNumber, second.TrackingNumber)
		assert.Equal(t, first.Valid, second.Valid)
		assert.Empty(t, second.Corrections)
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := Validate("   ", constants.CarrierUPS)
		assert.False(t, got.Valid)
		assert.Equal(t, "", got.TrackingNumber)
		assert.Equal(t, "Empty tracking number", got.Rule)
	})

	t.Run("too short keeps cleaned value", func(t *testing.T) {
		got := Validate("ab-12", constants.CarrierUPS)
		assert.False(t, got.Valid)
		assert.Equal(t, "AB12", got.TrackingNumber)
		assert.Contains(t, got.Rule, "too short")
	})

	t.Run("wrong carrier keeps cleaned value", func(t *testing.T) {
		got := Validate("1Z999AA10123456784", constants.CarrierFedEx)
		assert.False(t, got.Valid)
		assert.Equal(t, "1Z999AA10123456784", got.TrackingNumber)
		assert.Equal(t, "No FEDEX tracking pattern matched", got.Rule)
	})
}

func TestValidate_GenericCarrier(t *testing.T) {
	got := Validate("XYZ123456", constants.CarrierOther)
	assert.True(t, got.Valid)
	assert.Contains(t, got.Rule, "Generic tracking format")

	got = Validate("ABC_123456", constants.CarrierOther)
	assert.False(t, got.Valid)
	assert.Equal(t, "Does not match any known tracking format", got.Rule)

	assert.False(t, HasFormat(constants.CarrierOther))
	assert.True(t, HasFormat(constants.CarrierDHL))
}
