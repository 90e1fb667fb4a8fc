package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/label-intake/constants"
)

func TestNormalizePMB(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"   ":         "",
		"PMB 5":       "PMB-0005",
		"pmb-0005":    "PMB-0005",
		"PMB-0005":    "PMB-0005",
		"PMB-5":       "PMB-0005",
		"Suite #12":   "PMB-0012",
		"STE: 7":      "PMB-0007",
		"Box: 123456": "PMB-123456",
		"#88":         "PMB-0088",
		" 42 ":        "PMB-0042",
		"A-17":        "PMB-0017",
		"mailbox":     "mailbox",
		"  front  ":   "front",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePMB(in), "input %q", in)
	}
}

func TestComputeScore(t *testing.T) {
	t.Run("default base", func(t *testing.T) {
		s := ComputeScore(nil, Degradations{})
		assert.Equal(t, 0.5, s.Value)
		assert.Empty(t, s.Applied)
	})

	t.Run("all factors", func(t *testing.T) {
		s := ComputeScore(Float(1), Degradations{TrackingInvalid: true, CarrierLow: true, RecipientEmpty: true})
		assert.InDelta(t, 0.34, s.Value, 1e-9)
		assert.Equal(t, []string{FactorTrackingInvalid, FactorCarrierLow, FactorRecipientEmpty}, s.Applied)
	})

	t.Run("clamped", func(t *testing.T) {
		assert.Equal(t, 1.0, ComputeScore(Float(7), Degradations{}).Value)
		assert.Equal(t, 0.0, ComputeScore(Float(-2), Degradations{}).Value)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		assert.InDelta(t, 0.66, ComputeScore(Float(0.943), Degradations{TrackingInvalid: true}).Value, 1e-9)
	})
}

func TestGenerateValidationReport(t *testing.T) {
	raw := RawExtraction{
		Carrier:        "UPS",
		TrackingNumber: "1z999aa10123456784",
		RecipientName:  "ATTN: DAVID KIM",
		PMBNumber:      "5",
		PackageSize:    "gigantic",
		Confidence:     Float(0.94),
	}
	res := NewProcessor().Process(raw)
	report := GenerateValidationReport(raw, res)

	require.Len(t, report, 7)
	byField := make(map[string]FieldValidation, len(report))
	for _, fv := range report {
		byField[fv.Field] = fv
	}

	assert.True(t, byField["carrier"].Valid)
	assert.Equal(t, "ups", byField["carrier"].Corrected)
	assert.Equal(t, "UPS", byField["carrier"].Original)

	assert.True(t, byField["trackingNumber"].Valid)
	assert.Equal(t, "1Z999AA10123456784", byField["trackingNumber"].Corrected)

	assert.Equal(t, "David Kim", byField["recipientName"].Corrected)
	assert.Equal(t, "Personal name", byField["recipientName"].Rule)

	assert.Equal(t, string(constants.ServicePMBCustomer), byField["serviceType"].Corrected)
	assert.True(t, byField["serviceType"].Valid)
	assert.Equal(t, "", byField["serviceType"].Original)

	assert.Equal(t, "PMB-0005", byField["pmbNumber"].Corrected)
	assert.True(t, byField["pmbNumber"].Valid)

	assert.False(t, byField["packageSize"].Valid)
	assert.Equal(t, "medium", byField["packageSize"].Corrected)

	assert.True(t, byField["confidence"].Valid)
	assert.Equal(t, "0.94", byField["confidence"].Original)
	assert.Equal(t, "0.94", byField["confidence"].Corrected)
}

func TestGenerateValidationReport_ListsDegradations(t *testing.T) {
	raw := RawExtraction{Confidence: Float(0.5)}
	report := GenerateValidationReport(raw, NewProcessor().Process(raw))

	conf := report[len(report)-1]
	assert.Equal(t, "confidence", conf.Field)
	assert.False(t, conf.Valid)
	assert.Equal(t, "Degraded by: tracking_invalid, carrier_low_confidence, recipient_empty", conf.Rule)
	assert.Equal(t, "0.17", conf.Corrected)
}
