package extract

import (
	"strconv"
	"strings"

	"github.com/joseph-ayodele/label-intake/constants"
)

// GenerateValidationReport restates, field by field, what the pipeline made
// of the raw input. processed must be the result of processing raw.
func GenerateValidationReport(raw RawExtraction, processed ExtractionResult) []FieldValidation {
	report := make([]FieldValidation, 0, 7)

	report = append(report, FieldValidation{
		Field:     "carrier",
		Valid:     processed.CarrierConfidence != constants.ConfidenceLow,
		Original:  raw.Carrier,
		Corrected: string(processed.Carrier),
		Rule:      processed.CarrierMatchedRule,
	})

	report = append(report, FieldValidation{
		Field:     "trackingNumber",
		Valid:     processed.TrackingNumberValid,
		Original:  raw.TrackingNumber,
		Corrected: processed.TrackingNumber,
		Rule:      processed.TrackingValidationRule,
	})

	nameRule := "Personal name"
	if processed.RecipientIsBusiness {
		nameRule = "Business name detected"
	}
	report = append(report, FieldValidation{
		Field:     "recipientName",
		Valid:     processed.RecipientName != "",
		Original:  raw.RecipientName,
		Corrected: processed.RecipientName,
		Rule:      nameRule,
	})

	report = append(report, FieldValidation{
		Field:     "serviceType",
		Valid:     true,
		Original:  "",
		Corrected: string(processed.ServiceType),
		Rule:      processed.ServiceTypeMatchedRule,
	})

	report = append(report, pmbValidation(raw.PMBNumber, processed.PMBNumber))

	sizeRule := "Recognized size"
	_, known := constants.LookupPackageSize(raw.PackageSize)
	switch {
	case strings.TrimSpace(raw.PackageSize) == "":
		sizeRule = "No size given, defaulted to medium"
	case !known:
		sizeRule = "Unrecognized size, defaulted to medium"
	}
	report = append(report, FieldValidation{
		Field:     "packageSize",
		Valid:     known,
		Original:  raw.PackageSize,
		Corrected: string(processed.PackageSize),
		Rule:      sizeRule,
	})

	score := ComputeScore(raw.Confidence, DegradationsOf(processed))
	confRule := "No degradation applied"
	if len(score.Applied) > 0 {
		confRule = "Degraded by: " + strings.Join(score.Applied, ", ")
	}
	original := ""
	if raw.Confidence != nil {
		original = strconv.FormatFloat(*raw.Confidence, 'f', -1, 64)
	}
	report = append(report, FieldValidation{
		Field:     "confidence",
		Valid:     len(score.Applied) == 0,
		Original:  original,
		Corrected: strconv.FormatFloat(processed.Confidence, 'f', 2, 64),
		Rule:      confRule,
	})

	return report
}

func pmbValidation(raw, normalized string) FieldValidation {
	fv := FieldValidation{Field: "pmbNumber", Original: raw, Corrected: normalized}
	switch {
	case strings.TrimSpace(raw) == "":
		fv.Valid = true
		fv.Rule = "No PMB number"
	case rePMBFormatted.MatchString(normalized):
		fv.Valid = true
		fv.Rule = "Normalized to PMB-XXXX"
	default:
		fv.Rule = "No digits found, passed through"
	}
	return fv
}
