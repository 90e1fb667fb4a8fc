package constants

// Confidence is the tri-level certainty attached to a classification.
// It is distinct from the numeric score on an extraction result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) String() string { return string(c) }
