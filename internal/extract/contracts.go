package extract

import (
	"github.com/joseph-ayodele/label-intake/constants"
)

// RawExtraction is one label as read by the vision model. Every field is
// optional and untrusted; empty strings mean absent.
type RawExtraction struct {
	Carrier          string   `json:"carrier,omitempty" yaml:"carrier,omitempty"`
	TrackingNumber   string   `json:"trackingNumber,omitempty" yaml:"trackingNumber,omitempty"`
	SenderName       string   `json:"senderName,omitempty" yaml:"senderName,omitempty"`
	SenderAddress    string   `json:"senderAddress,omitempty" yaml:"senderAddress,omitempty"`
	RecipientName    string   `json:"recipientName,omitempty" yaml:"recipientName,omitempty"`
	RecipientAddress string   `json:"recipientAddress,omitempty" yaml:"recipientAddress,omitempty"`
	PMBNumber        string   `json:"pmbNumber,omitempty" yaml:"pmbNumber,omitempty"`
	PackageSize      string   `json:"packageSize,omitempty" yaml:"packageSize,omitempty"`
	RawLabelText     string   `json:"rawLabelText,omitempty" yaml:"rawLabelText,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// ExtractionResult is the validated, normalized record for one label.
type ExtractionResult struct {
	Carrier            constants.Carrier    `json:"carrier" yaml:"carrier"`
	CarrierConfidence  constants.Confidence `json:"carrierConfidence" yaml:"carrierConfidence"`
	CarrierMatchedRule string               `json:"carrierMatchedRule" yaml:"carrierMatchedRule"`

	TrackingNumber         string `json:"trackingNumber" yaml:"trackingNumber"`
	TrackingNumberValid    bool   `json:"trackingNumberValid" yaml:"trackingNumberValid"`
	TrackingValidationRule string `json:"trackingValidationRule" yaml:"trackingValidationRule"`

	RecipientName       string `json:"recipientName" yaml:"recipientName"`
	RecipientIsBusiness bool   `json:"recipientIsBusiness" yaml:"recipientIsBusiness"`
	RecipientNameRaw    string `json:"recipientNameRaw" yaml:"recipientNameRaw"`

	ServiceType            constants.ServiceType `json:"serviceType" yaml:"serviceType"`
	ServiceTypeMatchedRule string                `json:"serviceTypeMatchedRule" yaml:"serviceTypeMatchedRule"`

	PMBNumber     string                `json:"pmbNumber" yaml:"pmbNumber"`
	SenderName    string                `json:"senderName" yaml:"senderName"`
	SenderAddress string                `json:"senderAddress" yaml:"senderAddress"`
	PackageSize   constants.PackageSize `json:"packageSize" yaml:"packageSize"`
	Confidence    float64               `json:"confidence" yaml:"confidence"`
}

// FieldValidation states what the pipeline decided for one field versus the
// raw input, for review screens.
type FieldValidation struct {
	Field     string `json:"field" yaml:"field"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Original  string `json:"original" yaml:"original"`
	Corrected string `json:"corrected" yaml:"corrected"`
	Rule      string `json:"rule" yaml:"rule"`
}

// Float is a convenience for building a RawExtraction confidence.
func Float(v float64) *float64 { return &v }
