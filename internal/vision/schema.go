package vision

import (
	"github.com/joseph-ayodele/label-intake/constants"
)

// Canonical keys of one raw label object.
const (
	KeyCarrier          = "carrier"
	KeyTrackingNumber   = "trackingNumber"
	KeySenderName       = "senderName"
	KeySenderAddress    = "senderAddress"
	KeyRecipientName    = "recipientName"
	KeyRecipientAddress = "recipientAddress"
	KeyPMBNumber        = "pmbNumber"
	KeyPackageSize      = "packageSize"
	KeyRawLabelText     = "rawLabelText"
	KeyConfidence       = "confidence"
)

var textKeys = []string{
	KeyCarrier,
	KeyTrackingNumber,
	KeySenderName,
	KeySenderAddress,
	KeyRecipientName,
	KeyRecipientAddress,
	KeyPMBNumber,
	KeyPackageSize,
	KeyRawLabelText,
}

// LabelSchema returns the JSON-Schema for one raw label object as a generic
// map. It is handed to the vision model as the output contract and used
// locally to check what came back. Every field is optional: the pipeline
// degrades on missing data instead of rejecting it.
func LabelSchema() map[string]any {
	props := make(map[string]any, len(textKeys)+1)
	for _, k := range textKeys {
		props[k] = map[string]any{"type": "string"}
	}
	// The model is asked for lowercase ids but the carrier identifier
	// accepts free text, so no enum here.
	props[KeyCarrier] = map[string]any{
		"type":     "string",
		"examples": constants.CarriersAsStringSlice(),
	}
	props[KeyConfidence] = map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
	}
}

// BatchSchema wraps LabelSchema for a multi-label photo.
func BatchSchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": LabelSchema(),
	}
}
