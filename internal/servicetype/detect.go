// Package servicetype classifies the delivery program a package arrives under
// (mailbox customer, carrier pickup point, partner platform).
package servicetype

import (
	"github.com/joseph-ayodele/label-intake/constants"
)

// Context is every signal the detector may look at. Empty strings mean the
// signal is absent.
type Context struct {
	RecipientAddress string
	RecipientName    string
	PMBNumber        string
	Carrier          constants.Carrier
	TrackingNumber   string
	RawLabelText     string
	SenderName       string
}

// Detection is the chosen service type with the rule that picked it.
type Detection struct {
	ServiceType constants.ServiceType `json:"serviceType"`
	MatchedRule string                `json:"matchedRule"`
	Confidence  constants.Confidence  `json:"confidence"`
}

// Detect returns the first matching rule's service type, or general delivery.
func Detect(c Context) Detection {
	for _, r := range rules {
		if r.test(c) {
			return Detection{ServiceType: r.serviceType, MatchedRule: r.name, Confidence: r.confidence}
		}
	}
	return generalDelivery
}
