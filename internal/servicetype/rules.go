package servicetype

import (
	"regexp"

	"github.com/joseph-ayodele/label-intake/constants"
)

type rule struct {
	serviceType constants.ServiceType
	test        func(c Context) bool
	name        string
	confidence  constants.Confidence
}

var (
	reAmazonHub       = regexp.MustCompile(`(?i)\bamazon\s*(hub|counter|locker)\b`)
	reHubKeywords     = regexp.MustCompile(`(?i)\b(hub|counter|pickup\s*point|locker)\b`)
	reUPSAccessPoint  = regexp.MustCompile(`(?i)\bups\s*access\s*point\b`)
	reAccessPointID   = regexp.MustCompile(`(?i)\bACCESS\s*POINT\s*(ID|#|NUMBER)`)
	reAccessKeywords  = regexp.MustCompile(`(?i)\b(access\s*point|AP|pickup\s*point|UAP)\b`)
	reHoldAtLocation  = regexp.MustCompile(`(?i)\b(hold\s*at\s*location|HAL)\b`)
	reFedExOffice     = regexp.MustCompile(`(?i)\bFEDEX\s*(OFFICE|SHIP\s*CENTER|ONSITE)\b`)
	reHoldKeywords    = regexp.MustCompile(`(?i)\b(HAL|hold\s*at|hold\s*for\s*pickup)\b`)
	reKinek           = regexp.MustCompile(`(?i)\bkinek\b`)
	reKinekAccount    = regexp.MustCompile(`(?i)\bKN[-\s]?\d{6,}\b`)
	reIPostal         = regexp.MustCompile(`(?i)\bipostal1?\b`)
	reIPostalSender   = regexp.MustCompile(`(?i)\bipostal\b`)
	reVirtualMail     = regexp.MustCompile(`(?i)\b(digital\s*mail|virtual\s*mail|virtual\s*address)\b`)
	rePMBToken        = regexp.MustCompile(`(?i)\bPMB[-\s#]?\d+\b`)
	reSuiteOrBoxToken = regexp.MustCompile(`(?i)(\b(suite|ste|unit|box|apt)|#)\s*\d+\b`)
)

// rules run top to bottom and the first hit wins. Within a service type the
// explicit brand match precedes the carrier-plus-keyword match, and every
// branded program precedes the PMB fallbacks: a UPS label that merely says
// "pickup point" must not outrank an address reading "UPS Access Point".
var rules = []rule{
	{
		serviceType: constants.ServiceAmazonHub,
		test: func(c Context) bool {
			return anyMatch(reAmazonHub, c.RecipientAddress, c.RawLabelText, c.RecipientName)
		},
		name:       `Amazon Hub: "Amazon Hub/Counter/Locker" in address or label text`,
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceAmazonHub,
		test: func(c Context) bool {
			return c.Carrier == constants.CarrierAmazon &&
				reHubKeywords.MatchString(c.RecipientAddress+" "+c.RawLabelText)
		},
		name:       "Amazon Hub: Amazon carrier + hub/counter/pickup keywords",
		confidence: constants.ConfidenceMedium,
	},
	{
		serviceType: constants.ServiceUPSAccessPoint,
		test: func(c Context) bool {
			return anyMatch(reUPSAccessPoint, c.RecipientAddress, c.RawLabelText, c.RecipientName)
		},
		name:       `UPS Access Point: "UPS Access Point" in address/label`,
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceUPSAccessPoint,
		test: func(c Context) bool {
			return c.Carrier == constants.CarrierUPS && reAccessPointID.MatchString(c.RawLabelText)
		},
		name:       "UPS Access Point: UPS + Access Point ID reference",
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceUPSAccessPoint,
		test: func(c Context) bool {
			return c.Carrier == constants.CarrierUPS && reAccessKeywords.MatchString(c.RawLabelText)
		},
		name:       "UPS Access Point: UPS carrier + access point keywords",
		confidence: constants.ConfidenceMedium,
	},
	{
		serviceType: constants.ServiceFedExHAL,
		test: func(c Context) bool {
			return anyMatch(reHoldAtLocation, c.RecipientAddress, c.RawLabelText)
		},
		name:       `FedEx HAL: "Hold At Location" / "HAL" in address/label`,
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceFedExHAL,
		test: func(c Context) bool {
			return c.Carrier == constants.CarrierFedEx &&
				reFedExOffice.MatchString(c.RecipientAddress+" "+c.RawLabelText)
		},
		name:       "FedEx HAL: FedEx Office/Ship Center/OnSite in address",
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceFedExHAL,
		test: func(c Context) bool {
			return c.Carrier == constants.CarrierFedEx && reHoldKeywords.MatchString(c.RawLabelText)
		},
		name:       "FedEx HAL: FedEx carrier + hold keywords",
		confidence: constants.ConfidenceMedium,
	},
	{
		serviceType: constants.ServiceKinek,
		test: func(c Context) bool {
			return anyMatch(reKinek, c.RecipientAddress, c.RawLabelText, c.RecipientName)
		},
		name:       `Kinek: "Kinek" in address/label/name`,
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceKinek,
		test: func(c Context) bool {
			return anyMatch(reKinekAccount, c.RecipientAddress, c.RawLabelText)
		},
		name:       "Kinek: KN-XXXXXX account number pattern",
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceIPostal,
		test: func(c Context) bool {
			return anyMatch(reIPostal, c.RecipientAddress, c.RawLabelText, c.RecipientName)
		},
		name:       `iPostal: "iPostal" / "iPostal1" in address/label`,
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServiceIPostal,
		test: func(c Context) bool {
			return reIPostalSender.MatchString(c.SenderName)
		},
		name:       `iPostal: "iPostal" in sender name (forwarding notification)`,
		confidence: constants.ConfidenceMedium,
	},
	{
		serviceType: constants.ServiceIPostal,
		test: func(c Context) bool {
			return reVirtualMail.MatchString(c.RawLabelText)
		},
		name:       "iPostal: Digital/virtual mail keywords in label text",
		confidence: constants.ConfidenceLow,
	},
	{
		serviceType: constants.ServicePMBCustomer,
		test: func(c Context) bool {
			return anyMatch(rePMBToken, c.RecipientAddress, c.PMBNumber)
		},
		name:       "PMB Customer: PMB number in address",
		confidence: constants.ConfidenceHigh,
	},
	{
		serviceType: constants.ServicePMBCustomer,
		test: func(c Context) bool {
			return c.PMBNumber != "" && reSuiteOrBoxToken.MatchString(c.RecipientAddress)
		},
		name:       "PMB Customer: Suite/Unit/Box number with PMB match",
		confidence: constants.ConfidenceMedium,
	},
	{
		serviceType: constants.ServicePMBCustomer,
		test:        func(c Context) bool { return c.PMBNumber != "" },
		name:        "PMB Customer: PMB number present",
		confidence:  constants.ConfidenceMedium,
	},
}

// generalDelivery is the terminal rule; it always matches.
var generalDelivery = Detection{
	ServiceType: constants.ServiceGeneral,
	MatchedRule: "No special service type detected, general delivery",
	Confidence:  constants.ConfidenceHigh,
}

func anyMatch(re *regexp.Regexp, fields ...string) bool {
	for _, f := range fields {
		if f != "" && re.MatchString(f) {
			return true
		}
	}
	return false
}
