package constants

// ServiceType is the delivery program a package arrives under.
type ServiceType string

const (
	ServicePMBCustomer    ServiceType = "pmb_customer"     // mailbox customer of the store
	ServiceIPostal        ServiceType = "ipostal"          // iPostal1 digital mailbox
	ServiceUPSAccessPoint ServiceType = "ups_access_point" // store is a UPS pickup location
	ServiceFedExHAL       ServiceType = "fedex_hal"        // FedEx Hold At Location
	ServiceKinek          ServiceType = "kinek"            // Kinek pickup point
	ServiceAmazonHub      ServiceType = "amazon_hub"       // Amazon Hub Counter / Locker
	ServiceGeneral        ServiceType = "general_delivery" // no special program
)

var allServiceTypes = []ServiceType{
	ServicePMBCustomer,
	ServiceIPostal,
	ServiceUPSAccessPoint,
	ServiceFedExHAL,
	ServiceKinek,
	ServiceAmazonHub,
	ServiceGeneral,
}

var serviceTypeLabels = map[ServiceType]string{
	ServicePMBCustomer:    "PMB Customer",
	ServiceIPostal:        "iPostal",
	ServiceUPSAccessPoint: "UPS Access Point",
	ServiceFedExHAL:       "FedEx Hold At Location",
	ServiceKinek:          "Kinek",
	ServiceAmazonHub:      "Amazon Hub",
	ServiceGeneral:        "General Delivery",
}

func AllServiceTypes() []ServiceType {
	out := make([]ServiceType, len(allServiceTypes))
	copy(out, allServiceTypes)
	return out
}

// Label returns the display name used on check-in sheets.
func (s ServiceType) Label() string {
	if l, ok := serviceTypeLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s ServiceType) String() string { return string(s) }
