package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCarrier(t *testing.T) {
	tests := []struct {
		in   string
		want Carrier
		ok   bool
	}{
		{"UPS", CarrierUPS, true},
		{"  Federal Express ", CarrierFedEx, true},
		{"Amazon.com", CarrierAmazon, true},
		{"U.S. Postal Service!", CarrierOther, false},
		{"us postal service", CarrierUSPS, true},
		{"On-Trac", CarrierOnTrac, true},
		{"on trac", CarrierOnTrac, true},
		{"Temu", CarrierOther, false},
		{"", CarrierOther, false},
		{"pigeon", CarrierOther, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := CanonicalizeCarrier(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestAllCarriersIsACopy(t *testing.T) {
	all := AllCarriers()
	all[0] = "tampered"
	assert.Equal(t, CarrierAmazon, AllCarriers()[0])
	assert.Equal(t, CarrierOther, all[len(all)-1])
	assert.True(t, CarrierDHL.Valid())
	assert.False(t, Carrier("pigeon").Valid())
}

func TestPackageSize(t *testing.T) {
	for in, want := range map[string]PackageSize{
		"Bubble Mailer": SizePack,
		" XL ":          SizeXLarge,
		"envelope":      SizeLetter,
		"lg":            SizeLarge,
		"":              SizeMedium,
		"gigantic":      SizeMedium,
	} {
		assert.Equal(t, want, NormalizePackageSize(in), in)
	}

	_, ok := LookupPackageSize("gigantic")
	assert.False(t, ok)
	s, ok := LookupPackageSize("Small")
	assert.True(t, ok)
	assert.Equal(t, SizeSmall, s)
}

func TestServiceTypeLabel(t *testing.T) {
	assert.Equal(t, "FedEx Hold At Location", ServiceFedExHAL.Label())
	assert.Equal(t, "General Delivery", ServiceGeneral.Label())
	assert.Equal(t, "mystery", ServiceType("mystery").Label())
	assert.Len(t, AllServiceTypes(), 7)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, "yaml", NormalizeExt(".YAML"))
	assert.True(t, IsYAMLExt(".yml"))
	assert.False(t, IsYAMLExt("json"))
	_, ok := AllowedExtensions["json"]
	assert.True(t, ok)
}
