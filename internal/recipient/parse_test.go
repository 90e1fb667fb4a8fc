package recipient

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		want            string
		business        bool
		transformations []string
	}{
		{
			name:            "attn prefix and caps",
			raw:             "ATTN: DAVID KIM",
			want:            "David Kim",
			transformations: []string{"Stripped ATTN prefix", "Normalized to Title Case"},
		},
		{
			name:            "clean mixed case untouched",
			raw:             "John Smith",
			want:            "John Smith",
			transformations: []string{},
		},
		{
			name:            "business suffix",
			raw:             "Acme Solutions LLC",
			want:            "Acme Solutions LLC",
			business:        true,
			transformations: []string{},
		},
		{
			name:            "store number is a business",
			raw:             "Walgreens Store 5521",
			want:            "Walgreens Store 5521",
			business:        true,
			transformations: []string{},
		},
		{
			name:            "care of keeps the person",
			raw:             "Jane Doe C/O Acme Corp",
			want:            "Jane Doe",
			transformations: []string{"Separated from C/O (business: Acme Corp)"},
		},
		{
			name: "multi-line block",
			raw:  "SHIP TO:\nMARIA GARCIA\n123 Main St\nAustin, TX 78701",
			want: "Maria Garcia",
			transformations: []string{
				"Extracted first meaningful line from multi-line block",
				"Normalized to Title Case",
			},
		},
		{
			name:            "pmb then phone",
			raw:             "John Smith (555) 123-4567 PMB 1234",
			want:            "John Smith",
			transformations: []string{"Stripped PMB/Suite/Unit number", "Stripped phone number"},
		},
		{
			name:            "phone exposes pmb on next pass",
			raw:             "John Smith PMB 1234 555-123-4567",
			want:            "John Smith",
			transformations: []string{"Stripped phone number", "Stripped PMB/Suite/Unit number"},
		},
		{
			name:            "deliver to label",
			raw:             "deliver to: sam lee",
			want:            "Sam Lee",
			transformations: []string{"Stripped address label prefix", "Normalized to Title Case"},
		},
		{
			name:            "to prefix needs a word boundary",
			raw:             "TONY STARK",
			want:            "Tony Stark",
			transformations: []string{"Normalized to Title Case"},
		},
		{
			name:            "email suffix",
			raw:             "Jane Roe jane@example.com",
			want:            "Jane Roe",
			transformations: []string{"Stripped email address"},
		},
		{
			name:            "street fragment and unit",
			raw:             "John Smith 123 Main St Apt 4",
			want:            "John Smith",
			transformations: []string{"Stripped PMB/Suite/Unit number", "Stripped street address fragment"},
		},
		{
			name:            "city state zip",
			raw:             "JOHN SMITH, NEW YORK, NY 10001",
			want:            "John Smith",
			transformations: []string{"Stripped city/state/zip", "Normalized to Title Case"},
		},
		{
			name:            "trailing period hides phone",
			raw:             "JOHN SMITH 5551234567.",
			want:            "John Smith",
			transformations: []string{"Stripped phone number", "Normalized to Title Case"},
		},
		{
			name:            "trailing comma hides zip",
			raw:             "John Smith, NY 10001,",
			want:            "John Smith",
			transformations: []string{"Stripped city/state/zip"},
		},
		{
			name: "noise before care of",
			raw:  "JOHN SMITH PMB 12 C/O ACME LLC",
			want: "John Smith",
			transformations: []string{
				"Separated from C/O (business: ACME LLC)",
				"Stripped PMB/Suite/Unit number",
				"Normalized to Title Case",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.business, got.IsBusiness)
			assert.Equal(t, tt.raw, got.RawInput)
			assert.Equal(t, tt.transformations, got.Transformations)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		got := Parse(raw)
		assert.Equal(t, "", got.Name)
		assert.False(t, got.IsBusiness)
		assert.NotNil(t, got.Transformations)
		assert.Empty(t, got.Transformations)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"MARY O'BRIEN-MCDONALD": "Mary O'Brien-McDonald",
		"john smith jr":         "John Smith JR",
		"the bank of america":   "The Bank of America",
		"acme widgets llc":      "Acme Widgets LLC",
		"élodie durand":         "Élodie Durand",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleCase(in), in)
	}
}

func TestIsBusinessName(t *testing.T) {
	assert.True(t, IsBusinessName("Globex Corp."))
	assert.True(t, IsBusinessName("Smith & Associates"))
	assert.True(t, IsBusinessName("Office #12"))
	assert.True(t, IsBusinessName("Supercalifragilistic"))
	assert.False(t, IsBusinessName("Corey Costa"))
	assert.False(t, IsBusinessName("Maria Garcia"))
	assert.False(t, IsBusinessName(""))
}

var nameWords = []string{"david", "KIM", "Maria", "garcia", "Li", "NGUYEN", "o'brien", "McDonald", "smith-jones", "Élodie"}

func TestParse_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	punct := []string{"", ",", ".", " ,", "..", ", "}
	type decoration struct {
		first, last, pmb, punct int
		attn, phone, cityZip, careOf bool
	}
	decorate := func(d decoration) string {
		raw := nameWords[d.first] + " " + nameWords[d.last]
		if d.attn {
			raw = "ATTN: " + raw
		}
		if d.cityZip {
			raw += ", NY 10001"
		}
		if d.phone {
			raw += " (555) 123-4567"
		}
		if d.pmb > 0 {
			raw += fmt.Sprintf(" PMB %d", d.pmb)
		}
		raw += punct[d.punct]
		if d.careOf {
			raw += " C/O Acme LLC"
		}
		return raw
	}
	idx := gen.IntRange(0, len(nameWords)-1)
	decorations := gopter.CombineGens(
		idx, idx, gen.IntRange(0, 9999), gen.IntRange(0, len(punct)-1),
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
	).Map(func(v []any) decoration {
		return decoration{
			first: v[0].(int), last: v[1].(int), pmb: v[2].(int), punct: v[3].(int),
			attn: v[4].(bool), phone: v[5].(bool), cityZip: v[6].(bool), careOf: v[7].(bool),
		}
	})

	properties.Property("parsing a parsed name changes nothing", prop.ForAll(
		func(d decoration) bool {
			once := Parse(decorate(d))
			twice := Parse(once.Name)
			return twice.Name == once.Name && twice.IsBusiness == once.IsBusiness
		},
		decorations,
	))

	properties.Property("noise never survives", prop.ForAll(
		func(d decoration) bool {
			got := Parse(decorate(d)).Name
			upper := strings.ToUpper(got)
			return !strings.Contains(upper, "ATTN") &&
				!strings.Contains(upper, "PMB") &&
				!strings.Contains(upper, "ACME") &&
				!strings.Contains(got, "555") &&
				!strings.Contains(got, "10001") &&
				!strings.HasSuffix(got, ",") && !strings.HasSuffix(got, ".")
		},
		decorations,
	))

	properties.TestingRun(t)
}
