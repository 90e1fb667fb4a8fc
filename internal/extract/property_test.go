package extract

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/carrier"
)

var (
	sampleTracking = []string{"", "1Z999AA10123456784", "TBA123456789000", "9400111899223100012345", "12345", "ZZZ-NOT-A-NUMBER-!!"}
	sampleGuesses  = []string{"", "UPS", "federal express", "temu", "mystery courier"}
	sampleNames    = []string{"", "John Smith", "ATTN: DAVID KIM", "Acme Solutions LLC", "   "}
	pmbTokens      = []string{"PMB", "pmb", "Suite", "STE", "Unit", "Box", "Apt", "#"}
)

func TestPipelineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)
	p := NewProcessor()

	pick := func(list []string) gopter.Gen { return gen.IntRange(0, len(list)-1) }

	properties.Property("confidence never rises when a degradation applies", prop.ForAll(
		func(ti, gi, ni, pct int) bool {
			base := float64(pct) / 100
			res := p.Process(RawExtraction{
				TrackingNumber: sampleTracking[ti],
				Carrier:        sampleGuesses[gi],
				RecipientName:  sampleNames[ni],
				Confidence:     &base,
			})
			if res.Confidence < 0 || res.Confidence > 1 {
				return false
			}
			d := DegradationsOf(res)
			if d.TrackingInvalid || d.CarrierLow || d.RecipientEmpty {
				return res.Confidence <= base
			}
			return res.Confidence == base
		},
		pick(sampleTracking), pick(sampleGuesses), pick(sampleNames), gen.IntRange(0, 100),
	))

	properties.Property("PMB normalization is idempotent", prop.ForAll(
		func(s string) bool {
			once := NormalizePMB(s)
			return NormalizePMB(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("PMB tokens always pad to four digits", prop.ForAll(
		func(ti, n int) bool {
			got := NormalizePMB(pmbTokens[ti] + " " + strings.Repeat("0", n%3) + strconv.Itoa(n))
			return strings.HasPrefix(got, "PMB-") && len(got) >= len("PMB-0000")
		},
		pick(pmbTokens),
		gen.IntRange(0, 9999),
	))

	properties.Property("tracking format beats a conflicting guess", prop.ForAll(
		func(gi int) bool {
			id := carrier.Identify("1Z999AA10123456784", sampleGuesses[gi], "")
			return id.Carrier == constants.CarrierUPS
		},
		pick(sampleGuesses),
	))

	properties.TestingRun(t)
}
