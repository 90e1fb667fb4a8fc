// Package recipient turns the "Ship To" text the vision model returns into a
// clean person or business name.
package recipient

import (
	"fmt"
	"regexp"
	"strings"
)

// maxNoisePasses bounds the strip loop; stripping one pattern can expose
// another, but malformed OCR text must not keep the loop going.
const maxNoisePasses = 5

// Result is the parsed recipient plus a log of what was changed.
type Result struct {
	Name            string   `json:"name"`
	IsBusiness      bool     `json:"isBusiness"`
	RawInput        string   `json:"rawInput"`
	Transformations []string `json:"transformations"`
}

type noisePattern struct {
	pattern *regexp.Regexp
	label   string
}

var (
	reBareLabel  = regexp.MustCompile(`(?i)^(ship\s*to|deliver\s*to|to)\s*:?\s*$`)
	reCareOf     = regexp.MustCompile(`(?i)^(.+?)\s+C/O\s+(.+)$`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reTrailPunct = regexp.MustCompile(`[,.\s]+$`)
)

// noisePatterns run in this order on every pass.
var noisePatterns = []noisePattern{
	{regexp.MustCompile(`(?i)^(ATTN\b:?\s*|ATTENTION\b:?\s*)`), "Stripped ATTN prefix"},
	{regexp.MustCompile(`(?i)^(C/O\s+|CARE\s+OF\s+)`), "Stripped C/O prefix"},
	{regexp.MustCompile(`(?i)\s*(\b(PMB|Suite|STE|Unit|Box|Apt)|#)\s*[-#:]?\s*\d+\s*$`), "Stripped PMB/Suite/Unit number"},
	{regexp.MustCompile(`\s*\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\s*$`), "Stripped phone number"},
	{regexp.MustCompile(`(?i)^(SHIP\s*TO\b:?\s*|DELIVER\s*TO\b:?\s*|TO\b:?\s*)`), "Stripped address label prefix"},
	{regexp.MustCompile(`\s*\S+@\S+\.\S+\s*$`), "Stripped email address"},
	{regexp.MustCompile(`(?i)\s*\d+\s+[A-Z][A-Za-z]+\s+(ST|AVE|BLVD|RD|DR|LN|CT|PL|WAY|CIR|HWY|PKWY|TERR?)\b.*$`), "Stripped street address fragment"},
	{regexp.MustCompile(`(?i)(,\s*[A-Z][A-Z .'-]*,\s*[A-Z]{2}|,?\s+[A-Z]{2})\s+\d{5}(-\d{4})?\s*$`), "Stripped city/state/zip"},
}

// Parse cleans a raw recipient block. It never fails: empty input yields an
// empty name and no transformations.
func Parse(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{RawInput: raw, Transformations: []string{}}
	}

	name := strings.TrimSpace(raw)
	transformations := make([]string, 0, 4)

	if strings.Contains(name, "\n") {
		if line, ok := firstNameLine(name); ok {
			name = line
			transformations = append(transformations, "Extracted first meaningful line from multi-line block")
		}
	}

	name, stripped := stripNoise(name)
	transformations = append(transformations, stripped...)

	// "Jane Doe C/O Acme Corp": the person is the recipient.
	if m := reCareOf.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		transformations = append(transformations, fmt.Sprintf("Separated from C/O (business: %s)", strings.TrimSpace(m[2])))
		name, stripped = stripNoise(name)
		transformations = append(transformations, stripped...)
	}

	name = strings.TrimSpace(reSpaces.ReplaceAllString(name, " "))

	isBusiness := IsBusinessName(name)

	if name != "" && isSingleCase(name) {
		name = TitleCase(name)
		transformations = append(transformations, "Normalized to Title Case")
	}

	name = strings.TrimSpace(reTrailPunct.ReplaceAllString(name, ""))

	return Result{
		Name:            name,
		IsBusiness:      isBusiness,
		RawInput:        raw,
		Transformations: transformations,
	}
}

// firstNameLine skips bare "SHIP TO:" style label lines.
func firstNameLine(block string) (string, bool) {
	for _, l := range strings.Split(block, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || reBareLabel.MatchString(l) {
			continue
		}
		return l, true
	}
	return "", false
}

// stripNoise runs noise patterns until a pass changes nothing or the pass
// limit is reached. Trailing commas and periods are dropped at the start of
// every pass so they cannot hide an end-anchored pattern.
func stripNoise(name string) (string, []string) {
	var applied []string
	for pass := 0; pass < maxNoisePasses; pass++ {
		before := name
		name = strings.TrimSpace(reTrailPunct.ReplaceAllString(name, ""))
		for _, np := range noisePatterns {
			next := strings.TrimSpace(replaceFirst(np.pattern, name))
			if next != name {
				applied = append(applied, np.label)
				name = next
			}
		}
		if name == before {
			break
		}
	}
	return name, applied
}

func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
