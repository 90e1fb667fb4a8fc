package extract

import (
	"regexp"
	"strings"
)

const pmbWidth = 4

var (
	rePMBFormatted = regexp.MustCompile(`(?i)^PMB-(\d+)$`)
	rePMBToken     = regexp.MustCompile(`(?i)(PMB|Suite|STE|Unit|Box|Apt|#)\s*[-#:]?\s*(\d+)`)
	reNonDigits    = regexp.MustCompile(`[^0-9]`)
)

// NormalizePMB rewrites a mailbox number into PMB-XXXX form, zero-padded to
// four digits. Input with no digits at all is returned trimmed. Applying it
// to its own output changes nothing.
func NormalizePMB(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := rePMBFormatted.FindStringSubmatch(s); m != nil {
		return formatPMB(m[1])
	}
	if m := rePMBToken.FindStringSubmatch(s); m != nil {
		return formatPMB(m[2])
	}
	if digits := reNonDigits.ReplaceAllString(s, ""); digits != "" {
		return formatPMB(digits)
	}
	return s
}

func formatPMB(digits string) string {
	if n := pmbWidth - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	return "PMB-" + digits
}
