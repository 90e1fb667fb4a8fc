package recipient

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// businessSuffixes are whole-word, case-insensitive markers of a company name.
var businessSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(LLC|L\.L\.C\.?)(\W|$)`),
	regexp.MustCompile(`(?i)\b(INC\.?|INCORPORATED)(\W|$)`),
	regexp.MustCompile(`(?i)\b(CORP\.?|CORPORATION)(\W|$)`),
	regexp.MustCompile(`(?i)\b(CO\.?|COMPANY)(\W|$)`),
	regexp.MustCompile(`(?i)\b(LTD\.?|LIMITED)(\W|$)`),
	regexp.MustCompile(`(?i)\b(LP|L\.P\.)(\W|$)`),
	regexp.MustCompile(`(?i)\b(LLP|L\.L\.P\.)(\W|$)`),
	regexp.MustCompile(`(?i)\b(PLLC|P\.L\.L\.C\.?)(\W|$)`),
	regexp.MustCompile(`(?i)\b(PC|P\.C\.)(\W|$)`),
	regexp.MustCompile(`(?i)\b(DBA|D/B/A)(\W|$)`),
	regexp.MustCompile(`(?i)\b(ASSOC\.?|ASSOCIATES?|ASSOCIATION)(\W|$)`),
	regexp.MustCompile(`(?i)\b(GROUP|HOLDINGS?|ENTERPRISES?|VENTURES?)\b`),
	regexp.MustCompile(`(?i)\b(PARTNERS?|PARTNERSHIP)\b`),
	regexp.MustCompile(`(?i)\b(SERVICES?|SOLUTIONS?|SYSTEMS?)\b`),
	regexp.MustCompile(`(?i)\b(FOUNDATION|INSTITUTE|AGENCY)\b`),
	regexp.MustCompile(`(?i)\b(INTERNATIONAL|GLOBAL|WORLDWIDE)\b`),
	regexp.MustCompile(`(?i)\b(STUDIO|STUDIOS)\b`),
	regexp.MustCompile(`(?i)\b(DEPT\.?|DEPARTMENT)(\W|$)`),
}

var reStoreNumber = regexp.MustCompile(`(?i)\b(store|shop|office|dept)\s*#?\d`)

// longSingleWord is the length past which an unbroken word is treated as a
// business name. Long single-word personal names are misread as businesses;
// the flag only drives sorting and display.
const longSingleWord = 15

// IsBusinessName guesses whether name belongs to a business rather than a person.
func IsBusinessName(name string) bool {
	for _, re := range businessSuffixes {
		if re.MatchString(name) {
			return true
		}
	}
	if reStoreNumber.MatchString(name) {
		return true
	}
	if name != "" && !strings.Contains(name, " ") && utf8.RuneCountInString(name) > longSingleWord {
		return true
	}
	return false
}
