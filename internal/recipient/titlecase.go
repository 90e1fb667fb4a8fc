package recipient

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {}, "for": {}, "in": {},
	"nor": {}, "of": {}, "on": {}, "or": {}, "so": {}, "the": {}, "to": {}, "up": {}, "yet": {},
}

var upperWords = map[string]struct{}{
	"llc": {}, "inc": {}, "co": {}, "ltd": {}, "lp": {}, "llp": {}, "pc": {}, "pllc": {}, "dba": {},
	"ii": {}, "iii": {}, "iv": {}, "jr": {}, "sr": {},
}

// isSingleCase reports whether name is entirely upper or entirely lower case.
func isSingleCase(name string) bool {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	return name == upper.String(name) || name == lower.String(name)
}

// TitleCase capitalizes each word of a space-separated name. The first word is
// always capitalized; later small words stay lower and corporate suffixes and
// generational markers are upper-cased.
func TitleCase(s string) string {
	upper := cases.Upper(language.Und)
	words := strings.Split(cases.Lower(language.Und).String(s), " ")
	for i, w := range words {
		if i > 0 {
			if _, ok := upperWords[w]; ok {
				words[i] = upper.String(w)
				continue
			}
			if _, ok := smallWords[w]; ok {
				continue
			}
		}
		words[i] = capitalize(w, upper)
	}
	return strings.Join(words, " ")
}

func capitalize(word string, upper cases.Caser) string {
	if word == "" {
		return word
	}
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, p := range parts {
			parts[i] = capitalize(p, upper)
		}
		return strings.Join(parts, "-")
	}
	if strings.HasPrefix(word, "mc") && len(word) > 2 {
		return "Mc" + upperFirst(word[2:], upper)
	}
	if strings.HasPrefix(word, "o'") && len(word) > 2 {
		return "O'" + upperFirst(word[2:], upper)
	}
	return upperFirst(word, upper)
}

func upperFirst(s string, upper cases.Caser) string {
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + s[size:]
}
