package inflect

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

type suffixRule struct {
	suffix      string
	replacement string
}

var irregular = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
	"ox":     "oxen",
	"datum":  "data",
	"index":  "indices",
	"matrix": "matrices",
	"vertex": "vertices",
	"axis":   "axes",
	"crisis": "crises",
	"status": "statuses",
	"quiz":   "quizzes",
}

// irregularPlural is the reverse of irregular, built once at init.
var irregularPlural = func() map[string]string {
	m := make(map[string]string, len(irregular))
	for s, p := range irregular {
		m[p] = s
	}
	return m
}()

var uncountable = map[string]struct{}{
	"equipment":   {},
	"information": {},
	"rice":        {},
	"money":       {},
	"species":     {},
	"series":      {},
	"fish":        {},
	"sheep":       {},
	"deer":        {},
	"news":        {},
	"metadata":    {},
	"feedback":    {},
	"software":    {},
	"media":       {},
}

// Checked in order, first match wins.
var pluralRules = []suffixRule{
	{"knife", "knives"},
	{"wife", "wives"},
	{"life", "lives"},
	{"half", "halves"},
	{"leaf", "leaves"},
	{"wolf", "wolves"},
	{"shelf", "shelves"},
	{"ss", "sses"},
	{"sh", "shes"},
	{"ch", "ches"},
	{"x", "xes"},
	{"z", "zes"},
	{"s", "ses"},
}

var singularRules = []suffixRule{
	{"knives", "knife"},
	{"wives", "wife"},
	{"lives", "life"},
	{"halves", "half"},
	{"leaves", "leaf"},
	{"wolves", "wolf"},
	{"shelves", "shelf"},
	{"sses", "ss"},
	{"shes", "sh"},
	{"ches", "ch"},
	{"xes", "x"},
	{"zes", "z"},
}

// Pluralize returns the English plural form of word.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if _, ok := uncountable[lower]; ok {
		return word
	}
	if p, ok := irregular[lower]; ok {
		return matchCase(word, p)
	}
	if _, ok := irregularPlural[lower]; ok {
		return word
	}
	for _, rule := range pluralRules {
		if strings.HasSuffix(lower, rule.suffix) {
			return word[:len(word)-len(rule.suffix)] + matchSuffixCase(word, rule.replacement)
		}
	}
	if endsWithConsonantY(lower) {
		return word[:len(word)-1] + matchSuffixCase(word, "ies")
	}
	return word + matchSuffixCase(word, "s")
}

// Singularize returns the English singular form of word.
func Singularize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if _, ok := uncountable[lower]; ok {
		return word
	}
	if s, ok := irregularPlural[lower]; ok {
		return matchCase(word, s)
	}
	if _, ok := irregular[lower]; ok {
		return word
	}
	for _, rule := range singularRules {
		if strings.HasSuffix(lower, rule.suffix) {
			return word[:len(word)-len(rule.suffix)] + matchSuffixCase(word, rule.replacement)
		}
	}
	if strings.HasSuffix(lower, "ies") && len(lower) > 3 {
		return word[:len(word)-3] + matchSuffixCase(word, "y")
	}
	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 1 {
		return word[:len(word)-1]
	}
	return word
}

// Count formats n followed by the singular or plural form, chosen by the
// cardinal plural rules of tag.
func Count(tag language.Tag, n int, singular, pluralForm string) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	form := plural.Cardinal.MatchPlural(tag, abs, 0, 0, 0, 0)
	word := pluralForm
	if form == plural.One {
		word = singular
	}
	return strconv.Itoa(n) + " " + word
}

func endsWithConsonantY(s string) bool {
	if len(s) < 2 || s[len(s)-1] != 'y' {
		return false
	}
	switch s[len(s)-2] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}

// matchCase applies the case of the first letter of src to dst, or upper-cases
// dst entirely when src is all upper case.
func matchCase(src, dst string) string {
	if isUpper(src) && len(src) > 1 {
		return strings.ToUpper(dst)
	}
	if r, _ := utf8.DecodeRuneInString(src); unicode.IsUpper(r) {
		d, size := utf8.DecodeRuneInString(dst)
		return string(unicode.ToUpper(d)) + dst[size:]
	}
	return dst
}

func matchSuffixCase(src, suffix string) string {
	if isUpper(src) && len(src) > 1 {
		return strings.ToUpper(suffix)
	}
	return suffix
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
