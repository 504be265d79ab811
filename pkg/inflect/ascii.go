package inflect

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiMap covers letters that NFD does not decompose into a base letter
// plus combining marks.
var asciiMap = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
	'ħ': "h", 'Ħ': "H",
	'ŀ': "l", 'Ŀ': "L",
	'ŧ': "t", 'Ŧ': "T",
	'‘': "'", '’': "'",
	'“': `"`, '”': `"`,
	'–': "-", '—': "-",
	'…': "...",
	'«': "<<", '»': ">>",
	' ': " ",
}

// ToASCII transliterates s into plain ASCII.
func ToASCII(s string) string {
	if isASCII(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if repl, ok := asciiMap[r]; ok {
			b.WriteString(repl)
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= unicode.MaxASCII {
			return false
		}
	}
	return true
}
