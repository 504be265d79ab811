package pathutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/cmskit/pkg/inflect"
)

// DefaultMaxFilenameLength is the byte limit most filesystems place on a
// single path segment.
const DefaultMaxFilenameLength = 255

// Option configures SanitizeFilename.
type Option func(*filenameConfig)

type filenameConfig struct {
	separator string
	maxLength int
	ascii     bool
}

// WithSeparator sets the replacement for disallowed characters. Default "-".
func WithSeparator(sep string) Option {
	return func(c *filenameConfig) {
		c.separator = sep
	}
}

// WithMaxLength caps the result length in bytes. Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(c *filenameConfig) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithASCII controls transliteration to ASCII. Enabled by default.
func WithASCII(enabled bool) Option {
	return func(c *filenameConfig) {
		c.ascii = enabled
	}
}

// SanitizeFilename turns name into a single safe path segment.
// Dot-only segments are dropped and the rest are joined. Path separators,
// control characters and shell-hostile punctuation collapse into the
// separator. Leading dots are removed so the result is never a hidden file.
// An empty result becomes "file".
func SanitizeFilename(name string, opts ...Option) string {
	cfg := &filenameConfig{
		separator: "-",
		maxLength: DefaultMaxFilenameLength,
		ascii:     true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	kept := make([]string, 0, 4)
	for _, segment := range Segments(name) {
		if strings.Trim(segment, ".") != "" {
			kept = append(kept, segment)
		}
	}
	name = strings.Join(kept, " ")

	if cfg.ascii {
		name = inflect.ToASCII(name)
	}

	var b strings.Builder
	b.Grow(len(name))
	lastWasSep := true
	for _, r := range name {
		if allowedFilenameRune(r) {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}
		if !lastWasSep {
			b.WriteString(cfg.separator)
			lastWasSep = true
		}
	}

	result := strings.TrimSuffix(b.String(), cfg.separator)
	result = strings.TrimLeft(result, ".")
	if cfg.separator != "" {
		result = strings.TrimPrefix(result, cfg.separator)
	}

	if len(result) > cfg.maxLength {
		result = truncateUTF8(result, cfg.maxLength)
		if cfg.separator != "" {
			result = strings.TrimSuffix(result, cfg.separator)
		}
	}
	if result == "" {
		return "file"
	}
	return result
}

func allowedFilenameRune(r rune) bool {
	switch r {
	case '-', '_', '.':
		return true
	case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '%', '#', '&', '$', '\'', '`', ';':
		return false
	}
	if unicode.IsControl(r) || unicode.IsSpace(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
