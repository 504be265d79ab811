package redact

import (
	"regexp"
	"slices"
	"strings"
)

// DefaultMask replaces sensitive values.
const DefaultMask = "••••••••"

// DefaultKeys are the markers matched against normalized key names.
var DefaultKeys = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"privatekey",
	"accesskey",
	"authorization",
	"cookie",
	"csrf",
	"sessionid",
}

// Option configures a Redactor.
type Option func(*Redactor)

// WithKeys adds markers to the sensitive key list.
func WithKeys(keys ...string) Option {
	return func(r *Redactor) {
		r.extra = append(r.extra, keys...)
	}
}

// WithoutDefaults drops DefaultKeys so only WithKeys markers apply.
func WithoutDefaults() Option {
	return func(r *Redactor) {
		r.noDefaults = true
	}
}

// WithMask sets the replacement string.
func WithMask(mask string) Option {
	return func(r *Redactor) {
		r.mask = mask
	}
}

// Redactor masks values stored under sensitive keys. It is immutable after
// New and safe for concurrent use.
type Redactor struct {
	keys    []string
	mask    string
	pattern *regexp.Regexp

	extra      []string
	noDefaults bool
}

// New creates a Redactor with DefaultKeys and DefaultMask.
func New(opts ...Option) *Redactor {
	r := &Redactor{mask: DefaultMask}
	for _, opt := range opts {
		opt(r)
	}

	candidates := r.extra
	if !r.noDefaults {
		candidates = append(slices.Clone(DefaultKeys), r.extra...)
	}
	for _, k := range candidates {
		if k = normalizeKey(k); k != "" && !slices.Contains(r.keys, k) {
			r.keys = append(r.keys, k)
		}
	}
	r.pattern = buildPattern(r.keys)
	return r
}

// Mask returns the configured mask.
func (r *Redactor) Mask() string {
	return r.mask
}

// IsSensitive reports whether key matches any marker.
func (r *Redactor) IsSensitive(key string) bool {
	k := normalizeKey(key)
	if k == "" {
		return false
	}
	for _, marker := range r.keys {
		if strings.Contains(k, marker) {
			return true
		}
	}
	return false
}

// Value returns the mask when key is sensitive. Otherwise maps and slices are
// redacted recursively and other values are returned as-is.
func (r *Redactor) Value(key string, v any) any {
	if r.IsSensitive(key) {
		return r.mask
	}
	switch val := v.(type) {
	case map[string]any:
		return r.Map(val)
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			if r.IsSensitive(k) {
				out[k] = r.mask
			} else {
				out[k] = s
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = r.Value("", item)
		}
		return out
	case string:
		return r.String(val)
	}
	return v
}

// Map returns a deep copy of m with sensitive values masked.
func (r *Redactor) Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = r.Value(k, v)
	}
	return out
}

// String masks key=value, key: value and "key":"value" occurrences of
// sensitive keys inside free text.
func (r *Redactor) String(s string) string {
	if r.pattern == nil || s == "" {
		return s
	}
	return r.pattern.ReplaceAllStringFunc(s, func(match string) string {
		sub := r.pattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		value := sub[2]
		if strings.HasPrefix(value, `"`) {
			return sub[1] + `"` + r.mask + `"`
		}
		return sub[1] + r.mask
	})
}

func buildPattern(keys []string) *regexp.Regexp {
	if len(keys) == 0 {
		return nil
	}
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = separatedMarker(k)
	}
	// Group 1 is the key with its separator, group 2 the value.
	return regexp.MustCompile(`(?i)("?[\w-]*(?:` + strings.Join(quoted, "|") + `)[\w-]*"?\s*[:=]\s*)("[^"]*"|[^\s&,;"]+)`)
}

// separatedMarker matches marker with an optional -, _ or space between any
// two characters, mirroring normalizeKey.
func separatedMarker(marker string) string {
	parts := make([]string, 0, len(marker))
	for _, r := range marker {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return strings.Join(parts, "[-_ ]?")
}

var keyNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeKey(key string) string {
	return keyNormalizer.Replace(strings.ToLower(key))
}
