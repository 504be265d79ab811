package projectconfig

import "regexp"

// UIDPattern matches a canonical 36-character hyphenated hexadecimal UID.
const UIDPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

var uidRegex = regexp.MustCompile(`^` + UIDPattern + `$`)

// IsUID reports whether s is a UID-shaped key.
func IsUID(s string) bool {
	return len(s) == 36 && uidRegex.MatchString(s)
}
