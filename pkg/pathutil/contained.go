package pathutil

import (
	"fmt"
	"strings"
)

// Segments splits path on any run of "/" or "\" and drops empty segments.
func Segments(path string) []string {
	return strings.FieldsFunc(path, isSeparator)
}

// IsContained reports whether path never ascends above its starting directory.
func IsContained(path string) bool {
	depth := 0
	for _, segment := range Segments(path) {
		switch segment {
		case "..":
			depth--
		case ".":
		default:
			depth++
		}
		if depth < 0 {
			return false
		}
	}
	return true
}

// EnsureContained returns ErrPathNotContained when IsContained(path) is false.
func EnsureContained(path string) error {
	if !IsContained(path) {
		return fmt.Errorf("%w: %q", ErrPathNotContained, path)
	}
	return nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
