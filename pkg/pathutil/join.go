package pathutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// windowsVolume matches drive-letter prefixes such as "C:" regardless of the
// host OS so uploads from Windows clients are rejected everywhere.
var windowsVolume = regexp.MustCompile(`^[a-zA-Z]:`)

// SecureJoin joins a user-supplied relative path onto root and guarantees the
// result stays inside root.
func SecureJoin(root, path string) (string, error) {
	if root == "" {
		return "", ErrEmptyRoot
	}
	if IsAbs(path) {
		return "", fmt.Errorf("%w: %q", ErrAbsolutePath, path)
	}
	if err := EnsureContained(path); err != nil {
		return "", err
	}

	cleanRoot := filepath.Clean(root)
	joined := filepath.Join(cleanRoot, filepath.FromSlash(strings.ReplaceAll(path, `\`, "/")))

	rel, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathNotContained, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathNotContained, path)
	}

	return joined, nil
}

// IsAbs reports whether path is absolute on either POSIX or Windows, including
// UNC-style "\\server" paths.
func IsAbs(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' || path[0] == '\\' {
		return true
	}
	return windowsVolume.MatchString(path) || filepath.IsAbs(path)
}
