package pathutil

import "errors"

var (
	// ErrPathNotContained is returned when a path resolves above its root.
	ErrPathNotContained = errors.New("path escapes its root directory")

	// ErrAbsolutePath is returned when an absolute path is passed where a
	// root-relative one is expected.
	ErrAbsolutePath = errors.New("path must be relative")

	// ErrEmptyRoot is returned when SecureJoin is called without a root.
	ErrEmptyRoot = errors.New("root directory cannot be empty")
)
