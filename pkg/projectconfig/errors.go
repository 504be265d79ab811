package projectconfig

import "errors"

var (
	// ErrParseDocument is returned when a project-config file is not valid YAML
	// or its root is not a mapping.
	ErrParseDocument = errors.New("failed to parse project config document")

	// ErrReadDocument is returned when a project-config file cannot be read.
	ErrReadDocument = errors.New("failed to read project config document")

	// ErrInvalidVersion is returned when a schema version is not valid semver.
	ErrInvalidVersion = errors.New("invalid schema version")
)
