package projectconfig

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaCompatible reports whether a project config written with schema
// version stored can be applied by an installation at schema version
// installed. Stored configs from a newer schema are incompatible.
func SchemaCompatible(stored, installed string) (bool, error) {
	storedVersion, err := semver.NewVersion(stored)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrInvalidVersion, stored, err)
	}
	installedVersion, err := semver.NewVersion(installed)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrInvalidVersion, installed, err)
	}
	return !storedVersion.GreaterThan(installedVersion), nil
}
