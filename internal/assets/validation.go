package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is a bare file name without
// extension. Separators and dots are rejected, which rules out traversal.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
