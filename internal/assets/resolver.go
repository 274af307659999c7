package assets

import (
	"errors"
)

// Resolver combines a custom loader with the embedded one. Custom assets
// take precedence; an asset missing from the custom directory falls back to
// its embedded version.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// assets only. A non-empty but invalid path is an error.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load loads an asset, trying the custom loader first if available.
func (r *Resolver) Load(kind Kind, name string) (string, error) {
	if r.custom == nil {
		return r.embedded.Load(kind, name)
	}

	content, err := r.custom.Load(kind, name)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the fallback.
	if !isNotFoundError(err) {
		return "", err
	}

	return r.embedded.Load(kind, name)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrScriptNotFound)
}

// HasCustomLoader reports whether a custom asset directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
