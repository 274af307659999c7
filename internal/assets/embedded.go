package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/* templates/* scripts/*
var embedded embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load reads the named asset of the given kind.
func (e *EmbeddedLoader) Load(kind Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := embedded.ReadFile(kind.path(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", kind.NotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
