// Package yamlutil wraps YAML parsing so callers do not import the YAML
// library directly. Parse errors carry the offending source line.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrSyntax         = errors.New("yamlutil: invalid document")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// ReadStrict reads at most MaxInputSize bytes from r and decodes them with
// UnmarshalStrict.
func ReadStrict(r io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(r, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading input: %w", err)
	}
	return UnmarshalStrict(data, v)
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("%w:\n%s", ErrSyntax, yaml.FormatError(err, false, true))
	}
	return nil
}

// Marshal encodes v as YAML with two-space indentation.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
