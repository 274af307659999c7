package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "default", nil},
		{"name with hyphen", "my-style", nil},
		{"name with underscore", "my_style", nil},
		{"mixed case and digits", "Style123", nil},
		{"empty", "", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
		{"forward slash", "styles/default", ErrInvalidAssetName},
		{"backslash", "styles\\default", ErrInvalidAssetName},
		{"traversal", "..", ErrInvalidAssetName},
		{"nul byte", "a\x00b", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) error = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
