package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestPackageLoaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		load        func(string) (string, error)
		asset       string
		wantContain string
	}{
		{"default style", LoadStyle, DefaultStyleName, "--accent"},
		{"page template", LoadTemplate, DefaultTemplateName, "{{.Content}}"},
		{"search script", LoadScript, SearchScriptName, "search_index.json"},
		{"dark script", LoadScript, DarkScriptName, "localStorage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if err != nil {
				t.Fatalf("load(%q) error = %v", tt.asset, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("load(%q) missing %q", tt.asset, tt.wantContain)
			}
		})
	}
}

func TestPackageLoaders_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if _, err := LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := LoadScript("missing"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("LoadScript() error = %v, want ErrScriptNotFound", err)
	}
}

func TestKind_Path(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Style, "styles/default.css"},
		{Template, "templates/default.html"},
		{Script, "scripts/default.js"},
	}
	for _, tt := range tests {
		if got := tt.kind.path("default"); got != tt.want {
			t.Errorf("path() = %q, want %q", got, tt.want)
		}
	}
}
