package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-docket/internal/config"
	"github.com/alnah/go-docket/internal/highlight"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("DOCKET_CONFIG", "/etc/docket.yaml")
		t.Setenv("DOCKET_SOURCE", "docs")
		t.Setenv("DOCKET_TARGET", "public")
		t.Setenv("DOCKET_TITLE", "Manual")
		t.Setenv("DOCKET_HIGHLIGHT_MODE", "none")
		t.Setenv("DOCKET_HIGHLIGHT_STYLE", "monokai")
		t.Setenv("DOCKET_ASSET_PATH", "theme")
		t.Setenv("DOCKET_LOG_LEVEL", "debug")
		t.Setenv("DOCKET_WORKERS", "6")

		got := loadEnvConfig()
		want := envConfig{
			ConfigPath:     "/etc/docket.yaml",
			Source:         "docs",
			Target:         "public",
			Title:          "Manual",
			HighlightMode:  "none",
			HighlightStyle: "monokai",
			AssetPath:      "theme",
			LogLevel:       "debug",
			Workers:        6,
		}
		if *got != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		for _, v := range []string{"abc", "-2", "0"} {
			t.Setenv("DOCKET_WORKERS", v)
			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("DOCKET_WORKERS=%q: Workers = %d, want 0", v, got)
			}
		}
	})

	t.Run("force js highlighting on presence", func(t *testing.T) {
		t.Setenv("DOCKET_FORCE_JS_HL", "")
		if !loadEnvConfig().ForceJSHL {
			t.Error("an empty DOCKET_FORCE_JS_HL should still force client highlighting")
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("DOCKET_TARGT", "typo")
	t.Setenv("DOCKET_TARGET", "fine")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "DOCKET_TARGT") {
		t.Errorf("expected warning for DOCKET_TARGT, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "DOCKET_TARGET ") {
		t.Errorf("known variable should not warn: %q", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config file", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-file"
		applyEnvConfig(&envConfig{Target: "from-env", Workers: 2}, cfg)

		if cfg.Output.DefaultDir != "from-env" {
			t.Errorf("target = %q", cfg.Output.DefaultDir)
		}
		if cfg.Build.Workers != 2 {
			t.Errorf("workers = %d", cfg.Build.Workers)
		}
	})

	t.Run("unset env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Site.Title = "From File"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Site.Title != "From File" {
			t.Errorf("title = %q", cfg.Site.Title)
		}
		if cfg.Highlight.Mode != "auto" {
			t.Errorf("mode = %q", cfg.Highlight.Mode)
		}
	})

	t.Run("force js wins over mode", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{HighlightMode: "chroma", ForceJSHL: true}, cfg)

		if cfg.Highlight.Mode != highlight.ModeClient {
			t.Errorf("mode = %q, want %q", cfg.Highlight.Mode, highlight.ModeClient)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveConfig - Flags > env > file > defaults
// ---------------------------------------------------------------------------

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	dir := writeSource(t, map[string]string{
		"docket.yaml": "site:\n  title: File Title\noutput:\n  defaultDir: file-out\nbuild:\n  workers: 2\n",
	})
	cfgPath := filepath.Join(dir, "docket.yaml")

	t.Run("layers", func(t *testing.T) {
		t.Parallel()

		flags := &cliFlags{config: cfgPath, workers: 5, verbose: true}
		env := &envConfig{Target: "env-out"}

		cfg, err := resolveConfig(flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Site.Title != "File Title" {
			t.Errorf("title = %q", cfg.Site.Title)
		}
		if cfg.Output.DefaultDir != "env-out" {
			t.Errorf("target = %q", cfg.Output.DefaultDir)
		}
		if cfg.Build.Workers != 5 {
			t.Errorf("workers = %d", cfg.Build.Workers)
		}
		if cfg.Logging.Level != config.LevelDebug {
			t.Errorf("level = %q", cfg.Logging.Level)
		}
		if cfg.Input.DefaultDir != defaultSource {
			t.Errorf("source = %q", cfg.Input.DefaultDir)
		}
	})

	t.Run("env config path", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig(&cliFlags{}, &envConfig{ConfigPath: cfgPath})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.DefaultDir != "file-out" {
			t.Errorf("target = %q", cfg.Output.DefaultDir)
		}
	})

	t.Run("invalid merged value", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig(&cliFlags{workers: 1000}, &envConfig{})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if code := exitCodeFor(err); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}
