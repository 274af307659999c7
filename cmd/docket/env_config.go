package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-docket/internal/config"
	"github.com/alnah/go-docket/internal/highlight"
)

// envPrefix marks the variables docket reads.
const envPrefix = "DOCKET_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath     string // DOCKET_CONFIG: config file name or path
	Source         string // DOCKET_SOURCE: documentation directory
	Target         string // DOCKET_TARGET: output directory
	Title          string // DOCKET_TITLE: site title
	HighlightMode  string // DOCKET_HIGHLIGHT_MODE: chroma, client, none
	HighlightStyle string // DOCKET_HIGHLIGHT_STYLE: chroma style
	AssetPath      string // DOCKET_ASSET_PATH: custom asset directory
	LogLevel       string // DOCKET_LOG_LEVEL: none, normal, debug
	Workers        int    // DOCKET_WORKERS: pages rendered in parallel
	ForceJSHL      bool   // DOCKET_FORCE_JS_HL: set to force client highlighting
}

// knownEnvVars lists valid DOCKET_* environment variables.
var knownEnvVars = map[string]bool{
	"DOCKET_CONFIG":          true,
	"DOCKET_SOURCE":          true,
	"DOCKET_TARGET":          true,
	"DOCKET_TITLE":           true,
	"DOCKET_HIGHLIGHT_MODE":  true,
	"DOCKET_HIGHLIGHT_STYLE": true,
	"DOCKET_ASSET_PATH":      true,
	"DOCKET_LOG_LEVEL":       true,
	"DOCKET_WORKERS":         true,
	"DOCKET_FORCE_JS_HL":     true,
}

// loadEnvConfig reads the DOCKET_* variables. Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("DOCKET_CONFIG"),
		Source:         os.Getenv("DOCKET_SOURCE"),
		Target:         os.Getenv("DOCKET_TARGET"),
		Title:          os.Getenv("DOCKET_TITLE"),
		HighlightMode:  os.Getenv("DOCKET_HIGHLIGHT_MODE"),
		HighlightStyle: os.Getenv("DOCKET_HIGHLIGHT_STYLE"),
		AssetPath:      os.Getenv("DOCKET_ASSET_PATH"),
		LogLevel:       os.Getenv("DOCKET_LOG_LEVEL"),
	}

	if workers := os.Getenv("DOCKET_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	// Presence alone forces client-side highlighting, whatever the value.
	_, cfg.ForceJSHL = os.LookupEnv("DOCKET_FORCE_JS_HL")

	return cfg
}

// warnUnknownEnvVars prints a warning for unrecognized DOCKET_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment values on cfg. Flags are merged
// afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Source != "" {
		cfg.Input.DefaultDir = env.Source
	}
	if env.Target != "" {
		cfg.Output.DefaultDir = env.Target
	}
	if env.Title != "" {
		cfg.Site.Title = env.Title
	}
	if env.HighlightMode != "" {
		cfg.Highlight.Mode = env.HighlightMode
	}
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
	if env.ForceJSHL {
		cfg.Highlight.Mode = highlight.ModeClient
	}
}
