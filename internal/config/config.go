// Package config loads and validates the docket.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docket/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "docket"

// appDir is the directory under the user config dir searched for configs.
const appDir = "docket"

// Field limits.
const (
	MaxTitleLength = 200
	MaxPathLength  = 4096
	MaxStyleLength = 64
	MaxWorkers     = 64
	MaxTOCDepth    = 6
)

// Logging levels.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Config holds all configuration for a build.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
	TOC       TOCConfig       `yaml:"toc"`
	Build     BuildConfig     `yaml:"build"`
	Assets    AssetsConfig    `yaml:"assets"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SiteConfig defines site-wide settings.
type SiteConfig struct {
	Title string `yaml:"title"` // Empty = derived from the source directory
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = "build" under the current directory
}

// HighlightConfig selects the code highlighter.
type HighlightConfig struct {
	Mode  string `yaml:"mode"`  // "auto", "chroma", "client", "none"
	Style string `yaml:"style"` // chroma style name
}

// TOCConfig defines the page outline options.
type TOCConfig struct {
	MaxDepth int `yaml:"maxDepth"` // 1-6, deepest heading in the outline
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets
}

// LoggingConfig defines console logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // "none", "normal", "debug"
}

// Validate checks field lengths and enumerated values. Called by
// LoadConfig, but available for callers that construct a Config.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Highlight.Mode) {
	case "", "auto", "chroma", "client", "js", "none":
	default:
		return fmt.Errorf("%w: highlight.mode %q (must be auto, chroma, client, or none)", ErrInvalidValue, c.Highlight.Mode)
	}

	if c.TOC.MaxDepth < 0 || c.TOC.MaxDepth > MaxTOCDepth {
		return fmt.Errorf("%w: toc.maxDepth must be between 1 and %d, got %d", ErrInvalidValue, MaxTOCDepth, c.TOC.MaxDepth)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	switch c.Logging.Level {
	case "", LevelNone, LevelNormal, LevelDebug:
	default:
		return fmt.Errorf("%w: logging.level %q (must be none, normal, or debug)", ErrInvalidValue, c.Logging.Level)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Highlight: HighlightConfig{Mode: "auto", Style: "github"},
		TOC:       TOCConfig{MaxDepth: 3},
		Logging:   LoggingConfig{Level: LevelNormal},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it is searched for in the current directory, then the user
// config directory. Missing fields keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// YAML renders the configuration as a config file.
func (c *Config) YAML() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
