package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-docket/internal/config"
)

// Defaults for directories left unset everywhere.
const (
	defaultSource = "."
	defaultTarget = "build"
)

// resolveConfig builds the effective configuration. Precedence: flags,
// then environment, then config file, then defaults. Without --config or
// DOCKET_CONFIG a docket.yaml is used when one is found.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}

	var cfg *config.Config
	switch {
	case name != "":
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	default:
		var err error
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = defaultSource
	}
	if cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = defaultTarget
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly given flags to cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.source != "" {
		cfg.Input.DefaultDir = flags.source
	}
	if flags.target != "" {
		cfg.Output.DefaultDir = flags.target
	}
	if flags.title != "" {
		cfg.Site.Title = flags.title
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	switch {
	case flags.quiet:
		cfg.Logging.Level = config.LevelNone
	case flags.verbose:
		cfg.Logging.Level = config.LevelDebug
	}
}
