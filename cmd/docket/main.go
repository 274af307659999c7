// Command docket renders a directory of markdown files into a static HTML
// site.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "docket: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "docket %s\n", Version)
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr)
	cfg, err := resolveConfig(flags, loadEnvConfig())
	if err != nil {
		return report(env, err)
	}

	if flags.dumpConfig {
		data, err := cfg.YAML()
		if err != nil {
			return report(env, err)
		}
		_, _ = env.Stdout.Write(data)
		return ExitSuccess
	}

	log := cfg.Logging.Logger(env.Stdout, env.Stderr)
	defer func() { _ = log.Sync() }()

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
	// value, in which case the runtime default stays.
	undo, _ := maxprocs.Set(maxprocs.Logger(log.Sugar().Debugf))
	defer undo()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return report(env, run(ctx, cfg, flags.watch, log))
}

// report prints err with its hint and returns the matching exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(env.Stderr, "docket: interrupted")
		return ExitGeneral
	}
	fmt.Fprintf(env.Stderr, "docket: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
