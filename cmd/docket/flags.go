package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	source     string
	target     string
	watch      bool
	config     string
	workers    int
	title      string
	quiet      bool
	verbose    bool
	version    bool
	dumpConfig bool
}

// parseFlags parses args, the command line without the program name.
// It returns flag.ErrHelp for -h and --help.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("docket", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.source, "source", "s", "", "documentation directory")
	fs.StringVarP(&f.target, "target", "t", "", "output directory")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when the source changes")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "j", 0, "pages rendered in parallel (0 = auto)")
	fs.StringVar(&f.title, "title", "", "site title")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVar(&f.dumpConfig, "dump-config", false, "print the effective configuration")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q (use --source)", fs.Arg(0))
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	if f.workers < 0 {
		return nil, fmt.Errorf("--workers must be 0 or more, got %d", f.workers)
	}
	return f, nil
}
