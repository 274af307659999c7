package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("short forms", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"-s", "docs", "-t", "out", "-w", "-c", "site", "-j", "3", "-v"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.source != "docs" || f.target != "out" || !f.watch || f.config != "site" || f.workers != 3 || !f.verbose {
			t.Errorf("parsed %+v", *f)
		}
	})

	t.Run("long forms with equals", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"--source=/some/Path with Spaces/", "--target=../another", "--watch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.source != "/some/Path with Spaces/" {
			t.Errorf("source = %q", f.source)
		}
		if f.target != "../another" {
			t.Errorf("target = %q", f.target)
		}
		if !f.watch {
			t.Error("watch should be set")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.source != "" || f.target != "" || f.watch || f.workers != 0 {
			t.Errorf("parsed %+v", *f)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags([]string{"-h"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		for _, args := range [][]string{
			{"--unknown"},
			{"stray"},
			{"-q", "--verbose"},
			{"-j", "-1"},
			{"-j", "many"},
		} {
			if _, err := parseFlags(args); err == nil {
				t.Errorf("parseFlags(%q) should fail", args)
			}
		}
	})
}
