package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	docket "github.com/alnah/go-docket"
	"github.com/alnah/go-docket/internal/config"
	"github.com/alnah/go-docket/internal/doctree"
	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/hints"
	"github.com/alnah/go-docket/internal/render"
	"github.com/alnah/go-docket/internal/watch"
)

// Exit codes for the docket CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source unreadable or output unwritable
	ExitContent = 4 // Source tree cannot be rendered, such as duplicate slugs
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, doctree.ErrDuplicateSlug) ||
		errors.Is(err, doctree.ErrReservedName) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, highlight.ErrUnknownMode) ||
		errors.Is(err, highlight.ErrUnknownStyle) ||
		errors.Is(err, docket.ErrInvalidAssetPath) ||
		errors.Is(err, docket.ErrTargetOverlaps) ||
		errors.Is(err, doctree.ErrNotDirectory) ||
		errors.Is(err, flag.ErrHelp) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, doctree.ErrIO) ||
		errors.Is(err, docket.ErrReadSource) ||
		errors.Is(err, docket.ErrWriteOutput) ||
		errors.Is(err, render.ErrWrite) ||
		errors.Is(err, watch.ErrWatch) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var (
		dup      *doctree.DuplicateSlugError
		reserved *doctree.ReservedNameError
	)
	switch {
	case errors.As(err, &dup):
		return hints.ForDuplicateSlug(dup.First, dup.Second)
	case errors.As(err, &reserved):
		return hints.ForReservedName(reserved.Path)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, highlight.ErrUnknownStyle):
		return hints.ForHighlightStyle(highlight.StyleNames())
	case errors.Is(err, doctree.ErrNotDirectory):
		return hints.ForNotDirectory()
	case errors.Is(err, docket.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, watch.ErrWatch):
		return hints.ForWatchLimit()
	}
	return ""
}
