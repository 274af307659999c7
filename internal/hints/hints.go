// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"runtime"
	"strings"
)

// GOOS is the target platform; tests replace it.
var GOOS = runtime.GOOS

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/docket.yaml"

	for _, p := range searchedPaths {
		if filepath.IsAbs(p) && strings.Contains(filepath.ToSlash(p), "/docket/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the target's parent directory exists and is writable")
}

// ForNotDirectory returns hints when the source is not a directory.
func ForNotDirectory() string {
	return format("--source must point at the documentation folder, not a file")
}

// ForDuplicateSlug returns hints for two sibling files sharing a URL slug.
func ForDuplicateSlug(first, second string) string {
	return formatHints([]string{
		"ordering prefixes and extensions do not count in slugs",
		"rename " + filepath.Base(first) + " or " + filepath.Base(second),
	})
}

// ForReservedName suggests renaming a source file that clashes with a
// generated one.
func ForReservedName(path string) string {
	return formatHints([]string{
		filepath.Base(path) + " is written by the build itself",
		"rename or move " + path,
	})
}

// ForHighlightStyle lists the available styles for an unknown style name.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	const shown = 12
	list := available
	more := ""
	if len(list) > shown {
		list = list[:shown]
		more = ", ..."
	}
	return format("available: " + strings.Join(list, ", ") + more)
}

// ForWatchLimit returns hints when the platform refuses more file watches.
func ForWatchLimit() string {
	var hints []string
	if GOOS == "linux" {
		hints = append(hints, "raise fs.inotify.max_user_watches with sysctl")
	}
	hints = append(hints, "or run without --watch")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
