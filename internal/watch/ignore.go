package watch

import (
	"path/filepath"
	"strings"
)

// ignored reports whether a change to path should not trigger a rebuild.
func (w *Watcher) ignored(path string) bool {
	for _, dir := range w.ignore {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return isScratchFile(filepath.Base(path))
}

// isScratchFile matches hidden files and editor swap, backup and lock files.
func isScratchFile(base string) bool {
	switch {
	case strings.HasPrefix(base, "."):
		return true
	case strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"),
		strings.HasSuffix(base, ".tmp"):
		return true
	case strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	case base == "Thumbs.db", base == "4913":
		// 4913 is vim's write-permission probe.
		return true
	}
	return false
}
