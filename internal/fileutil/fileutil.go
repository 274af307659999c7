// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrCopy       = errors.New("copying file")
	ErrNotRegular = errors.New("not a regular file or directory")
)

// Default permissions for created files and directories.
const (
	FilePerm os.FileMode = 0o644
	DirPerm  os.FileMode = 0o755
)

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePerm)
}

// CopyFile copies the regular file src to dst, creating parent directories.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- src comes from the source tree listing
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304 -- dst is under the output root
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrCopy, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCopy, src, err)
	}
	return nil
}

// CopyInto copies src, a file or a directory, into dstDir under its own base
// name. Directories are copied recursively; hidden entries are skipped.
func CopyInto(src, dstDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	dst := filepath.Join(dstDir, filepath.Base(src))
	if info.Mode().IsRegular() {
		return CopyFile(src, dst)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotRegular, src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCopy, err)
		}
		if path != src && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCopy, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := os.MkdirAll(target, DirPerm); err != nil {
				return fmt.Errorf("%w: %v", ErrCopy, err)
			}
			return nil
		}
		return CopyFile(path, target)
	})
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsWithin reports whether path is dir or lies below it. Both are made
// absolute first.
func IsWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
