package docket

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/alnah/go-docket/internal/fileutil"
)

// stage creates the hidden directory a build writes into. It sits next to
// target so the final rename stays on one filesystem.
func stage(target string) (string, error) {
	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, fileutil.DirPerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	dir, err := os.MkdirTemp(parent, "."+filepath.Base(target)+"-staging-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	// MkdirTemp creates 0700; the published site must be readable.
	if err := os.Chmod(dir, fileutil.DirPerm); err != nil {
		return "", multierr.Append(fmt.Errorf("%w: %v", ErrWriteOutput, err), os.RemoveAll(dir))
	}
	return dir, nil
}

// discard removes a failed build's staging directory and returns cause,
// joined with any cleanup failure.
func discard(staging string, cause error) error {
	return multierr.Append(cause, os.RemoveAll(staging))
}

// publish replaces target with staging. The old target is moved aside first
// and only removed once staging is in place; if the swap fails the old
// target is restored.
func publish(staging, target string) error {
	backup := ""
	if _, err := os.Lstat(target); err == nil {
		backup = staging + "-previous"
		if err := os.Rename(target, backup); err != nil {
			return discard(staging, fmt.Errorf("%w: moving previous output aside: %v", ErrWriteOutput, err))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return discard(staging, fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if err := os.Rename(staging, target); err != nil {
		err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		if backup != "" {
			err = multierr.Append(err, os.Rename(backup, target))
		}
		return discard(staging, err)
	}

	if backup != "" {
		if err := os.RemoveAll(backup); err != nil {
			return fmt.Errorf("%w: removing previous output: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
