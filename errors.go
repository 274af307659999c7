package docket

import (
	"errors"
	"fmt"
)

// Sentinel errors for build operations.
var (
	ErrReadSource       = errors.New("reading source")
	ErrWriteOutput      = errors.New("writing output")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTargetOverlaps   = errors.New("target directory contains the source")
)

// PageError reports the source file whose rendering failed. Synthesized
// bale indexes report the bale directory.
type PageError struct {
	Path string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
