// Package cserr defines the error types surfaced by the analysis engine.
//
// Per-file errors (reads, parses) are contained at the file boundary by the
// pipeline and never abort a multi-file run. Registry construction errors
// are programming errors and fatal at startup.
package cserr

import (
	"fmt"
	"strings"
)

// ReadError wraps an underlying file I/O failure.
type ReadError struct {
	Path       string
	Underlying error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Underlying)
}

func (e *ReadError) Unwrap() error {
	return e.Underlying
}

// NewReadError creates a ReadError for the given path.
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Underlying: err}
}

// UnsupportedFileTypeError reports a file whose extension matches no
// registered language. It carries the supported extension set so the
// message is self-diagnosing.
type UnsupportedFileTypeError struct {
	Path       string
	Extensions []string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type for %q, supported extensions: %s",
		e.Path, strings.Join(e.Extensions, ", "))
}

// ParseError reports a grammar-level parse failure for one file.
type ParseError struct {
	Path     string
	Language string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s", e.Path, e.Language)
}
