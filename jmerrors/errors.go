// Package jmerrors provides the error kinds shared by the jmbuilder packages.
//
// Every failure returned by a public operation is an *Error carrying one of
// the sentinel kinds below, so callers can branch with errors.Is:
//
//	tbl, err := properties.Load("MANIFEST.MF")
//	if errors.Is(err, jmerrors.ErrFileNotFound) {
//	    // ...
//	}
package jmerrors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel kinds for use with errors.Is.
var (
	// ErrInvalidArgument reports a nil, empty or otherwise unusable argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileNotFound reports a path that does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrIsDirectory reports a directory where a regular file was expected.
	ErrIsDirectory = errors.New("is a directory")

	// ErrParse reports malformed input or an unsupported file type.
	ErrParse = errors.New("parse error")

	// ErrTypeMismatch reports a value of an unexpected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Error is the concrete error returned by jmbuilder operations.
type Error struct {
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Op names the failing operation, e.g. "properties.Load".
	Op string
	// Path is the file involved, if any.
	Path string
	// Message is a human-readable description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e. A FileNotFound error also
// matches fs.ErrNotExist.
func (e *Error) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	return e.Kind == ErrFileNotFound && target == fs.ErrNotExist
}

func InvalidArgument(op, format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

func NotFound(op, path string) error {
	return &Error{Kind: ErrFileNotFound, Op: op, Path: path, Message: "no such file or directory"}
}

func IsDirectory(op, path string) error {
	return &Error{Kind: ErrIsDirectory, Op: op, Path: path}
}

func Parse(op, path, message string, cause error) error {
	return &Error{Kind: ErrParse, Op: op, Path: path, Message: message, Err: cause}
}

func TypeMismatch(op, format string, args ...any) error {
	return &Error{Kind: ErrTypeMismatch, Op: op, Message: fmt.Sprintf(format, args...)}
}

// CheckFile validates that path is non-empty and names an existing
// regular file.
func CheckFile(op, path string) error {
	if path == "" {
		return InvalidArgument(op, "path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotFound(op, path)
		}
		return &Error{Kind: ErrInvalidArgument, Op: op, Path: path, Err: err}
	}
	if info.IsDir() {
		return IsDirectory(op, path)
	}
	return nil
}
