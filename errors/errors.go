// Package errors provides error handling for dartpoet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints attached to user-facing failures
//
// dartpoet distinguishes two classes of failure. Build errors are raised by
// builders when a spec node or code fragment is structurally invalid (empty
// names, illegal modifier combinations, malformed placeholders). Render errors
// are raised only when the output sink fails; formatting itself never fails on
// a built tree.
//
// Usage:
//
//	// Flag a builder failure, keeping the message verbatim
//	return errors.NewBuildErrorf("The name of a function can't be empty")
//
//	// Check the class of a failure
//	if errors.IsBuildError(err) {
//	    // programmer error, do not retry
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions and panics
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Error classes. Use these with errors.Is() to classify a failure; the
// constructors below mark an error with its class without changing its
// message.
var (
	// ErrBuild marks structurally invalid input rejected by a builder
	ErrBuild = New("build error")

	// ErrFormat marks a malformed code fragment template. Every format
	// error is also a build error.
	ErrFormat = New("format error")

	// ErrRender marks a failure of the output sink during rendering
	ErrRender = New("render error")
)

// NewBuildError creates a build error with the given message.
func NewBuildError(msg string) error {
	return Mark(New(msg), ErrBuild)
}

// NewBuildErrorf creates a build error with a formatted message.
func NewBuildErrorf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrBuild)
}

// NewFormatErrorf creates a format error with a formatted message.
// The result satisfies both IsFormatError and IsBuildError.
func NewFormatErrorf(format string, args ...interface{}) error {
	return Mark(Mark(Newf(format, args...), ErrFormat), ErrBuild)
}

// MarkBuild marks err as a build error. Returns nil for nil.
func MarkBuild(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrBuild)
}

// MarkFormat marks err as a format error (and therefore a build error).
func MarkFormat(err error) error {
	if err == nil {
		return nil
	}
	return Mark(Mark(err, ErrFormat), ErrBuild)
}

// MarkRender marks an I/O failure as a render error. Returns nil for nil.
func MarkRender(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrRender)
}

// IsBuildError checks if an error is marked as a build error
func IsBuildError(err error) bool {
	return err != nil && Is(err, ErrBuild)
}

// IsFormatError checks if an error is marked as a format error
func IsFormatError(err error) bool {
	return err != nil && Is(err, ErrFormat)
}

// IsRenderError checks if an error is marked as a render error
func IsRenderError(err error) bool {
	return err != nil && Is(err, ErrRender)
}
