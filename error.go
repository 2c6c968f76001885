package tokenizer

import (
	"fmt"

	"github.com/juju/errors"
)

// Error reports a single lexical failure: where it happened, what kind of
// diagnostic produced it, and the underlying cause for Unwrap. ScanStrict
// returns *Error on the first malformed construct; ScanStrictAdapter builds
// one from the first error-or-worse diagnostic a collecting scan produced.
type Error struct {
	Filename string
	Position SourcePosition
	Kind     DiagnosticKind
	Message  string
	cause    error
}

// Error returns a nicely formatted error string.
func (e *Error) Error() string {
	s := "[Error"
	if e.Filename != "" {
		s += " in " + e.Filename
	}
	s += fmt.Sprintf(" | %s]", e.Position)
	s += " " + e.Message
	return s
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As
// chains built with github.com/juju/errors.
func (e *Error) Unwrap() error {
	return e.cause
}

// newScanError builds an *Error from a Diagnostic, the shape every scanning
// entry point in this package hands back to a strict-surface caller.
func newScanError(d Diagnostic) *Error {
	return &Error{
		Position: d.Range.Start,
		Kind:     d.Kind,
		Message:  d.Message,
		cause:    errors.New(d.Message),
	}
}

// WithFilename attaches a source filename to an already-constructed error,
// for callers that know the originating file but not at the point the
// diagnostic was raised.
func (e *Error) WithFilename(filename string) *Error {
	e.Filename = filename
	return e
}
