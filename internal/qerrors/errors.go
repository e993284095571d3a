// Package qerrors provides the single structured error type used across
// unitconv: every failure the library can produce is a *Error discriminated
// by a Kind, never a bare fmt.Errorf or a sentinel per call site.
package qerrors

import "fmt"

// Kind discriminates the error taxonomy.
type Kind string

const (
	InvalidUnitString Kind = "InvalidUnitString"
	UnknownUnit       Kind = "UnknownUnit"
	InvalidExponent   Kind = "InvalidExponent"
	InvalidDimensions Kind = "InvalidDimensions"
	InvalidOffsetUse  Kind = "InvalidOffsetUse"
	InvalidConversion Kind = "InvalidConversion"
)

// Error is the single error type exported by unitconv's core packages.
type Error struct {
	Kind  Kind   // discriminant
	Op    string // operation that failed, e.g. "parse", "convert"
	Input string // offending string, when relevant
	Err   error  // wrapped cause, if any
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" (%q)", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, &qerrors.Error{Kind: qerrors.UnknownUnit}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error with no wrapped cause.
func New(kind Kind, op, input string) *Error {
	return &Error{Kind: kind, Op: op, Input: input}
}

// Wrap constructs an *Error wrapping an underlying cause.
func Wrap(kind Kind, op, input string, err error) *Error {
	return &Error{Kind: kind, Op: op, Input: input, Err: err}
}
