package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the handle lifecycle the error occurred
type Phase string

const (
	PhaseAcquire Phase = "acquire" // adopting a raw value
	PhaseRelease Phase = "release" // closing a handle
	PhaseTrack   Phase = "track"   // lifecycle accounting
)

// Kind categorizes the error
type Kind string

const (
	KindLeak          Kind = "leak"
	KindInvalidHandle Kind = "invalid_handle"
	KindClosed        Kind = "closed"
)

// Error is the structured error type used by the tracking layer. The
// ownership core itself never returns errors; invalidity there is a state,
// not a failure.
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Category string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Category != "" {
		b.WriteString(" category ")
		b.WriteString(e.Category)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Leak creates a leak error for a category with live handles remaining
func Leak(category string, live int) *Error {
	return &Error{
		Phase:    PhaseTrack,
		Kind:     KindLeak,
		Category: category,
		Detail:   fmt.Sprintf("%d handle(s) still live", live),
	}
}

// InvalidHandle creates an invalid handle error
func InvalidHandle(phase Phase, category string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidHandle,
		Category: category,
		Detail:   "handle holds the invalid sentinel",
	}
}

// Closed creates an error for operations on a closed tracker
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "tracker closed",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
