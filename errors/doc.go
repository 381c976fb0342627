// Package errors provides structured error types for the os-handle library.
//
// Errors are categorized by Phase (where in the handle lifecycle the error
// occurred) and Kind (error category). Only the tracking layer produces
// errors; the ownership core models failure purely as the invalid-sentinel
// state.
//
// Use the convenience constructors:
//
//	err := errors.Leak("File", 3)
//	err := errors.Closed(errors.PhaseTrack)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
