// Package ioerr defines the error types shared by the sketch converter and
// the PDF trimmer.
//
// Every failure a tool reports falls into one of three kinds:
//   - DecodeError: an input file could not be opened or is not a valid image/PDF
//   - EncodeError: an output file could not be produced
//   - ValidationError: a numeric argument is out of range
//
// Callers distinguish them with errors.As.
package ioerr

import "fmt"

// DecodeError reports an input file that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an output file that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ValidationError reports an argument outside its accepted range.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}
