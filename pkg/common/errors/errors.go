// Package errors defines the error types shared across the seqflow library.
package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the seqflow library

var (
	// ErrBadArgument indicates that an operator was invoked with an invalid argument
	ErrBadArgument = errors.New("bad argument")

	// ErrTypeMismatch indicates that a user-supplied function produced a value of
	// the wrong kind, e.g. a composer returning a nil Sequence
	ErrTypeMismatch = errors.New("type mismatch")
)

// BadArgumentError describes an argument rejected at operator-call time.
// It identifies the operator and the argument, and unwraps to ErrBadArgument.
type BadArgumentError struct {
	Op     string // operator name, e.g. "split"
	Arg    string // argument name or position, e.g. "count" or "sequences[1]"
	Value  any    // the offending value
	Reason string // why the value was rejected
	Hint   string // optional suggestion for fixing the call
}

// Error implements the error interface.
func (e *BadArgumentError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Op, e.Arg, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes the error match ErrBadArgument with errors.Is.
func (e *BadArgumentError) Unwrap() error {
	return ErrBadArgument
}

// NewBadArgument creates a new BadArgumentError.
func NewBadArgument(op, arg string, value any, reason string) *BadArgumentError {
	return &BadArgumentError{
		Op:     op,
		Arg:    arg,
		Value:  value,
		Reason: reason,
	}
}

// WithHint adds a hint to the error and returns it for chaining.
func (e *BadArgumentError) WithHint(hint string) *BadArgumentError {
	e.Hint = hint
	return e
}

// TypeMismatchError describes a user-supplied function whose result was
// inspected and found to be of the wrong kind. It unwraps to ErrTypeMismatch.
type TypeMismatchError struct {
	Op     string // operator name, e.g. "compose"
	Index  int    // zero-based position of the offending function
	Reason string // what was expected of the result
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: function %d returned an invalid result (%s)", e.Op, e.Index, e.Reason)
}

// Unwrap makes the error match ErrTypeMismatch with errors.Is.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// NewTypeMismatch creates a new TypeMismatchError.
func NewTypeMismatch(op string, index int, reason string) *TypeMismatchError {
	return &TypeMismatchError{
		Op:     op,
		Index:  index,
		Reason: reason,
	}
}

// IsBadArgument returns true if the error stems from invalid operator input
func IsBadArgument(err error) bool {
	return errors.Is(err, ErrBadArgument)
}

// IsTypeMismatch returns true if the error stems from a wrongly-typed result
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
