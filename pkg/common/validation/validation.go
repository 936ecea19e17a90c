// Package validation provides common argument validation utilities for the
// seqflow library.
package validation

import (
	"reflect"

	sferrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// CheckNonNegative validates that an integer value is non-negative (>= 0).
// Returns a BadArgumentError if the value is negative.
func CheckNonNegative(op, arg string, value int) error {
	if value < 0 {
		return sferrors.NewBadArgument(op, arg, value, "must be non-negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// CheckPositive validates that an integer value is positive (> 0).
// Returns a BadArgumentError if the value is not positive.
func CheckPositive(op, arg string, value int) error {
	if value <= 0 {
		return sferrors.NewBadArgument(op, arg, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// CheckFunc validates that a function-typed value is not nil. It accepts the
// function as an interface so typed nil functions are caught as well.
// Returns a BadArgumentError if the value is nil or not a function.
func CheckFunc(op, arg string, fn any) error {
	if fn == nil {
		return sferrors.NewBadArgument(op, arg, nil, "must not be nil").
			WithHint("provide a valid " + arg + " function")
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return sferrors.NewBadArgument(op, arg, fn, "must be a function")
	}
	if v.IsNil() {
		return sferrors.NewBadArgument(op, arg, nil, "must not be nil").
			WithHint("provide a valid " + arg + " function")
	}
	return nil
}

// CheckNotNil validates that an interface value is not nil.
// Returns a BadArgumentError if the value is nil.
func CheckNotNil(op, arg string, value any) error {
	if value == nil || (reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil()) {
		return sferrors.NewBadArgument(op, arg, nil, "must not be nil").
			WithHint("provide a valid " + arg)
	}
	return nil
}
