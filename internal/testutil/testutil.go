package testutil

import (
	"errors"
	"testing"

	sferrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertSliceEqual fails the test if the two slices differ in length or content
func AssertSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v (len %d), want %v (len %d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v (full: got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// AssertPanicsBadArgument runs fn and fails the test unless it panics with a
// value that unwraps to ErrBadArgument
func AssertPanicsBadArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a bad-argument panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, sferrors.ErrBadArgument) {
			t.Fatalf("expected ErrBadArgument, got %v", err)
		}
	}()
	fn()
}

// AssertPanicsTypeMismatch runs fn and fails the test unless it panics with a
// value that unwraps to ErrTypeMismatch
func AssertPanicsTypeMismatch(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a type-mismatch panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, sferrors.ErrTypeMismatch) {
			t.Fatalf("expected ErrTypeMismatch, got %v", err)
		}
	}()
	fn()
}
