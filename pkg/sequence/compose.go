package sequence

import (
	"strconv"

	sferrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// Composer builds a new Sequence from an existing one. It is the extension
// point for user-defined operators: every built-in transformation has this
// shape internally.
type Composer[T any] func(*Sequence[T]) *Sequence[T]

// Compose applies the composers to s left to right, threading the output of
// one into the input of the next. Every composer is validated up front; a
// composer that returns nil raises a type-mismatch error when its result is
// inspected. Compose itself performs no traversal.
func Compose[T any](s *Sequence[T], composers ...Composer[T]) *Sequence[T] {
	mustSequence("compose", "sequence", s)
	for i, fn := range composers {
		if fn == nil {
			arg := "composers[" + strconv.Itoa(i) + "]"
			panic(sferrors.NewBadArgument("compose", arg, nil, "must not be nil").
				WithHint("provide a function from Sequence to Sequence"))
		}
	}

	out := s
	for i, fn := range composers {
		out = fn(out)
		if out == nil {
			panic(sferrors.NewTypeMismatch("compose", i, "composer must return a non-nil Sequence"))
		}
	}
	return out
}

// Compose applies the composers to the receiver left to right.
func (s *Sequence[T]) Compose(composers ...Composer[T]) *Sequence[T] {
	return Compose(s, composers...)
}
