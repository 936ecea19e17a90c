package sequence

import (
	"iter"
	"strconv"
	"sync"

	sferrors "github.com/vnykmshr/seqflow/pkg/common/errors"
	"github.com/vnykmshr/seqflow/pkg/common/validation"
)

// Sequence represents a lazy, chainable sequence of elements. A Sequence
// wraps exactly one of two producer kinds, decided at construction:
//
//   - multi-pass: a re-traversable producer (a slice, an iter.Seq that
//     restarts on every range). Every traversal starts from the beginning.
//   - single-pass: a stateful producer whose position is consumed by
//     reading. All traversals continue the same underlying state; two
//     traversals see two continuations, never two copies.
//
// Operators that need repeatability over a single-pass producer must buffer
// explicitly (see Cache, Split, Partition). Building a Sequence is cheap and
// performs no traversal; work happens only when elements are pulled.
type Sequence[T any] struct {
	multi  iter.Seq[T] // set for multi-pass sources
	single *cursor[T]  // set for single-pass sources

	// derived reports that this Sequence was built over at least one
	// single-pass source, so it inherits single-pass semantics even though
	// it is stored as a producer closure.
	derived bool
}

// cursor is the shared traversal state of a single-pass source. All
// traversals of the owning Sequence pull from the same cursor, so each
// traversal continues where the previous one stopped. The mutex keeps the
// pull/advance pair atomic when callers traverse from multiple goroutines.
type cursor[T any] struct {
	mu   sync.Mutex
	seq  iter.Seq[T] // lazily converted to next/stop on first pull
	next func() (T, bool)
	stop func()
	done bool
}

func (c *cursor[T]) pull() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		var zero T
		return zero, false
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.seq)
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		if c.stop != nil {
			c.stop()
		}
	}
	return v, ok
}

// FromSlice creates a multi-pass Sequence over the elements of slice.
// The slice is not copied; mutating it between traversals changes what
// later traversals see.
func FromSlice[T any](slice []T) *Sequence[T] {
	return &Sequence[T]{multi: func(yield func(T) bool) {
		for _, v := range slice {
			if !yield(v) {
				return
			}
		}
	}}
}

// FromSeq creates a multi-pass Sequence over seq. The iter.Seq contract
// applies: ranging over seq must restart it from the beginning, as the
// closures returned by slices.Values and maps.Keys do. For a seq that is
// exhausted by reading (a channel drain, a scanner), use Once instead.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	if seq == nil {
		panic(sferrors.NewBadArgument("fromSeq", "seq", nil, "must not be nil"))
	}
	return &Sequence[T]{multi: seq}
}

// Once creates a single-pass Sequence over seq. The sequence is pulled from
// exactly one traversal of seq, shared by every traversal of the result.
func Once[T any](seq iter.Seq[T]) *Sequence[T] {
	if seq == nil {
		panic(sferrors.NewBadArgument("once", "seq", nil, "must not be nil"))
	}
	return &Sequence[T]{single: &cursor[T]{seq: seq}}
}

// Generate creates a single-pass Sequence from a producer function. The
// producer is invoked once per element and signals exhaustion by returning
// false; an infinite producer simply never does.
func Generate[T any](producer func() (T, bool)) *Sequence[T] {
	mustFunc("generate", "producer", producer)
	return &Sequence[T]{single: &cursor[T]{next: producer, stop: func() {}}}
}

// FromChannel creates a single-pass Sequence that receives from ch until it
// is closed. Reading consumes the channel, so the sequence cannot restart.
func FromChannel[T any](ch <-chan T) *Sequence[T] {
	if ch == nil {
		panic(sferrors.NewBadArgument("fromChannel", "ch", nil, "must not be nil"))
	}
	return Once(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Empty creates an empty multi-pass Sequence.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{multi: func(yield func(T) bool) {}}
}

// Range creates a multi-pass Sequence of integers from start towards end
// (exclusive) advancing by step. A zero step yields an empty sequence; a
// negative step counts down.
func Range(start, end, step int) *Sequence[int] {
	return &Sequence[int]{multi: func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
			if !yield(i) {
				return
			}
		}
	}}
}

// Repeat creates a multi-pass Sequence yielding value count times.
func Repeat[T any](value T, count int) *Sequence[T] {
	mustNonNegative("repeat", "count", count)
	return &Sequence[T]{multi: func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}}
}

// sequencer is implemented by *Sequence of every element type. It is the
// iteration capability the operators gate on.
type sequencer interface {
	isSequence()
}

func (s *Sequence[T]) isSequence() {}

// Is reports whether v is a *Sequence of any element type. Operators use it
// as a precondition gate before any traversal starts.
func Is(v any) bool {
	_, ok := v.(sequencer)
	return ok
}

// SinglePass reports whether traversing this Sequence consumes shared
// producer state, i.e. whether two traversals observe two continuations of
// one underlying position rather than two independent passes.
func (s *Sequence[T]) SinglePass() bool {
	return s.single != nil || s.derived
}

// pull starts a traversal and returns its next/stop pair. For a multi-pass
// source every call starts a fresh pass; for a single-pass source every call
// returns the shared cursor and a no-op stop, so abandoning a traversal
// leaves the remaining elements for the next one.
func (s *Sequence[T]) pull() (next func() (T, bool), stop func()) {
	if s.single != nil {
		return s.single.pull, func() {}
	}
	return iter.Pull(s.multi)
}

// Seq exposes the iteration capability as an iter.Seq. Each range over the
// result starts one traversal: a fresh pass for multi-pass sequences, a
// continuation for single-pass ones.
func (s *Sequence[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		next, stop := s.pull()
		defer stop()
		for {
			v, ok := next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Get returns the element at the zero-based index, found by counting yields
// of a fresh traversal, or ok=false if the traversal ends first. O(n) per
// call; the wrapper never caches unless Cache is applied explicitly. On a
// partially consumed single-pass sequence the traversal continues from the
// current position, so index 0 is the next remaining element.
func Get[T any](s *Sequence[T], index int) (T, bool) {
	mustSequence("get", "sequence", s)
	mustNonNegative("get", "index", index)

	next, stop := s.pull()
	defer stop()
	for i := 0; ; i++ {
		v, ok := next()
		if !ok {
			var zero T
			return zero, false
		}
		if i == index {
			return v, true
		}
	}
}

// Get returns the element at the zero-based index, or ok=false past the end.
func (s *Sequence[T]) Get(index int) (T, bool) {
	return Get(s, index)
}

// derive builds a Sequence over a producer closure that drives one or more
// upstream sequences. derived marks whether any upstream is single-pass.
func derive[T any](derived bool, producer iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{multi: producer, derived: derived}
}

// Validation helpers. Bad arguments are programmer errors and are raised
// synchronously at operator-call time, before any traversal begins.

func mustSequence[T any](op, arg string, s *Sequence[T]) {
	if s == nil {
		panic(sferrors.NewBadArgument(op, arg, nil, "must be a Sequence").
			WithHint("wrap the value with FromSlice, FromSeq or Once"))
	}
}

func mustFunc(op, arg string, fn any) {
	if err := validation.CheckFunc(op, arg, fn); err != nil {
		panic(err)
	}
}

func mustNonNegative(op, arg string, n int) {
	if err := validation.CheckNonNegative(op, arg, n); err != nil {
		panic(err)
	}
}

func mustPositive(op, arg string, n int) {
	if err := validation.CheckPositive(op, arg, n); err != nil {
		panic(err)
	}
}

func mustSequenceAt[T any](op, arg string, i int, s *Sequence[T]) {
	if s == nil {
		panic(sferrors.NewBadArgument(op, arg+"["+strconv.Itoa(i)+"]", nil, "must be a Sequence").
			WithHint("wrap the value with FromSlice, FromSeq or Once"))
	}
}
