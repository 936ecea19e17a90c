package sequence

// Zip advances all input sequences in lockstep, one step per output element,
// and yields the per-step values as a slice in input order. It stops as soon
// as any input is exhausted, so the result is as long as the shortest input.
func Zip[T any](seqs ...*Sequence[T]) *Sequence[[]T] {
	derived := false
	for i, s := range seqs {
		mustSequenceAt("zip", "sequences", i, s)
		derived = derived || s.SinglePass()
	}

	return derive(derived, func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, s := range seqs {
			next, stop := s.pull()
			defer stop()
			nexts[i] = next
		}
		for {
			step := make([]T, len(seqs))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				step[i] = v
			}
			if !yield(step) {
				return
			}
		}
	})
}

// Zip advances the sequence and others in lockstep, yielding per-step slices.
func (s *Sequence[T]) Zip(others ...*Sequence[T]) *Sequence[[]T] {
	return Zip(append([]*Sequence[T]{s}, others...)...)
}

// ZipWith is Zip with a combiner: each per-step slice of values is reduced
// to one output element by combiner.
func ZipWith[T, R any](seqs []*Sequence[T], combiner func([]T) R) *Sequence[R] {
	for i, s := range seqs {
		mustSequenceAt("zipWith", "sequences", i, s)
	}
	mustFunc("zipWith", "combiner", combiner)

	return Map(Zip(seqs...), combiner)
}

// Zip2 advances two sequences of different element types in lockstep,
// yielding pairs until either input is exhausted.
func Zip2[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	mustSequence("zip2", "first", a)
	mustSequence("zip2", "second", b)

	return derive(a.SinglePass() || b.SinglePass(), func(yield func(Pair[A, B]) bool) {
		nextA, stopA := a.pull()
		defer stopA()
		nextB, stopB := b.pull()
		defer stopB()
		for {
			va, okA := nextA()
			if !okA {
				return
			}
			vb, okB := nextB()
			if !okB {
				return
			}
			if !yield(Pair[A, B]{va, vb}) {
				return
			}
		}
	})
}

// Equal advances both sequences in lockstep and reports whether they yield
// equal elements and exhaust simultaneously. It returns false at the first
// differing position, or when one sequence ends before the other, without
// pulling further.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element equivalence.
func EqualFunc[T any](a, b *Sequence[T], eq func(T, T) bool) bool {
	mustSequence("equal", "first", a)
	mustSequence("equal", "second", b)
	mustFunc("equal", "eq", eq)

	nextA, stopA := a.pull()
	defer stopA()
	nextB, stopB := b.pull()
	defer stopB()
	for {
		va, okA := nextA()
		vb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !eq(va, vb) {
			return false
		}
	}
}

// EqualFunc reports whether the sequence and other yield equivalent elements
// and exhaust simultaneously.
func (s *Sequence[T]) EqualFunc(other *Sequence[T], eq func(T, T) bool) bool {
	return EqualFunc(s, other, eq)
}
