package sequence

// One-pass operators. Each builds a new Sequence whose producer drives the
// upstream traversal and yields transformed or filtered values; nothing runs
// until the result is traversed. Cross-type transforms exist only as free
// functions because Go methods cannot introduce new type parameters; the
// method forms cover the same-type cases and delegate to the free functions,
// so both call shapes are one contract.

// Pair holds two values produced together, e.g. by Zip2 or Enumerate.
type Pair[A, B any] struct {
	V1 A
	V2 B
}

// Map transforms each element of s using transform.
func Map[T, R any](s *Sequence[T], transform func(T) R) *Sequence[R] {
	mustSequence("map", "sequence", s)
	mustFunc("map", "transform", transform)

	return derive(s.SinglePass(), func(yield func(R) bool) {
		for v := range s.Seq() {
			if !yield(transform(v)) {
				return
			}
		}
	})
}

// Map transforms each element of the sequence using transform.
func (s *Sequence[T]) Map(transform func(T) T) *Sequence[T] {
	return Map(s, transform)
}

// FlatMap transforms each element into a Sequence and concatenates the
// results in order.
func FlatMap[T, R any](s *Sequence[T], transform func(T) *Sequence[R]) *Sequence[R] {
	mustSequence("flatMap", "sequence", s)
	mustFunc("flatMap", "transform", transform)

	return derive(s.SinglePass(), func(yield func(R) bool) {
		for v := range s.Seq() {
			inner := transform(v)
			if inner == nil {
				continue
			}
			for r := range inner.Seq() {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// FlatMap transforms each element into a Sequence and concatenates the results.
func (s *Sequence[T]) FlatMap(transform func(T) *Sequence[T]) *Sequence[T] {
	return FlatMap(s, transform)
}

// Filter yields only the elements of s for which predicate returns true.
func Filter[T any](s *Sequence[T], predicate func(T) bool) *Sequence[T] {
	mustSequence("filter", "sequence", s)
	mustFunc("filter", "predicate", predicate)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		for v := range s.Seq() {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Filter yields only the elements for which predicate returns true.
func (s *Sequence[T]) Filter(predicate func(T) bool) *Sequence[T] {
	return Filter(s, predicate)
}

// Take yields the first count elements of s, or all of them if the sequence
// is shorter.
func Take[T any](s *Sequence[T], count int) *Sequence[T] {
	mustSequence("take", "sequence", s)
	mustNonNegative("take", "count", count)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		if count == 0 {
			return
		}
		taken := 0
		for v := range s.Seq() {
			if !yield(v) {
				return
			}
			taken++
			if taken == count {
				return
			}
		}
	})
}

// Take yields the first count elements of the sequence.
func (s *Sequence[T]) Take(count int) *Sequence[T] {
	return Take(s, count)
}

// TakeWhile yields elements while predicate holds and stops at the first
// element that fails it.
func TakeWhile[T any](s *Sequence[T], predicate func(T) bool) *Sequence[T] {
	mustSequence("takeWhile", "sequence", s)
	mustFunc("takeWhile", "predicate", predicate)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		for v := range s.Seq() {
			if !predicate(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	})
}

// TakeWhile yields elements while predicate holds.
func (s *Sequence[T]) TakeWhile(predicate func(T) bool) *Sequence[T] {
	return TakeWhile(s, predicate)
}

// Skip drops the first count elements of s and yields the remainder.
func Skip[T any](s *Sequence[T], count int) *Sequence[T] {
	mustSequence("skip", "sequence", s)
	mustNonNegative("skip", "count", count)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		skipped := 0
		for v := range s.Seq() {
			if skipped < count {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Skip drops the first count elements of the sequence.
func (s *Sequence[T]) Skip(count int) *Sequence[T] {
	return Skip(s, count)
}

// SkipWhile drops elements while predicate holds and yields everything from
// the first element that fails it.
func SkipWhile[T any](s *Sequence[T], predicate func(T) bool) *Sequence[T] {
	mustSequence("skipWhile", "sequence", s)
	mustFunc("skipWhile", "predicate", predicate)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		skipping := true
		for v := range s.Seq() {
			if skipping && predicate(v) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	})
}

// SkipWhile drops elements while predicate holds.
func (s *Sequence[T]) SkipWhile(predicate func(T) bool) *Sequence[T] {
	return SkipWhile(s, predicate)
}

// Concat yields the elements of each sequence in order.
func Concat[T any](seqs ...*Sequence[T]) *Sequence[T] {
	derived := false
	for i, s := range seqs {
		mustSequenceAt("concat", "sequences", i, s)
		derived = derived || s.SinglePass()
	}

	return derive(derived, func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s.Seq() {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Concat yields the elements of the sequence followed by those of others.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	return Concat(append([]*Sequence[T]{s}, others...)...)
}

// Reverse yields the elements of s in reverse order. The whole upstream is
// buffered before the first element is produced, so Reverse does not
// terminate on an infinite sequence.
func Reverse[T any](s *Sequence[T]) *Sequence[T] {
	mustSequence("reverse", "sequence", s)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		items := collect(s)
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	})
}

// Reverse yields the elements in reverse order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	return Reverse(s)
}

// Distinct yields only the first occurrence of each element. Memory grows
// with the number of unique elements seen.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	mustSequence("distinct", "sequence", s)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range s.Seq() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// Chunk groups elements into slices of the given size; the final chunk may
// be smaller. Each chunk has its own backing slice, so callers may retain
// chunks safely.
func Chunk[T any](s *Sequence[T], size int) *Sequence[[]T] {
	mustSequence("chunk", "sequence", s)
	mustPositive("chunk", "size", size)

	return derive(s.SinglePass(), func(yield func([]T) bool) {
		batch := make([]T, 0, size)
		for v := range s.Seq() {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	})
}

// Chunk groups elements into slices of the given size.
func (s *Sequence[T]) Chunk(size int) *Sequence[[]T] {
	return Chunk(s, size)
}

// Peek performs action on each element as it passes through, without
// modifying the sequence. Useful for debugging and side effects.
func Peek[T any](s *Sequence[T], action func(T)) *Sequence[T] {
	mustSequence("peek", "sequence", s)
	mustFunc("peek", "action", action)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		for v := range s.Seq() {
			action(v)
			if !yield(v) {
				return
			}
		}
	})
}

// Peek performs action on each element as it passes through.
func (s *Sequence[T]) Peek(action func(T)) *Sequence[T] {
	return Peek(s, action)
}

// Enumerate pairs each element with its zero-based position.
func Enumerate[T any](s *Sequence[T]) *Sequence[Pair[int, T]] {
	mustSequence("enumerate", "sequence", s)

	return derive(s.SinglePass(), func(yield func(Pair[int, T]) bool) {
		index := 0
		for v := range s.Seq() {
			if !yield(Pair[int, T]{index, v}) {
				return
			}
			index++
		}
	})
}

// Enumerate pairs each element with its zero-based position.
func (s *Sequence[T]) Enumerate() *Sequence[Pair[int, T]] {
	return Enumerate(s)
}
