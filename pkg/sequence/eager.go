package sequence

import (
	"cmp"
	"slices"
)

// The eager boundary: operators that must materialize or fold the whole
// upstream before producing a result. None of these terminate on an infinite
// sequence, except Sorted and the short-circuiting matchers (Any, Contains,
// First), which stop as soon as the answer is known.

// Number is the constraint for the arithmetic folds Sum and Average.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// collect materializes one traversal into a slice.
func collect[T any](s *Sequence[T]) []T {
	var out []T
	for v := range s.Seq() {
		out = append(out, v)
	}
	return out
}

// ToSlice returns all elements of one traversal of s as a slice.
func ToSlice[T any](s *Sequence[T]) []T {
	mustSequence("toSlice", "sequence", s)
	return collect(s)
}

// ToSlice returns all elements of one traversal as a slice.
func (s *Sequence[T]) ToSlice() []T {
	return ToSlice(s)
}

// SortFunc yields the elements of s in ascending order under compare, which
// returns negative if a < b, zero if equal and positive if a > b. The sort
// is stable: equal elements keep their original relative order. The whole
// upstream is materialized before the first element is produced.
func SortFunc[T any](s *Sequence[T], compare func(a, b T) int) *Sequence[T] {
	mustSequence("sort", "sequence", s)
	mustFunc("sort", "compare", compare)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		items := collect(s)
		slices.SortStableFunc(items, compare)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	})
}

// SortFunc yields the elements in ascending order under compare.
func (s *Sequence[T]) SortFunc(compare func(a, b T) int) *Sequence[T] {
	return SortFunc(s, compare)
}

// Sort yields the elements of s in their natural ascending order.
func Sort[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	mustSequence("sort", "sequence", s)
	return SortFunc(s, cmp.Compare[T])
}

// SortedFunc reports whether s is already non-decreasing under compare. It
// short-circuits at the first inversion, so it can answer false on an
// infinite sequence; answering true requires full traversal.
func SortedFunc[T any](s *Sequence[T], compare func(a, b T) int) bool {
	mustSequence("sorted", "sequence", s)
	mustFunc("sorted", "compare", compare)

	first := true
	var prev T
	for v := range s.Seq() {
		if !first && compare(prev, v) > 0 {
			return false
		}
		prev = v
		first = false
	}
	return true
}

// Sorted reports whether s is already non-decreasing in natural order.
func Sorted[T cmp.Ordered](s *Sequence[T]) bool {
	return SortedFunc(s, cmp.Compare[T])
}

// Fold aggregates the elements of s left to right, starting from seed.
func Fold[T, R any](s *Sequence[T], seed R, reducer func(R, T) R) R {
	mustSequence("fold", "sequence", s)
	mustFunc("fold", "reducer", reducer)

	acc := seed
	for v := range s.Seq() {
		acc = reducer(acc, v)
	}
	return acc
}

// Fold aggregates the elements left to right, starting from seed.
func (s *Sequence[T]) Fold(seed T, reducer func(T, T) T) T {
	return Fold(s, seed, reducer)
}

// Reduce aggregates the elements of s left to right using the first element
// as the seed. On an empty sequence it returns the zero value and ok=false;
// on a single-element sequence it returns that element without calling
// reducer.
func Reduce[T any](s *Sequence[T], reducer func(T, T) T) (T, bool) {
	mustSequence("reduce", "sequence", s)
	mustFunc("reduce", "reducer", reducer)

	var acc T
	found := false
	for v := range s.Seq() {
		if !found {
			acc = v
			found = true
			continue
		}
		acc = reducer(acc, v)
	}
	return acc, found
}

// Reduce aggregates the elements left to right, seeding with the first one.
func (s *Sequence[T]) Reduce(reducer func(T, T) T) (T, bool) {
	return Reduce(s, reducer)
}

// Scan is Fold yielding every intermediate accumulator: for inputs
// v1, v2, ... it yields reducer(seed, v1), reducer(reducer(seed, v1), v2)
// and so on. The seed itself is not yielded, so the output has exactly as
// many elements as the input.
func Scan[T, R any](s *Sequence[T], seed R, reducer func(R, T) R) *Sequence[R] {
	mustSequence("scan", "sequence", s)
	mustFunc("scan", "reducer", reducer)

	return derive(s.SinglePass(), func(yield func(R) bool) {
		acc := seed
		for v := range s.Seq() {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	})
}

// Scan yields every intermediate accumulator of a left fold from seed.
func (s *Sequence[T]) Scan(seed T, reducer func(T, T) T) *Sequence[T] {
	return Scan(s, seed, reducer)
}

// Sum adds up all elements of s. An empty sequence sums to zero.
func Sum[T Number](s *Sequence[T]) T {
	mustSequence("sum", "sequence", s)

	var total T
	for v := range s.Seq() {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of the elements of s, or ok=false on
// an empty sequence.
func Average[T Number](s *Sequence[T]) (float64, bool) {
	mustSequence("average", "sequence", s)

	var total float64
	count := 0
	for v := range s.Seq() {
		total += float64(v)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// Min returns the smallest element of s in natural order, or ok=false on an
// empty sequence.
func Min[T cmp.Ordered](s *Sequence[T]) (T, bool) {
	return MinFunc(s, cmp.Compare[T])
}

// MinFunc returns the smallest element of s under compare. The first of
// several equal minima wins.
func MinFunc[T any](s *Sequence[T], compare func(a, b T) int) (T, bool) {
	mustSequence("min", "sequence", s)
	mustFunc("min", "compare", compare)

	var best T
	found := false
	for v := range s.Seq() {
		if !found || compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// Max returns the largest element of s in natural order, or ok=false on an
// empty sequence.
func Max[T cmp.Ordered](s *Sequence[T]) (T, bool) {
	return MaxFunc(s, cmp.Compare[T])
}

// MaxFunc returns the largest element of s under compare. The first of
// several equal maxima wins.
func MaxFunc[T any](s *Sequence[T], compare func(a, b T) int) (T, bool) {
	mustSequence("max", "sequence", s)
	mustFunc("max", "compare", compare)

	var best T
	found := false
	for v := range s.Seq() {
		if !found || compare(v, best) > 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// First returns the first element of s, or ok=false if it is empty.
func First[T any](s *Sequence[T]) (T, bool) {
	mustSequence("first", "sequence", s)

	for v := range s.Seq() {
		return v, true
	}
	var zero T
	return zero, false
}

// First returns the first element, or ok=false if the sequence is empty.
func (s *Sequence[T]) First() (T, bool) {
	return First(s)
}

// Last returns the final element of s, or ok=false if it is empty.
func Last[T any](s *Sequence[T]) (T, bool) {
	mustSequence("last", "sequence", s)

	var last T
	found := false
	for v := range s.Seq() {
		last = v
		found = true
	}
	return last, found
}

// Last returns the final element, or ok=false if the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	return Last(s)
}

// Count returns the number of elements in one traversal of s.
func Count[T any](s *Sequence[T]) int {
	mustSequence("count", "sequence", s)

	count := 0
	for range s.Seq() {
		count++
	}
	return count
}

// Count returns the number of elements in one traversal.
func (s *Sequence[T]) Count() int {
	return Count(s)
}

// All reports whether every element of s satisfies predicate. It stops at
// the first failure; an empty sequence satisfies All.
func All[T any](s *Sequence[T], predicate func(T) bool) bool {
	mustSequence("all", "sequence", s)
	mustFunc("all", "predicate", predicate)

	for v := range s.Seq() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// All reports whether every element satisfies predicate.
func (s *Sequence[T]) All(predicate func(T) bool) bool {
	return All(s, predicate)
}

// Any reports whether at least one element of s satisfies predicate. It
// stops at the first match.
func Any[T any](s *Sequence[T], predicate func(T) bool) bool {
	mustSequence("any", "sequence", s)
	mustFunc("any", "predicate", predicate)

	for v := range s.Seq() {
		if predicate(v) {
			return true
		}
	}
	return false
}

// Any reports whether at least one element satisfies predicate.
func (s *Sequence[T]) Any(predicate func(T) bool) bool {
	return Any(s, predicate)
}

// Contains reports whether needle occurs in s, stopping at the first match.
func Contains[T comparable](s *Sequence[T], needle T) bool {
	mustSequence("contains", "sequence", s)

	for v := range s.Seq() {
		if v == needle {
			return true
		}
	}
	return false
}

// Find returns the first element satisfying predicate, or ok=false if none does.
func Find[T any](s *Sequence[T], predicate func(T) bool) (T, bool) {
	mustSequence("find", "sequence", s)
	mustFunc("find", "predicate", predicate)

	for v := range s.Seq() {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Find returns the first element satisfying predicate.
func (s *Sequence[T]) Find(predicate func(T) bool) (T, bool) {
	return Find(s, predicate)
}

// ForEach performs action on every element of one traversal of s.
func ForEach[T any](s *Sequence[T], action func(T)) {
	mustSequence("forEach", "sequence", s)
	mustFunc("forEach", "action", action)

	for v := range s.Seq() {
		action(v)
	}
}

// ForEach performs action on every element of one traversal.
func (s *Sequence[T]) ForEach(action func(T)) {
	ForEach(s, action)
}
