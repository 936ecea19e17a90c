package sequence

import "sync"

// Split, SpanWith, BreakWith and Partition derive two sequences from one
// shared upstream traversal. Each produced element is classified to exactly
// one branch; elements classified to the branch that is not currently
// traversing wait in that branch's buffer. Whichever branch is traversed
// further drives the upstream forward, so the two branches may be consumed
// independently and at different rates without losing or duplicating
// elements. Both branches are single-pass.

const (
	branchLeft = iota
	branchRight
)

// splitState is the shared upstream cursor and branch buffers of one
// split/partition application. Buffers are append-only with a per-branch
// delivery cursor; only the traversal currently holding the mutex appends.
type splitState[T any] struct {
	mu   sync.Mutex
	src  *Sequence[T]
	next func() (T, bool) // created on first pull from either branch
	stop func()
	done bool

	// route classifies one upstream element. Prefix operators flip closed
	// for the left branch so a drained left branch never keeps pulling an
	// upstream it can no longer receive from.
	route  func(T) int
	closed [2]bool

	buf  [2][]T
	read [2]int

	// instrumentation hooks, nil unless metrics are enabled
	onPull     func()
	onBuffered func(branch, undelivered int)
}

func (st *splitState[T]) pullBranch(branch int) (T, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for {
		if st.read[branch] < len(st.buf[branch]) {
			v := st.buf[branch][st.read[branch]]
			st.read[branch]++
			if st.onBuffered != nil {
				st.onBuffered(branch, len(st.buf[branch])-st.read[branch])
			}
			return v, true
		}
		if st.done || st.closed[branch] {
			var zero T
			return zero, false
		}

		if st.next == nil {
			st.next, st.stop = st.src.pull()
		}
		v, ok := st.next()
		if !ok {
			st.done = true
			st.stop()
			continue
		}
		if st.onPull != nil {
			st.onPull()
		}
		b := st.route(v)
		st.buf[b] = append(st.buf[b], v)
		if st.onBuffered != nil {
			st.onBuffered(b, len(st.buf[b])-st.read[b])
		}
	}
}

func (st *splitState[T]) branch(b int) *Sequence[T] {
	return &Sequence[T]{single: &cursor[T]{
		next: func() (T, bool) { return st.pullBranch(b) },
		stop: func() {},
	}}
}

func (st *splitState[T]) branches() (*Sequence[T], *Sequence[T]) {
	return st.branch(branchLeft), st.branch(branchRight)
}

// Split returns the first count elements of s as the left sequence and the
// remainder as the right one. A count of zero or less yields an empty left
// branch; a count beyond the length of s yields an empty right branch.
// Concatenating left and right reproduces s in order.
func Split[T any](s *Sequence[T], count int) (*Sequence[T], *Sequence[T]) {
	mustSequence("split", "sequence", s)
	return splitByCount(s, count).branches()
}

func splitByCount[T any](s *Sequence[T], count int) *splitState[T] {
	st := &splitState[T]{src: s}
	if count <= 0 {
		st.closed[branchLeft] = true
	}
	taken := 0
	st.route = func(T) int {
		if taken < count {
			taken++
			if taken == count {
				st.closed[branchLeft] = true
			}
			return branchLeft
		}
		return branchRight
	}
	return st
}

// Split returns the first count elements and the remainder as two sequences.
func (s *Sequence[T]) Split(count int) (*Sequence[T], *Sequence[T]) {
	return Split(s, count)
}

// SpanWith returns the longest prefix of s whose elements satisfy predicate
// as the left sequence, and everything from the first failing element on as
// the right one. The predicate is not consulted again after the first
// failure: a later element that would satisfy it still belongs to the right
// branch.
func SpanWith[T any](s *Sequence[T], predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	mustSequence("spanWith", "sequence", s)
	mustFunc("spanWith", "predicate", predicate)
	return span(s, predicate)
}

// SpanWith returns the satisfying prefix and the remainder as two sequences.
func (s *Sequence[T]) SpanWith(predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	return SpanWith(s, predicate)
}

// BreakWith returns the longest prefix of s whose elements do not satisfy
// predicate as the left sequence, and everything from the first satisfying
// element on as the right one. It is SpanWith with the predicate negated.
func BreakWith[T any](s *Sequence[T], predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	mustSequence("breakWith", "sequence", s)
	mustFunc("breakWith", "predicate", predicate)
	return span(s, func(v T) bool { return !predicate(v) })
}

// BreakWith returns the non-satisfying prefix and the remainder as two sequences.
func (s *Sequence[T]) BreakWith(predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	return BreakWith(s, predicate)
}

func span[T any](s *Sequence[T], predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	st := &splitState[T]{src: s}
	st.route = func(v T) int {
		if !st.closed[branchLeft] && predicate(v) {
			return branchLeft
		}
		st.closed[branchLeft] = true
		return branchRight
	}
	return st.branches()
}

func partitionBy[T any](s *Sequence[T], predicate func(T) bool) *splitState[T] {
	st := &splitState[T]{src: s}
	st.route = func(v T) int {
		if predicate(v) {
			return branchLeft
		}
		return branchRight
	}
	return st
}

// Partition classifies every element of s for the whole sequence's lifetime:
// elements satisfying predicate form the left sequence, the rest the right
// one, each in original relative order. Unlike SpanWith, the predicate keeps
// deciding element by element; both branches extend to the end of s.
func Partition[T any](s *Sequence[T], predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	mustSequence("partition", "sequence", s)
	mustFunc("partition", "predicate", predicate)
	return partitionBy(s, predicate).branches()
}

// Partition returns the satisfying and non-satisfying elements as two sequences.
func (s *Sequence[T]) Partition(predicate func(T) bool) (*Sequence[T], *Sequence[T]) {
	return Partition(s, predicate)
}
