package sequence

import "sync"

// replayBuffer records the yields of one shared upstream traversal so that
// arbitrarily many downstream traversals can replay them by ordinal. The
// buffer is append-only and grows monotonically: once an ordinal is
// buffered, no later request for it touches the upstream again. A traversal
// lagging behind another reads buffered entries; the traversal furthest
// ahead is the single writer driving the upstream.
type replayBuffer[T any] struct {
	mu   sync.Mutex
	src  *Sequence[T]
	next func() (T, bool) // shared upstream cursor, created on first miss
	stop func()
	vals []T
	done bool // upstream exhausted

	// instrumentation hooks, nil unless metrics are enabled
	onHit  func()
	onMiss func()
	onLen  func(int)
}

// at returns the element at ordinal i, pulling the upstream forward only if
// i lies beyond everything buffered so far.
func (b *replayBuffer[T]) at(i int) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < len(b.vals) {
		if b.onHit != nil {
			b.onHit()
		}
		return b.vals[i], true
	}

	for len(b.vals) <= i && !b.done {
		if b.next == nil {
			b.next, b.stop = b.src.pull()
		}
		v, ok := b.next()
		if !ok {
			b.done = true
			b.stop()
			break
		}
		if b.onMiss != nil {
			b.onMiss()
		}
		b.vals = append(b.vals, v)
		if b.onLen != nil {
			b.onLen(len(b.vals))
		}
	}

	if i < len(b.vals) {
		return b.vals[i], true
	}
	var zero T
	return zero, false
}

// Cache returns a multi-pass Sequence that replays the elements of s to any
// number of traversals while pulling the upstream at most once per distinct
// ordinal. Traversals may interleave freely: whichever is furthest ahead
// drives the upstream, the others replay the buffer.
//
// The replay buffer is never evicted. Over an infinite upstream it grows
// without bound as new ordinals are visited; bound the traversals (for
// example with Take) if that matters.
func Cache[T any](s *Sequence[T]) *Sequence[T] {
	mustSequence("cache", "sequence", s)
	return newCache(s, nil)
}

// Cache returns a multi-pass Sequence replaying this sequence's elements.
func (s *Sequence[T]) Cache() *Sequence[T] {
	return Cache(s)
}

func newCache[T any](s *Sequence[T], buf *replayBuffer[T]) *Sequence[T] {
	if buf == nil {
		buf = &replayBuffer[T]{}
	}
	buf.src = s

	// The result is genuinely multi-pass regardless of the upstream kind:
	// every traversal addresses the buffer by ordinal from zero.
	return &Sequence[T]{multi: func(yield func(T) bool) {
		for i := 0; ; i++ {
			v, ok := buf.at(i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}}
}
