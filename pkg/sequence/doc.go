/*
Package sequence provides a lazy sequence combinator library for Go.

A Sequence wraps any producer of elements behind one chainable abstraction
and offers a vocabulary of transformation, filtering, aggregation and
restructuring operators over it, evaluated lazily wherever possible.

Core Concepts:

A Sequence is:
  - Lazy: building a pipeline performs no work; elements are pulled one at a
    time only when a traversal runs, depth-first through the operator chain.
  - Cheap to build: each operator call wraps the previous Sequence in a new
    one holding a reference to it plus operator state.
  - Either multi-pass or single-pass, decided once at construction. A
    multi-pass Sequence restarts from the beginning on every traversal. A
    single-pass Sequence shares one underlying position: traversing it twice
    observes two continuations of the same state, not two copies.

Basic Usage:

	result := sequence.FromSlice([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(x int) bool { return x%2 == 0 }).
		Map(func(x int) int { return x * 10 }).
		ToSlice()

	// result == [20, 40, 60]

Sequence Creation:

	sequence.FromSlice([]string{"a", "b"})     // multi-pass
	sequence.FromSeq(slices.Values(items))     // multi-pass iter.Seq
	sequence.Once(scannerLines)                // single-pass iter.Seq
	sequence.Generate(nextToken)               // single-pass producer func
	sequence.FromChannel(ch)                   // single-pass channel drain
	sequence.Range(0, 10, 1)                   // multi-pass generator
	sequence.Empty[int]()

Re-entrancy over single-pass producers:

Cache converts any Sequence into a multiply-traversable one by recording
yields into an append-only replay buffer the first time they are produced.
Across all traversals the upstream is pulled at most once per distinct
ordinal. The buffer is never evicted; over an infinite upstream it grows
without bound as new ordinals are visited.

	cached := sequence.Cache(expensive)
	a := cached.ToSlice() // drives the upstream
	b := cached.ToSlice() // replays the buffer, no upstream pulls

Splitting one upstream into two:

Split, SpanWith, BreakWith and Partition derive two independently
traversable sequences from one shared upstream without losing or duplicating
elements. Whichever branch is traversed further drives the upstream and
deposits the other branch's elements into its buffer for later replay.

	evens, odds := sequence.Partition(numbers, func(x int) bool { return x%2 == 0 })
	small, rest := sequence.Split(numbers, 10)
	prefix, tail := sequence.SpanWith(numbers, func(x int) bool { return x < 100 })

Synchronized traversal:

	sums := sequence.ZipWith([]*sequence.Sequence[int]{a, b},
		func(step []int) int { return step[0] + step[1] })
	same := sequence.Equal(a, b)

Zip stops at the first exhausted input; Equal answers false at the first
mismatch without pulling further.

The eager boundary:

Sort, Reverse, ToSlice, Fold, Reduce, Sum, Average, Min and Max must
materialize or fold the whole upstream before producing a result, and
therefore do not terminate on infinite sequences. Sorted (the is-ordered
check), Any, Contains, First and Find short-circuit. Sorting is stable:
elements comparing equal keep their original relative order.

Call shapes:

Every operator is a free function taking the source Sequence explicitly;
operators whose signatures need no extra type parameter also exist as
methods, which delegate to the free functions. Both shapes are one contract:

	sequence.Filter(s, pred)  ===  s.Filter(pred)

Operators that introduce a new element type (Map to a different type,
FlatMap to a different type, Zip2, ZipWith) are free functions only: Go
methods cannot declare additional type parameters.

Errors:

Invalid arguments (nil functions, negative counts, nil sequences) are
programmer errors and panic synchronously at operator-call time with a
structured *errors.BadArgumentError, before any traversal begins. A composer
passed to Compose that returns nil panics with *errors.TypeMismatchError.
The core never raises errors mid-traversal; a panic inside a caller-supplied
predicate or reducer propagates out of the traversal unmodified.

Concurrency:

Suspension happens only at sequence-production points (iter.Pull coroutines).
The shared replay and branch buffers use a mutex-protected single-writer,
multiple-reader discipline, so traversals of one cached or split sequence
may run from different goroutines. Individual traversals are otherwise
sequential; the library starts no goroutines of its own.

Abandoning a traversal simply stops pulling: there is no close or teardown
hook, and the suspended producer state becomes garbage once unreferenced. A
single-pass cursor keeps its position for the next traversal.
*/
package sequence
