/*
Package seqflow provides a lazy sequence combinator library for Go with
memoization, stream splitting and lockstep multi-source traversal.

Sequences (pkg/sequence):
  - sequence: the Sequence wrapper, operator catalogue, Cache, Split,
    Partition, Zip, Equal and the eager boundary (Sort, Reduce, ToSlice)

Shared infrastructure:
  - pkg/common/errors: structured bad-argument and type-mismatch errors
  - pkg/common/validation: operator argument checks
  - pkg/metrics: Prometheus instrumentation for sequences, caches and splits

Example usage:

	import "github.com/vnykmshr/seqflow/pkg/sequence"

	evens, odds := sequence.Range(0, 100, 1).
		Partition(func(x int) bool { return x%2 == 0 })

	total := sequence.Sum(evens)
	first := sequence.ToSlice(sequence.Take(odds, 5))
*/
package seqflow
