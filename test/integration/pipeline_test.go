// Package integration contains integration tests that verify cross-package
// functionality. These tests ensure that different components work together
// correctly in realistic scenarios.
package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/seqflow/internal/testutil"
	"github.com/vnykmshr/seqflow/pkg/metrics"
	"github.com/vnykmshr/seqflow/pkg/sequence"
)

// TestCachedSourceFansOutToConsumers verifies that one single-pass source can
// feed several independent pipelines through a cache without being re-read.
func TestCachedSourceFansOutToConsumers(t *testing.T) {
	reads := 0
	i := 0
	events := []int{5, -3, 12, 0, -7, 9, 4, -1}
	source := sequence.Generate(func() (int, bool) {
		if i >= len(events) {
			return 0, false
		}
		v := events[i]
		i++
		reads++
		return v, true
	})

	cached := sequence.Cache(source)

	var wg sync.WaitGroup
	var total, positives, minimum int
	wg.Add(3)
	go func() {
		defer wg.Done()
		total = sequence.Sum(cached)
	}()
	go func() {
		defer wg.Done()
		positives = cached.Filter(func(v int) bool { return v > 0 }).Count()
	}()
	go func() {
		defer wg.Done()
		minimum, _ = sequence.Min(cached)
	}()
	wg.Wait()

	testutil.AssertEqual(t, total, 19)
	testutil.AssertEqual(t, positives, 4)
	testutil.AssertEqual(t, minimum, -7)
	testutil.AssertEqual(t, reads, len(events))
}

// TestPartitionedPipelinesAgree verifies that splitting a stream for separate
// processing preserves every element exactly once.
func TestPartitionedPipelinesAgree(t *testing.T) {
	input := sequence.Range(1, 101, 1)

	evens, odds := input.Partition(func(v int) bool { return v%2 == 0 })

	evenSum := sequence.Sum(evens)
	oddSum := sequence.Sum(odds)

	testutil.AssertEqual(t, evenSum+oddSum, sequence.Sum(sequence.Range(1, 101, 1)))
	testutil.AssertEqual(t, evenSum, 2550)
	testutil.AssertEqual(t, oddSum, 2500)
}

// TestScheduleDrivenPipeline verifies that cron activation times compose with
// sequence operators and comparisons.
func TestScheduleDrivenPipeline(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	everyTen, err := sequence.FromSchedule("*/10 * * * *", from)
	testutil.AssertNoError(t, err)
	everyFive, err := sequence.FromSchedule("*/5 * * * *", from)
	testutil.AssertNoError(t, err)

	// every second five-minute activation is a ten-minute activation
	tens := sequence.Take(everyTen, 6)
	alternate := sequence.Enumerate(everyFive).
		Filter(func(p sequence.Pair[int, time.Time]) bool { return p.V1%2 == 1 })
	fromFives := sequence.Take(sequence.Map(alternate, func(p sequence.Pair[int, time.Time]) time.Time { return p.V2 }), 6)

	equal := sequence.EqualFunc(tens, fromFives, func(a, b time.Time) bool { return a.Equal(b) })
	testutil.AssertEqual(t, equal, true)
}

// TestInstrumentedEndToEnd verifies that metrics wrappers observe a composite
// pipeline without changing its results.
func TestInstrumentedEndToEnd(t *testing.T) {
	config := metrics.Config{Enabled: true, Registry: prometheus.NewRegistry()}

	source := sequence.WithMetrics(sequence.Range(0, 10, 1), "ingest", config)
	cached := sequence.CacheWithMetrics(source, "ingest_cache", config)
	small, large := sequence.PartitionWithMetrics(cached, func(v int) bool { return v < 5 }, "size_class", config)

	testutil.AssertSliceEqual(t, small.ToSlice(), []int{0, 1, 2, 3, 4})
	testutil.AssertSliceEqual(t, large.ToSlice(), []int{5, 6, 7, 8, 9})

	// the cache replays a second consumer without another upstream traversal
	testutil.AssertEqual(t, sequence.Sum(cached), 45)

	registry := config.Registry.(*prometheus.Registry)
	families, err := registry.Gather()
	testutil.AssertNoError(t, err)

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{
		"seqflow_sequence_traversals_total",
		"seqflow_cache_misses_total",
		"seqflow_split_upstream_pulls_total",
	} {
		if !found[name] {
			t.Fatalf("metric family %s not exported", name)
		}
	}
}
