package sequence

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/seqflow/pkg/metrics"
)

// Prometheus instrumentation wrappers. Each returns a Sequence that behaves
// identically to its input while recording traversal activity under the
// given sequence name. When the config disables metrics the input is
// returned unwrapped, so instrumentation can be toggled without touching the
// pipeline.

// WithMetrics wraps s so that every traversal, yielded element and upstream
// exhaustion is counted under name.
func WithMetrics[T any](s *Sequence[T], name string, config metrics.Config) *Sequence[T] {
	mustSequence("withMetrics", "sequence", s)

	if !config.Enabled {
		return s
	}
	registry := registryFor(config)

	return derive(s.SinglePass(), func(yield func(T) bool) {
		registry.SequenceTraversals.WithLabelValues(name).Inc()
		next, stop := s.pull()
		defer stop()
		for {
			v, ok := next()
			if !ok {
				registry.SequenceExhausted.WithLabelValues(name).Inc()
				return
			}
			registry.SequenceElements.WithLabelValues(name).Inc()
			if !yield(v) {
				return
			}
		}
	})
}

// CacheWithMetrics is Cache with replay-buffer instrumentation: ordinals
// served from the buffer count as hits, ordinals requiring an upstream pull
// as misses, and the buffer length is exported as a gauge.
func CacheWithMetrics[T any](s *Sequence[T], name string, config metrics.Config) *Sequence[T] {
	mustSequence("cache", "sequence", s)

	if !config.Enabled {
		return Cache(s)
	}
	registry := registryFor(config)

	buf := &replayBuffer[T]{
		onHit:  func() { registry.CacheHits.WithLabelValues(name).Inc() },
		onMiss: func() { registry.CacheMisses.WithLabelValues(name).Inc() },
		onLen:  func(n int) { registry.CacheBufferLen.WithLabelValues(name).Set(float64(n)) },
	}
	return newCache(s, buf)
}

// PartitionWithMetrics is Partition with shared-upstream instrumentation:
// upstream pulls are counted and the number of undelivered elements waiting
// in each branch buffer is exported per branch.
func PartitionWithMetrics[T any](s *Sequence[T], predicate func(T) bool, name string, config metrics.Config) (*Sequence[T], *Sequence[T]) {
	mustSequence("partition", "sequence", s)
	mustFunc("partition", "predicate", predicate)

	st := partitionBy(s, predicate)
	if config.Enabled {
		instrumentSplit(st, name, registryFor(config))
	}
	return st.branches()
}

// SplitWithMetrics is Split with shared-upstream instrumentation.
func SplitWithMetrics[T any](s *Sequence[T], count int, name string, config metrics.Config) (*Sequence[T], *Sequence[T]) {
	mustSequence("split", "sequence", s)

	st := splitByCount(s, count)
	if config.Enabled {
		instrumentSplit(st, name, registryFor(config))
	}
	return st.branches()
}

// registries memoizes one metrics.Registry per Prometheus registerer.
// Registering the same collectors twice on one registerer panics, so every
// wrapper sharing a config must share the metric instances too.
var (
	registryMu sync.Mutex
	registries = map[prometheus.Registerer]*metrics.Registry{}
)

func registryFor(config metrics.Config) *metrics.Registry {
	// The default registerer already backs DefaultRegistry.
	if config.Registry == nil || config.Registry == prometheus.DefaultRegisterer {
		return metrics.DefaultRegistry
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	r, ok := registries[config.Registry]
	if !ok {
		r = metrics.NewRegistry(config.Registry)
		registries[config.Registry] = r
	}
	return r
}

var branchLabels = [2]string{"left", "right"}

func instrumentSplit[T any](st *splitState[T], name string, registry *metrics.Registry) {
	st.onPull = func() {
		registry.SplitUpstreamPulls.WithLabelValues(name).Inc()
	}
	st.onBuffered = func(branch, undelivered int) {
		registry.SplitBuffered.WithLabelValues(name, branchLabels[branch]).Set(float64(undelivered))
	}
}
