// Package metrics provides Prometheus instrumentation for seqflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for seqflow components.
type Registry struct {
	// Sequence traversal metrics
	SequenceTraversals *prometheus.CounterVec
	SequenceElements   *prometheus.CounterVec
	SequenceExhausted  *prometheus.CounterVec

	// Memoization metrics
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	CacheBufferLen *prometheus.GaugeVec

	// Split/partition metrics
	SplitUpstreamPulls *prometheus.CounterVec
	SplitBuffered      *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by seqflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		SequenceTraversals: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "sequence",
				Name:      "traversals_total",
				Help:      "Total number of traversals started on a sequence",
			},
			[]string{"sequence_name"},
		),

		SequenceElements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "sequence",
				Name:      "elements_total",
				Help:      "Total number of elements yielded by a sequence",
			},
			[]string{"sequence_name"},
		),

		SequenceExhausted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "sequence",
				Name:      "exhausted_total",
				Help:      "Total number of traversals that ran to upstream exhaustion",
			},
			[]string{"sequence_name"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total number of ordinals served from the replay buffer",
			},
			[]string{"sequence_name"},
		),

		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total number of ordinals that required an upstream pull",
			},
			[]string{"sequence_name"},
		),

		CacheBufferLen: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "seqflow",
				Subsystem: "cache",
				Name:      "buffer_len",
				Help:      "Current number of elements held in the replay buffer",
			},
			[]string{"sequence_name"},
		),

		SplitUpstreamPulls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "split",
				Name:      "upstream_pulls_total",
				Help:      "Total number of elements pulled from a split upstream",
			},
			[]string{"sequence_name"},
		),

		SplitBuffered: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "seqflow",
				Subsystem: "split",
				Name:      "buffered",
				Help:      "Current number of undelivered elements held for a branch",
			},
			[]string{"sequence_name", "branch"},
		),
	}
}
