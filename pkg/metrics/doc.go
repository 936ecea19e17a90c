// Package metrics provides Prometheus instrumentation for seqflow components.
//
// This package enables monitoring and observability for seqflow's sequence
// pipelines, memoization buffers, and split branches through Prometheus metrics.
//
// # Quick Start
//
// Enable metrics by wrapping a sequence with the metrics-enabled constructors
// in pkg/sequence:
//
//	s := sequence.WithMetrics(sequence.FromSlice(data), "orders", metrics.DefaultConfig())
//	cached := sequence.CacheWithMetrics(upstream, "lookup_table", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	s := sequence.WithMetrics(source, "orders", config)
//
// # Available Metrics
//
// ## Sequence Metrics
//
//   - seqflow_sequence_traversals_total: Traversals started on a sequence
//   - seqflow_sequence_elements_total: Elements yielded by a sequence
//   - seqflow_sequence_exhausted_total: Traversals that ran to upstream exhaustion
//
// ## Memoization Metrics
//
//   - seqflow_cache_hits_total: Ordinals served from the replay buffer
//   - seqflow_cache_misses_total: Ordinals that required an upstream pull
//   - seqflow_cache_buffer_len: Elements currently held in the replay buffer
//
// ## Split Metrics
//
//   - seqflow_split_upstream_pulls_total: Elements pulled from a split upstream
//   - seqflow_split_buffered: Undelivered elements held for a branch
//
// # Labels
//
//   - sequence_name: User-provided name for the instrumented sequence
//   - branch: "left" or "right" for split branch buffers
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when elements flow
//   - No background goroutines or timers
//   - Conditional updates based on the enabled state
package metrics
