// SPDX-License-Identifier: MIT

// Package magnus: functional configuration.
// Defaults are documented constants (single source of truth); WithX
// constructors panic on nonsensical values — misconfiguration is a
// programmer error, not a runtime condition.

package magnus

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultWorkers evaluates the summations sequentially.
	DefaultWorkers = 1

	// DefaultOrder truncates the series after the 3rd order term.
	DefaultOrder = 3

	// MaxOrder is the highest implemented series order.
	MaxOrder = 3
)

// Option configures term evaluation.
type Option func(*options)

type options struct {
	workers int
	order   int
}

func defaultOptions() options {
	return options{workers: DefaultWorkers, order: DefaultOrder}
}

func gatherOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers partitions the outer summation index range across w
// goroutines. Each worker reduces a contiguous chunk; chunks are combined in
// index order, so results are deterministic for a fixed w.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("magnus: WithWorkers requires w >= 1")
	}
	return func(cfg *options) { cfg.workers = w }
}

// WithOrder truncates Generator's series after the k-th term, k ∈ {1,2,3}.
// Panics for any other k.
func WithOrder(k int) Option {
	if k < 1 || k > MaxOrder {
		panic("magnus: WithOrder requires 1 <= k <= 3")
	}
	return func(cfg *options) { cfg.order = k }
}
