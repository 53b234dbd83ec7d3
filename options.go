package vector

import "github.com/PotatoMaster101/vector/alloc"

type options struct {
	capacity int
	provider alloc.Provider
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures Vector construction.
type Option func(*options)

// WithCapacity overrides the initial slot capacity (DefaultCapacity).
//
// Values below 1 are ignored and the default is kept.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithProvider configures the allocation provider used for element buffers
// and backing storage.
//
// If nil is passed, the unbudgeted alloc.System provider is used.
func WithProvider(p alloc.Provider) Option {
	return func(o *options) {
		if p == nil {
			p = alloc.NewSystem()
		}
		o.provider = p
	}
}

// WithLogger configures a logger for container diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
