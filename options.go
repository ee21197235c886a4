package datasplit

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/datasplit/internal/logging"
	"github.com/arloliu/datasplit/internal/metrics"
)

// Option configures a Splitter with optional dependencies.
type Option func(*splitterOptions)

// splitterOptions holds optional Splitter configuration.
type splitterOptions struct {
	orderer GroupOrderer
	metrics MetricsCollector
	logger  Logger
}

// WithStrategy overrides the configured strategy with a custom group orderer.
//
// The orderer must return a permutation of the groups it is given. Results
// produced with a custom orderer report Strategy "custom".
//
// Parameters:
//   - orderer: GroupOrderer implementation
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	splitter, err := datasplit.NewSplitter(&cfg, datasplit.WithStrategy(myOrderer))
func WithStrategy(orderer GroupOrderer) Option {
	return func(o *splitterOptions) {
		o.orderer = orderer
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	collector := datasplit.NewPrometheusMetrics(prometheus.DefaultRegisterer, "ml")
//	splitter, err := datasplit.NewSplitter(&cfg, datasplit.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *splitterOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	splitter, err := datasplit.NewSplitter(&cfg, datasplit.WithLogger(datasplit.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *splitterOptions) {
		o.logger = logger
	}
}

// NewSlogLogger adapts a slog.Logger to the Logger interface.
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewPrometheusMetrics creates a Prometheus-backed MetricsCollector.
//
// Parameters:
//   - reg: Registerer to register metrics with (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("datasplit" if empty)
//
// Returns:
//   - MetricsCollector: Collector that registers its metrics on first use
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewMemoryMetrics creates an in-memory MetricsCollector whose counters can be
// read back, mainly for tests.
func NewMemoryMetrics() *metrics.MemoryCollector {
	return metrics.NewMemory()
}
