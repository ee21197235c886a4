package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/datasplit/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	splits      *prometheus.CounterVec
	splitErrors *prometheus.CounterVec
	items       *prometheus.CounterVec
	groups      prometheus.Histogram
	duration    *prometheus.HistogramVec
	unallocated prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "datasplit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "datasplit"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.splits = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "splits_total",
			Help:      "Total successful splits by ordering strategy.",
		}, []string{"strategy"})

		p.splitErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "split_errors_total",
			Help:      "Total failed splits by reason (empty_input,missing_group_key,missing_timestamp,nil_collection,other).",
		}, []string{"reason"})

		p.items = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "items_total",
			Help:      "Total items assigned by split (train,validation,test,overflow).",
		}, []string{"split"})

		p.groups = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "groups",
			Help:      "Number of groups per split call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
		})

		p.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "split_duration_seconds",
			Help:      "Duration of split calls in seconds by ordering strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100us .. ~26s
		}, []string{"strategy"})

		p.unallocated = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "unallocated_fraction",
			Help:      "Configured fraction of items routed to overflow by the most recently built splitter.",
		})

		p.reg.MustRegister(p.splits)
		p.reg.MustRegister(p.splitErrors)
		p.reg.MustRegister(p.items)
		p.reg.MustRegister(p.groups)
		p.reg.MustRegister(p.duration)
		p.reg.MustRegister(p.unallocated)
	})
}

// RecordSplit records a successful split.
func (p *PrometheusCollector) RecordSplit(strategy string, sizes types.SplitSizes, groups int, duration float64) {
	p.ensureRegistered()
	p.splits.WithLabelValues(strategy).Inc()
	p.items.WithLabelValues(types.SplitTrain.String()).Add(float64(sizes.Train))
	p.items.WithLabelValues(types.SplitValidation.String()).Add(float64(sizes.Validation))
	p.items.WithLabelValues(types.SplitTest.String()).Add(float64(sizes.Test))
	p.items.WithLabelValues(types.SplitOverflow.String()).Add(float64(sizes.Overflow))
	p.groups.Observe(float64(groups))
	p.duration.WithLabelValues(strategy).Observe(duration)
}

// RecordSplitError records a failed split.
func (p *PrometheusCollector) RecordSplitError(reason string) {
	p.ensureRegistered()
	p.splitErrors.WithLabelValues(reason).Inc()
}

// RecordUnallocated records the configured unallocated fraction.
func (p *PrometheusCollector) RecordUnallocated(frac float64) {
	p.ensureRegistered()
	p.unallocated.Set(frac)
}
