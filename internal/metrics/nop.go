// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/datasplit/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	splitter, err := datasplit.NewSplitter(&cfg, datasplit.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSplit discards the split metric.
func (n *NopMetrics) RecordSplit(_ /* strategy */ string, _ /* sizes */ types.SplitSizes, _ /* groups */ int, _ /* duration */ float64) {
	// No-op
}

// RecordSplitError discards the split error metric.
func (n *NopMetrics) RecordSplitError(_ /* reason */ string) {
	// No-op
}

// RecordUnallocated discards the unallocated fraction metric.
func (n *NopMetrics) RecordUnallocated(_ /* frac */ float64) {
	// No-op
}
