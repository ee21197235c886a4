package metrics

import (
	"math"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/datasplit/types"
)

// MemoryCollector implements types.MetricsCollector with in-process counters.
//
// Useful for tests and for hosts that export metrics through their own channel.
// All methods are safe for concurrent use.
type MemoryCollector struct {
	splits      *xsync.Map[string, *xsync.Counter]
	errors      *xsync.Map[string, *xsync.Counter]
	items       *xsync.Map[types.SplitName, *xsync.Counter]
	groups      *xsync.Counter
	unallocated atomic.Uint64 // float64 bits
}

// Compile-time assertion that MemoryCollector implements MetricsCollector.
var _ types.MetricsCollector = (*MemoryCollector)(nil)

// NewMemory creates an empty in-memory collector.
func NewMemory() *MemoryCollector {
	return &MemoryCollector{
		splits: xsync.NewMap[string, *xsync.Counter](),
		errors: xsync.NewMap[string, *xsync.Counter](),
		items:  xsync.NewMap[types.SplitName, *xsync.Counter](),
		groups: xsync.NewCounter(),
	}
}

// RecordSplit records a successful split.
func (m *MemoryCollector) RecordSplit(strategy string, sizes types.SplitSizes, groups int, _ /* duration */ float64) {
	counter(m.splits, strategy).Inc()
	counter(m.items, types.SplitTrain).Add(int64(sizes.Train))
	counter(m.items, types.SplitValidation).Add(int64(sizes.Validation))
	counter(m.items, types.SplitTest).Add(int64(sizes.Test))
	counter(m.items, types.SplitOverflow).Add(int64(sizes.Overflow))
	m.groups.Add(int64(groups))
}

// RecordSplitError records a failed split.
func (m *MemoryCollector) RecordSplitError(reason string) {
	counter(m.errors, reason).Inc()
}

// RecordUnallocated records the configured unallocated fraction.
func (m *MemoryCollector) RecordUnallocated(frac float64) {
	m.unallocated.Store(math.Float64bits(frac))
}

// Splits returns the number of successful splits for a strategy.
func (m *MemoryCollector) Splits(strategy string) int64 {
	return value(m.splits, strategy)
}

// TotalSplits returns the number of successful splits across all strategies.
func (m *MemoryCollector) TotalSplits() int64 {
	var total int64
	m.splits.Range(func(_ string, c *xsync.Counter) bool {
		total += c.Value()
		return true
	})

	return total
}

// Errors returns the number of failed splits for a reason.
func (m *MemoryCollector) Errors(reason string) int64 {
	return value(m.errors, reason)
}

// Items returns the number of items assigned to a bucket across all splits.
func (m *MemoryCollector) Items(name types.SplitName) int64 {
	return value(m.items, name)
}

// Groups returns the number of groups seen across all splits.
func (m *MemoryCollector) Groups() int64 {
	return m.groups.Value()
}

// Unallocated returns the last recorded unallocated fraction.
func (m *MemoryCollector) Unallocated() float64 {
	return math.Float64frombits(m.unallocated.Load())
}

func counter[K comparable](m *xsync.Map[K, *xsync.Counter], key K) *xsync.Counter {
	if c, ok := m.Load(key); ok {
		return c
	}
	c, _ := m.LoadOrStore(key, xsync.NewCounter())

	return c
}

func value[K comparable](m *xsync.Map[K, *xsync.Counter], key K) int64 {
	if c, ok := m.Load(key); ok {
		return c.Value()
	}

	return 0
}
