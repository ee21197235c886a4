package types

// MetricsCollector defines methods for recording split metrics.
//
// Implementations should be non-blocking and must be thread-safe, since a single
// Splitter may be used from many goroutines.
type MetricsCollector interface {
	// RecordSplit records a successful split.
	//
	// Parameters:
	//   - strategy: Ordering strategy name ("random", "temporal", "hash", or "custom")
	//   - sizes: Item count of every bucket
	//   - groups: Number of groups the items were partitioned into
	//   - duration: Time taken in seconds
	RecordSplit(strategy string, sizes SplitSizes, groups int, duration float64)

	// RecordSplitError records a failed split.
	//
	// Parameters:
	//   - reason: Failure reason ("empty_input", "missing_group_key", "missing_timestamp", "nil_collection", "other")
	RecordSplitError(reason string)

	// RecordUnallocated records the configured unallocated fraction of a splitter.
	//
	// Parameters:
	//   - frac: Fraction routed to overflow (0 when fractions sum to one)
	RecordUnallocated(frac float64)
}
