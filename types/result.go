package types

// SplitName identifies one of the output buckets of a split.
type SplitName int

const (
	// SplitTrain is the training subset.
	SplitTrain SplitName = iota

	// SplitValidation is the validation subset.
	SplitValidation

	// SplitTest is the test subset.
	SplitTest

	// SplitOverflow is the implicit sink that absorbs the unallocated fraction.
	// Its items are excluded from train, validation and test.
	SplitOverflow
)

// String returns the string representation of the split name.
func (s SplitName) String() string {
	switch s {
	case SplitTrain:
		return "train"
	case SplitValidation:
		return "validation"
	case SplitTest:
		return "test"
	case SplitOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// SplitSizes holds the item count of every bucket.
type SplitSizes struct {
	Train      int `json:"train"`
	Validation int `json:"validation"`
	Test       int `json:"test"`
	Overflow   int `json:"overflow"`
}

// Total returns the number of items across all buckets, overflow included.
func (s SplitSizes) Total() int {
	return s.Train + s.Validation + s.Test + s.Overflow
}

// DiagnosticCode classifies a non-fatal condition reported alongside a result.
type DiagnosticCode string

// DiagnosticUnallocated reports that fractions sum below one and part of the
// collection is routed to the overflow bucket.
const DiagnosticUnallocated DiagnosticCode = "unallocated_fraction"

// Diagnostic is a non-fatal, inspectable notice accompanying a successful result.
type Diagnostic struct {
	// Code classifies the diagnostic.
	Code DiagnosticCode `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// UnallocatedFrac is the fraction of the collection excluded from all splits.
	UnallocatedFrac float64 `json:"unallocatedFrac"`
}

// Result holds the item indices of each split.
//
// A Result is produced fresh on every call and owned by the caller. Train,
// Validation, Test and Overflow are pairwise disjoint and together cover every
// index of the input collection exactly once.
type Result struct {
	// Train holds the training item indices.
	Train []int `json:"train"`

	// Validation holds the validation item indices.
	Validation []int `json:"validation"`

	// Test holds the test item indices.
	Test []int `json:"test"`

	// Overflow holds item indices that belong to no split. Empty when the
	// fractions sum to one.
	Overflow []int `json:"overflow,omitempty"`

	// Strategy is the ordering strategy that produced the result.
	Strategy Strategy `json:"strategy"`

	// Seed is the effective seed for seeded strategies. Persist it to reproduce the split.
	Seed uint64 `json:"seed"`

	// SeedSupplied is false when the seed was drawn from the process generator,
	// in which case the run is only reproducible by reusing Seed.
	SeedSupplied bool `json:"seedSupplied"`

	// GroupCount is the number of groups the items were partitioned into.
	GroupCount int `json:"groupCount"`

	// Diagnostics lists non-fatal conditions detected for this split.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Sizes returns the item count of every bucket.
func (r Result) Sizes() SplitSizes {
	return SplitSizes{
		Train:      len(r.Train),
		Validation: len(r.Validation),
		Test:       len(r.Test),
		Overflow:   len(r.Overflow),
	}
}

// Indices returns the indices of the named bucket.
//
// Parameters:
//   - name: Bucket to look up
//
// Returns:
//   - []int: Indices of the bucket (nil for unknown names)
func (r Result) Indices(name SplitName) []int {
	switch name {
	case SplitTrain:
		return r.Train
	case SplitValidation:
		return r.Validation
	case SplitTest:
		return r.Test
	case SplitOverflow:
		return r.Overflow
	default:
		return nil
	}
}
