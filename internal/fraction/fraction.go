// Package fraction validates the train/validation/test fractions of a split.
package fraction

import (
	"fmt"
	"math"

	"github.com/arloliu/datasplit/types"
)

// Tolerance is the relative tolerance used when comparing the fraction sum to one.
const Tolerance = 1e-6

// Report describes a set of fractions that passed validation.
type Report struct {
	// Sum is the sum of the three fractions.
	Sum float64

	// Unallocated is the fraction routed to overflow. Zero when Sum is one within Tolerance.
	Unallocated float64

	// Diagnostic is set when Unallocated > 0.
	Diagnostic *types.Diagnostic
}

// Validate checks split fractions.
//
// Rules:
//   - Negative, NaN or infinite fractions are always rejected
//   - A sum above one (beyond Tolerance) is always rejected
//   - A sum below one is rejected when enforce is true, otherwise reported as unallocated
//
// Parameters:
//   - train: Train fraction
//   - val: Validation fraction
//   - test: Test fraction
//   - enforce: Require the fractions to sum to one
//
// Returns:
//   - Report: Sum and unallocated fraction, with a diagnostic when part of the data is excluded
//   - error: Wrapped types.ErrInvalidConfiguration on violation
func Validate(train, val, test float64, enforce bool) (Report, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"train", train},
		{"validation", val},
		{"test", test},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return Report{}, fmt.Errorf("%w: %s fraction is not a finite number", types.ErrInvalidConfiguration, f.name)
		}
		if f.value < 0 {
			return Report{}, fmt.Errorf("%w: %s fraction %g is negative", types.ErrInvalidConfiguration, f.name, f.value)
		}
	}

	sum := train + val + test
	if IsOne(sum) {
		return Report{Sum: sum}, nil
	}

	if sum > 1 {
		return Report{}, fmt.Errorf("%w: split fractions sum to %.6g, more than 1", types.ErrInvalidConfiguration, sum)
	}

	if enforce {
		return Report{}, fmt.Errorf("%w: split fractions sum to %.6g, not 1", types.ErrInvalidConfiguration, sum)
	}

	unallocated := 1 - sum

	return Report{
		Sum:         sum,
		Unallocated: unallocated,
		Diagnostic: &types.Diagnostic{
			Code:            types.DiagnosticUnallocated,
			Message:         fmt.Sprintf("split fractions sum to %.4g, %.4g%% of items will be excluded from all splits", sum, unallocated*100),
			UnallocatedFrac: unallocated,
		},
	}, nil
}

// IsOne reports whether sum equals one within Tolerance.
func IsOne(sum float64) bool {
	return math.Abs(sum-1) <= Tolerance*math.Max(1, math.Abs(sum))
}
