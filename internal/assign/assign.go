package assign

import (
	"math"

	"github.com/arloliu/datasplit/types"
)

// snapTolerance absorbs floating point error when flooring fraction * N, so that
// 0.05 * 100 computed as 4.999999999999993 still yields 5.
const snapTolerance = 1e-9

// Fractions are the validated target fractions of a split.
type Fractions struct {
	Train      float64
	Validation float64
	Test       float64

	// Overflow is the unallocated remainder, 1 - (Train + Validation + Test).
	// A value of zero disables the overflow bucket.
	Overflow float64
}

// Target is the planned item count of one bucket.
type Target struct {
	Name  types.SplitName
	Count int
}

// Assignment holds the item indices of every bucket.
type Assignment struct {
	Train      []int
	Validation []int
	Test       []int
	Overflow   []int
}

// Sizes returns the item count of every bucket.
func (a Assignment) Sizes() types.SplitSizes {
	return types.SplitSizes{
		Train:      len(a.Train),
		Validation: len(a.Validation),
		Test:       len(a.Test),
		Overflow:   len(a.Overflow),
	}
}

// Plan computes the bucket sequence and target item counts for n items.
//
// Parameters:
//   - n: Total item count
//   - fr: Target fractions
//
// Returns:
//   - []Target: Buckets in fill order; the last one is always test and absorbs the remainder
func Plan(n int, fr Fractions) []Target {
	plan := []Target{
		{Name: types.SplitTrain},
		{Name: types.SplitValidation},
	}
	fracs := []float64{fr.Train, fr.Validation}
	if fr.Overflow > 0 {
		plan = append(plan, Target{Name: types.SplitOverflow})
		fracs = append(fracs, fr.Overflow)
	}

	allocated := 0
	for i, f := range fracs {
		c := min(Count(f, n), n-allocated)
		plan[i].Count = c
		allocated += c
	}

	return append(plan, Target{Name: types.SplitTest, Count: n - allocated})
}

// Count returns floor(frac * n), snapping values within snapTolerance of the
// next integer up to it.
func Count(frac float64, n int) int {
	if frac <= 0 || n <= 0 {
		return 0
	}

	// Follows exact decimal arithmetic: 0.29 * 100 is 29 even though the float
	// product is 28.999999999999996 and a plain floor would give 28.
	v := frac * float64(n)
	f := math.Floor(v)
	if v-f >= 1-snapTolerance*math.Max(1, v) {
		f++
	}

	return int(f)
}

// Assign distributes ordered groups over the buckets planned for n items.
//
// Parameters:
//   - groups: Groups in assignment order
//   - n: Total item count (the sum of group sizes)
//   - fr: Target fractions
//
// Returns:
//   - Assignment: Indices per bucket; Overflow is nil when fr.Overflow is zero
func Assign(groups []types.Group, n int, fr Fractions) Assignment {
	plan := Plan(n, fr)

	var out Assignment
	cursor := 0
	last := len(plan) - 1

	for i, target := range plan {
		dst := make([]int, 0, target.Count)

		if i == last {
			for ; cursor < len(groups); cursor++ {
				dst = append(dst, groups[cursor].Members...)
			}
		} else {
			reserved := 0
			for _, later := range plan[i+1:] {
				if later.Count > 0 {
					reserved++
				}
			}

			for len(dst) < target.Count && len(groups)-cursor > reserved {
				dst = append(dst, groups[cursor].Members...)
				cursor++
			}
		}

		switch target.Name {
		case types.SplitTrain:
			out.Train = dst
		case types.SplitValidation:
			out.Validation = dst
		case types.SplitOverflow:
			out.Overflow = dst
		case types.SplitTest:
			out.Test = dst
		}
	}

	return out
}
