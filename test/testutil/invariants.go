package testutil

import (
	"testing"
	"time"

	"github.com/arloliu/datasplit/types"
)

// AssertCoverage verifies that train, validation, test and overflow together hold
// every index in [0, n) exactly once.
//
// Parameters:
//   - t: testing handle
//   - res: split result
//   - n: collection size
func AssertCoverage(t *testing.T, res types.Result, n int) {
	t.Helper()

	seen := make(map[int]types.SplitName, n)
	for _, name := range []types.SplitName{types.SplitTrain, types.SplitValidation, types.SplitTest, types.SplitOverflow} {
		for _, idx := range res.Indices(name) {
			if idx < 0 || idx >= n {
				t.Fatalf("index %d in %s is out of range [0, %d)", idx, name, n)
			}
			if prev, ok := seen[idx]; ok {
				t.Fatalf("index %d assigned to both %s and %s", idx, prev, name)
			}
			seen[idx] = name
		}
	}

	if len(seen) != n {
		t.Fatalf("result covers %d indices, expected %d", len(seen), n)
	}
	if total := res.Sizes().Total(); total != n {
		t.Fatalf("sum of split sizes (%d) does not equal collection size (%d)", total, n)
	}
}

// AssertGroupAtomic verifies that every group landed entirely in one bucket.
//
// Parameters:
//   - t: testing handle
//   - res: split result
//   - groups: groups the collection was partitioned into
func AssertGroupAtomic(t *testing.T, res types.Result, groups []types.Group) {
	t.Helper()

	owner := bucketOf(res)
	for _, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		first, ok := owner[g.Members[0]]
		if !ok {
			t.Fatalf("group %s: item %d is not assigned", g.Label(), g.Members[0])
		}
		for _, idx := range g.Members[1:] {
			if owner[idx] != first {
				t.Fatalf("group %s split across %s and %s", g.Label(), first, owner[idx])
			}
		}
	}
}

// AssertTemporalOrder verifies that every train group starts no later than any
// validation group, and every validation group no later than any test group.
//
// Parameters:
//   - t: testing handle
//   - res: split result
//   - groupStart: returns the earliest timestamp of the group owning an item
func AssertTemporalOrder(t *testing.T, res types.Result, groupStart func(item int) time.Time) {
	t.Helper()

	ordered := [][]int{res.Train, res.Validation, res.Test}
	for i := 0; i+1 < len(ordered); i++ {
		latest, ok := latestStart(ordered[i], groupStart)
		if !ok {
			continue
		}
		for j := i + 1; j < len(ordered); j++ {
			for _, idx := range ordered[j] {
				if groupStart(idx).Before(latest) {
					t.Fatalf("item %d starts at %v, before a group in an earlier split (%v)", idx, groupStart(idx), latest)
				}
			}
		}
	}
}

func latestStart(indices []int, groupStart func(int) time.Time) (time.Time, bool) {
	var latest time.Time
	for i, idx := range indices {
		if ts := groupStart(idx); i == 0 || ts.After(latest) {
			latest = ts
		}
	}

	return latest, len(indices) > 0
}

func bucketOf(res types.Result) map[int]types.SplitName {
	owner := make(map[int]types.SplitName)
	for _, name := range []types.SplitName{types.SplitTrain, types.SplitValidation, types.SplitTest, types.SplitOverflow} {
		for _, idx := range res.Indices(name) {
			owner[idx] = name
		}
	}

	return owner
}
