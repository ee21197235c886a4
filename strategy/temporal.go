package strategy

import (
	"fmt"
	"slices"
	"time"

	"github.com/arloliu/datasplit/types"
)

// Temporal orders groups ascending by their earliest member timestamp.
type Temporal struct{}

var _ types.GroupOrderer = (*Temporal)(nil)

// NewTemporal creates a new temporal strategy.
//
// Every member of every group must carry a timestamp. Ties keep the original
// group order.
//
// Returns:
//   - *Temporal: Initialized temporal strategy
func NewTemporal() *Temporal {
	return &Temporal{}
}

type datedGroup struct {
	group    types.Group
	earliest time.Time
}

// Order returns the groups sorted by earliest timestamp.
//
// Parameters:
//   - groups: Groups to sort (not modified)
//   - items: Collection providing timestamps; must implement types.TimestampedCollection
//
// Returns:
//   - []types.Group: Sorted copy of groups
//   - error: types.ErrMissingTimestamp, wrapped in *types.GroupError naming the group
//     when a member lacks a timestamp
func (t *Temporal) Order(groups []types.Group, items types.Collection) ([]types.Group, error) {
	dated, ok := items.(types.TimestampedCollection)
	if !ok {
		return nil, fmt.Errorf("%w: collection %T does not provide timestamps", types.ErrMissingTimestamp, items)
	}

	entries := make([]datedGroup, len(groups))
	for gi, g := range groups {
		earliest, err := Earliest(g, dated)
		if err != nil {
			return nil, err
		}
		entries[gi] = datedGroup{group: g, earliest: earliest}
	}

	slices.SortStableFunc(entries, func(a, b datedGroup) int {
		return a.earliest.Compare(b.earliest)
	})

	out := make([]types.Group, len(entries))
	for i, e := range entries {
		out[i] = e.group
	}

	return out, nil
}

// Earliest returns the minimum timestamp across the members of g.
//
// Parameters:
//   - g: Group to inspect
//   - items: Collection providing timestamps
//
// Returns:
//   - time.Time: Earliest member timestamp
//   - error: *types.GroupError wrapping types.ErrMissingTimestamp
func Earliest(g types.Group, items types.TimestampedCollection) (time.Time, error) {
	if len(g.Members) == 0 {
		return time.Time{}, &types.GroupError{Group: g, Item: -1, Err: types.ErrMissingTimestamp}
	}

	var earliest time.Time
	for i, idx := range g.Members {
		ts, ok := items.Timestamp(idx)
		if !ok {
			return time.Time{}, &types.GroupError{Group: g, Item: idx, Err: types.ErrMissingTimestamp}
		}
		if i == 0 || ts.Before(earliest) {
			earliest = ts
		}
	}

	return earliest, nil
}
