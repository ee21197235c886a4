// Package grouping partitions a collection's index range into groups.
package grouping

import (
	"fmt"
	"reflect"
	"time"

	"github.com/arloliu/datasplit/types"
)

// Index builds the ordered group list for a collection.
//
// When grouped is false every item becomes its own singleton group, in item order.
// When grouped is true items sharing a key are collected into one group; groups
// appear in first-seen order and members keep insertion order. Items without a
// key become singleton groups at the position they were encountered.
//
// Parameters:
//   - items: Collection to index
//   - grouped: Keep items with equal group keys together
//
// Returns:
//   - []types.Group: Groups partitioning [0, items.Len())
//   - error: types.ErrEmptyInput for an empty collection, types.ErrMissingGroupKey when
//     grouped is requested for a collection that cannot carry group keys or a key is
//     not comparable
func Index(items types.Collection, grouped bool) ([]types.Group, error) {
	n := items.Len()
	if n <= 0 {
		return nil, types.ErrEmptyInput
	}

	if !grouped {
		groups := make([]types.Group, n)
		for i := range n {
			groups[i] = types.Group{Members: []int{i}}
		}

		return groups, nil
	}

	keyed, ok := items.(types.GroupedCollection)
	if !ok {
		return nil, fmt.Errorf("%w: collection %T does not provide group keys", types.ErrMissingGroupKey, items)
	}

	groups := make([]types.Group, 0, n)
	slot := make(map[any]int)
	for i := range n {
		key, hasKey := keyed.GroupKey(i)
		if !hasKey {
			groups = append(groups, types.Group{Members: []int{i}})
			continue
		}

		if !reflect.ValueOf(key).Comparable() {
			return nil, fmt.Errorf("%w: group key of item %d has non-comparable type %T", types.ErrMissingGroupKey, i, key)
		}

		if idx, seen := slot[key]; seen {
			groups[idx].Members = append(groups[idx].Members, i)
			continue
		}

		slot[key] = len(groups)
		groups = append(groups, types.Group{Key: key, HasKey: true, Members: []int{i}})
	}

	return groups, nil
}

// CoalesceByTimestamp merges keyless singleton groups whose items share an
// identical timestamp into one group.
//
// A merged group is placed where its first item was encountered. Keyed groups and
// items without a timestamp are left untouched; Temporal ordering reports the
// latter. The merged group is labeled by its first member.
//
// Parameters:
//   - groups: Groups produced by Index
//   - items: Collection providing timestamps
//
// Returns:
//   - []types.Group: Groups with equal-timestamp singletons merged
func CoalesceByTimestamp(groups []types.Group, items types.TimestampedCollection) []types.Group {
	out := make([]types.Group, 0, len(groups))
	slot := make(map[time.Time]int)

	for _, g := range groups {
		if g.HasKey || len(g.Members) != 1 {
			out = append(out, g)
			continue
		}

		ts, ok := items.Timestamp(g.Members[0])
		if !ok {
			out = append(out, g)
			continue
		}

		// Normalize so that equal instants in different locations collapse.
		ts = ts.UTC()
		if idx, seen := slot[ts]; seen {
			out[idx].Members = append(out[idx].Members, g.Members[0])
			continue
		}

		slot[ts] = len(out)
		out = append(out, types.Group{Members: []int{g.Members[0]}})
	}

	return out
}
