package strategy

import (
	"testing"

	"github.com/arloliu/datasplit/types"
	"github.com/stretchr/testify/require"
)

func keyedGroups(keys ...string) []types.Group {
	groups := make([]types.Group, len(keys))
	for i, k := range keys {
		groups[i] = types.Group{Key: k, HasKey: true, Members: []int{i}}
	}

	return groups
}

func keysOf(groups []types.Group) []any {
	out := make([]any, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}

	return out
}

func TestHash_Order(t *testing.T) {
	t.Run("is deterministic for a seed", func(t *testing.T) {
		groups := keyedGroups("a", "b", "c", "d", "e", "f")

		a, err := NewHash(5).Order(groups, nil)
		require.NoError(t, err)
		b, err := NewHash(5).Order(groups, nil)
		require.NoError(t, err)

		require.Equal(t, keysOf(a), keysOf(b))
		require.ElementsMatch(t, keysOf(groups), keysOf(a))
	})

	t.Run("relative order is independent of other groups", func(t *testing.T) {
		small, err := NewHash(5).Order(keyedGroups("a", "b", "c"), nil)
		require.NoError(t, err)
		large, err := NewHash(5).Order(keyedGroups("x", "c", "y", "a", "z", "b"), nil)
		require.NoError(t, err)

		var filtered []any
		for _, k := range keysOf(large) {
			if k == "a" || k == "b" || k == "c" {
				filtered = append(filtered, k)
			}
		}

		require.Equal(t, keysOf(small), filtered)
	})

	t.Run("keyless groups are ordered by index hash", func(t *testing.T) {
		ordered, err := NewHash(0).Order(singletons(10), nil)

		require.NoError(t, err)
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, firstMembers(ordered))
	})

	t.Run("exposes its seed", func(t *testing.T) {
		require.Equal(t, uint64(8), NewHash(8).Seed())
	})
}
