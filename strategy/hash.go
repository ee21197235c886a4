package strategy

import (
	"cmp"
	"slices"

	"github.com/arloliu/datasplit/internal/hash"
	"github.com/arloliu/datasplit/types"
)

// Hash orders groups by a seeded xxh3 hash of their key.
//
// Unlike Random, the relative order of two keys does not depend on which other
// groups are present, so a key tends to stay in the same split as the collection
// grows. Keyless groups hash their item index.
type Hash struct {
	seed uint64
}

var _ types.GroupOrderer = (*Hash)(nil)

// NewHash creates a new hash strategy.
//
// Parameters:
//   - seed: Hash seed (0 means unseeded xxh3)
//
// Returns:
//   - *Hash: Initialized hash strategy
func NewHash(seed uint64) *Hash {
	return &Hash{seed: seed}
}

// Seed returns the hash seed.
func (h *Hash) Seed() uint64 {
	return h.seed
}

type hashedGroup struct {
	group types.Group
	sum   uint64
}

// Order returns the groups sorted by hash, ties in original order.
//
// Parameters:
//   - groups: Groups to sort (not modified)
//   - _: Collection (unused)
//
// Returns:
//   - []types.Group: Sorted copy of groups
//   - error: Always nil
func (h *Hash) Order(groups []types.Group, _ types.Collection) ([]types.Group, error) {
	entries := make([]hashedGroup, len(groups))
	for i, g := range groups {
		entries[i] = hashedGroup{group: g, sum: hash.Group(g, h.seed)}
	}

	slices.SortStableFunc(entries, func(a, b hashedGroup) int {
		return cmp.Compare(a.sum, b.sum)
	})

	out := make([]types.Group, len(entries))
	for i, e := range entries {
		out[i] = e.group
	}

	return out, nil
}
