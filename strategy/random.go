package strategy

import (
	"math/rand/v2"
	"slices"

	"github.com/arloliu/datasplit/types"
)

// pcgIncrement derives the second PCG word from the seed.
const pcgIncrement = 0x9e3779b97f4a7c15

// Random orders groups by a uniformly random permutation.
type Random struct {
	seed uint64
}

var _ types.GroupOrderer = (*Random)(nil)

// NewRandom creates a new random strategy.
//
// The permutation is drawn from a PCG generator built per call from the seed, so
// two calls with the same seed and the same groups return the same order on any
// host, and concurrent callers never share generator state.
//
// Parameters:
//   - seed: Seed for the permutation
//
// Returns:
//   - *Random: Initialized random strategy
//
// Example:
//
//	orderer := strategy.NewRandom(42)
//	ordered, err := orderer.Order(groups, items)
func NewRandom(seed uint64) *Random {
	return &Random{seed: seed}
}

// Seed returns the seed the strategy permutes with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// Order returns the groups in a seeded random order.
//
// Parameters:
//   - groups: Groups to permute (not modified)
//   - _: Collection (unused)
//
// Returns:
//   - []types.Group: Permuted copy of groups
//   - error: Always nil
func (r *Random) Order(groups []types.Group, _ types.Collection) ([]types.Group, error) {
	out := slices.Clone(groups)
	rng := newRNG(r.seed)

	// Fisher-Yates, walking down from the last position.
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Uint64N(uint64(i + 1))) //nolint:gosec
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// newRNG returns a PCG-backed generator for seed.
//
//nolint:gosec
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgIncrement))
}

// DrawSeed returns a seed from the process-level generator.
//
// Splits ordered with a drawn seed are reproducible only if the caller records it.
func DrawSeed() uint64 {
	return rand.Uint64() //nolint:gosec
}
