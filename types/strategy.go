package types

// Strategy selects how groups are ordered before they are assigned to splits.
//
// The set of strategies is closed: every switch over Strategy in this module
// handles each constant explicitly, and unknown values are rejected when the
// configuration is validated.
type Strategy string

const (
	// StrategyRandom shuffles groups uniformly with a seeded generator.
	StrategyRandom Strategy = "random"

	// StrategyTemporal sorts groups ascending by their earliest member timestamp.
	StrategyTemporal Strategy = "temporal"

	// StrategyHash sorts groups by a seeded hash of their key, so a given key keeps
	// its relative position as the collection grows.
	StrategyHash Strategy = "hash"
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyRandom, StrategyTemporal, StrategyHash:
		return true
	default:
		return false
	}
}

// Seeded reports whether the strategy consumes a seed.
func (s Strategy) Seeded() bool {
	switch s {
	case StrategyRandom, StrategyHash:
		return true
	case StrategyTemporal:
		return false
	default:
		return false
	}
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// GroupOrderer orders groups before they are assigned to splits.
//
// Built-in implementations live in the strategy package:
//   - Random: Seeded uniform permutation
//   - Temporal: Ascending by earliest member timestamp
//   - Hash: Ascending by seeded hash of the group key
//
// Implementations should:
//   - Return a new slice and leave the input slice untouched
//   - Neither drop, duplicate nor mutate groups
//   - Be deterministic for a fixed configuration and input
//   - Hold no shared mutable state, so concurrent calls cannot interfere
type GroupOrderer interface {
	// Order returns the groups in assignment order.
	//
	// Parameters:
	//   - groups: Groups in first-encountered order
	//   - items: Collection the groups were built from (for timestamps or keys)
	//
	// Returns:
	//   - []Group: Reordered groups
	//   - error: Ordering error (e.g., ErrMissingTimestamp)
	Order(groups []Group, items Collection) ([]Group, error)
}
