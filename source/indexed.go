package source

import "github.com/arloliu/datasplit/types"

// Indexed is a collection of n items with neither group keys nor timestamps.
type Indexed int

var _ types.Collection = Indexed(0)

// NewIndexed creates a collection of n opaque items.
//
// Parameters:
//   - n: Number of items
//
// Returns:
//   - Indexed: Collection usable with ungrouped random or hash splits
func NewIndexed(n int) Indexed {
	return Indexed(n)
}

// Len returns the number of items.
func (n Indexed) Len() int {
	return int(n)
}
