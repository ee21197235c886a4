package types

import (
	"fmt"
	"strconv"
)

// Group is a non-empty ordered set of item indices that must stay in the same split.
//
// Members are kept in first-encountered order. Groups produced for one collection
// partition its index range exactly.
type Group struct {
	// Key is the shared group key. Nil for keyless singleton groups.
	Key any

	// HasKey reports whether Key was supplied by the collection.
	HasKey bool

	// Members holds the item indices of the group.
	Members []int
}

// Size returns the number of items in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// Label returns a human-readable identifier for the group.
//
// Keyed groups use the formatted key; keyless groups use "#" followed by
// their first member index.
//
// Returns:
//   - string: Group label suitable for logs and error messages
func (g Group) Label() string {
	if g.HasKey {
		return fmt.Sprint(g.Key)
	}
	if len(g.Members) == 0 {
		return "#?"
	}

	return "#" + strconv.Itoa(g.Members[0])
}

// ItemCount returns the total number of item indices across groups.
func ItemCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Members)
	}

	return n
}
