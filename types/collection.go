package types

import "time"

// Collection is an ordered, index-addressed set of opaque items.
//
// The splitter never reads or mutates the items themselves. It only manipulates
// indices in the range [0, Len()).
//
// Optional capabilities are discovered through interface assertion:
//   - GroupedCollection: items can carry a group key
//   - TimestampedCollection: items can carry a timestamp
type Collection interface {
	// Len returns the number of items in the collection.
	Len() int
}

// GroupedCollection is a Collection whose items may carry a group key.
//
// Items sharing a key form one group and are never split across subsets.
type GroupedCollection interface {
	Collection

	// GroupKey returns the group key of item i.
	//
	// Parameters:
	//   - i: Item index in [0, Len())
	//
	// Returns:
	//   - any: Group key; must be a comparable value (used as a map key)
	//   - bool: false if the item has no key, making it a singleton group
	GroupKey(i int) (any, bool)
}

// TimestampedCollection is a Collection whose items may carry a timestamp.
type TimestampedCollection interface {
	Collection

	// Timestamp returns the timestamp of item i.
	//
	// Parameters:
	//   - i: Item index in [0, Len())
	//
	// Returns:
	//   - time.Time: Item timestamp
	//   - bool: false if the item has no timestamp
	Timestamp(i int) (time.Time, bool)
}

// Record is a ready-made item description for callers that do not want to
// implement the Collection interfaces themselves.
//
// See source.NewStatic for the Collection built from a slice of records.
type Record struct {
	// GroupKey is the group key of the item. Nil means the item has no key.
	GroupKey any `json:"groupKey,omitempty" yaml:"groupKey,omitempty"`

	// Timestamp is the item timestamp. The zero time means the item has no timestamp.
	Timestamp time.Time `json:"timestamp,omitzero" yaml:"timestamp,omitempty"`
}
