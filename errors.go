package datasplit

import "github.com/arloliu/datasplit/types"

// Sentinel errors returned by the Splitter. Match them with errors.Is.
var (
	// ErrInvalidConfiguration is returned by NewSplitter when fractions are negative,
	// sum above one, or do not sum to one while enforcement is requested, and when
	// the strategy is unknown. It is never returned by Split.
	ErrInvalidConfiguration = types.ErrInvalidConfiguration

	// ErrMissingGroupKey is returned when grouping is requested for a collection
	// that does not implement GroupedCollection.
	ErrMissingGroupKey = types.ErrMissingGroupKey

	// ErrMissingTimestamp is returned when the temporal strategy meets an item without
	// a timestamp. The error wraps a *GroupError naming the offending group.
	ErrMissingTimestamp = types.ErrMissingTimestamp

	// ErrEmptyInput is returned when the collection holds zero items.
	ErrEmptyInput = types.ErrEmptyInput

	// ErrNilCollection is returned when Split is called with a nil collection.
	ErrNilCollection = types.ErrNilCollection
)
