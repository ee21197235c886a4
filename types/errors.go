package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the datasplit library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%s: %w", msg, err).
var (
	// ErrInvalidConfiguration is returned when split fractions are negative, sum above one,
	// or do not sum to one while enforcement is requested. Raised at construction only.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMissingGroupKey is returned when grouping is requested for a collection that
	// cannot carry group keys.
	ErrMissingGroupKey = errors.New("missing group key")

	// ErrMissingTimestamp is returned when temporal ordering is requested and an item
	// has no timestamp.
	ErrMissingTimestamp = errors.New("missing timestamp")

	// ErrEmptyInput is returned when the collection holds zero items.
	ErrEmptyInput = errors.New("empty input")

	// ErrNilCollection is returned when Split is called with a nil collection.
	ErrNilCollection = errors.New("collection is required")
)

// GroupError reports a failure tied to one group, so callers can tell which group to fix.
//
// Use errors.As to retrieve it; Unwrap exposes the sentinel (e.g. ErrMissingTimestamp).
type GroupError struct {
	// Group is the offending group.
	Group Group

	// Item is the member index that triggered the error, or -1 if not item specific.
	Item int

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Item >= 0 {
		return fmt.Sprintf("group %s: item %d: %v", e.Group.Label(), e.Item, e.Err)
	}

	return fmt.Sprintf("group %s: %v", e.Group.Label(), e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *GroupError) Unwrap() error {
	return e.Err
}
