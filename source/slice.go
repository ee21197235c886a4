package source

import (
	"time"

	"github.com/arloliu/datasplit/types"
)

// Slice adapts a slice of caller-defined items to a collection using accessor functions.
//
// A nil accessor means the capability is absent: the items behave as if none of
// them carried a key (or timestamp).
type Slice[T any] struct {
	items  []T
	keyFn  func(T) (any, bool)
	timeFn func(T) (time.Time, bool)
}

var (
	_ types.GroupedCollection     = (*Slice[int])(nil)
	_ types.TimestampedCollection = (*Slice[int])(nil)
)

// NewSlice creates a collection over items.
//
// The slice is not copied; the splitter only reads it through the accessors.
//
// Parameters:
//   - items: Caller items in collection order
//   - keyFn: Group key accessor (may be nil)
//   - timeFn: Timestamp accessor (may be nil)
//
// Returns:
//   - *Slice[T]: Collection over items
//
// Example:
//
//	type complex struct{ Ligand string; Created time.Time }
//	items := source.NewSlice(complexes,
//	    func(c complex) (any, bool) { return c.Ligand, c.Ligand != "" },
//	    func(c complex) (time.Time, bool) { return c.Created, !c.Created.IsZero() },
//	)
func NewSlice[T any](items []T, keyFn func(T) (any, bool), timeFn func(T) (time.Time, bool)) *Slice[T] {
	return &Slice[T]{items: items, keyFn: keyFn, timeFn: timeFn}
}

// Len returns the number of items.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// GroupKey returns the group key of item i.
func (s *Slice[T]) GroupKey(i int) (any, bool) {
	if s.keyFn == nil {
		return nil, false
	}

	return s.keyFn(s.items[i])
}

// Timestamp returns the timestamp of item i.
func (s *Slice[T]) Timestamp(i int) (time.Time, bool) {
	if s.timeFn == nil {
		return time.Time{}, false
	}

	return s.timeFn(s.items[i])
}
