package source

import (
	"sync"
	"time"

	"github.com/arloliu/datasplit/types"
)

// Static implements a collection backed by a fixed list of records.
//
// Records with a nil GroupKey have no group key; records with a zero Timestamp
// have no timestamp.
type Static struct {
	mu      sync.RWMutex
	records []types.Record
}

var (
	_ types.GroupedCollection     = (*Static)(nil)
	_ types.TimestampedCollection = (*Static)(nil)
)

// NewStatic creates a new static collection.
//
// The records are copied, so later changes to the caller's slice have no effect.
//
// Parameters:
//   - records: Item descriptions in collection order
//
// Returns:
//   - *Static: Initialized static collection
//
// Example:
//
//	items := source.NewStatic([]types.Record{
//	    {GroupKey: "lig-1", Timestamp: day1},
//	    {GroupKey: "lig-1", Timestamp: day2},
//	    {GroupKey: "lig-2", Timestamp: day1},
//	})
//	res, err := splitter.Split(items)
func NewStatic(records []types.Record) *Static {
	s := &Static{records: make([]types.Record, len(records))}
	copy(s.records, records)

	return s
}

// Len returns the number of records.
func (s *Static) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// GroupKey returns the group key of record i.
func (s *Static) GroupKey(i int) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := s.records[i].GroupKey

	return key, key != nil
}

// Timestamp returns the timestamp of record i.
func (s *Static) Timestamp(i int) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts := s.records[i].Timestamp

	return ts, !ts.IsZero()
}

// Update replaces the record list.
//
// Splits already running keep reading whichever records they observe per
// accessor call, so callers should not update a collection while it is being split.
//
// Parameters:
//   - records: New list of records
func (s *Static) Update(records []types.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]types.Record, len(records))
	copy(s.records, records)
}
