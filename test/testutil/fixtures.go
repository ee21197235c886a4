package testutil

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/arloliu/datasplit/types"
)

// FixtureEpoch is the first timestamp handed out by the fixture generators.
var FixtureEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// UniformGroups returns records for groups of equal size, laid out group by group.
//
// Group keys are "g0", "g1", ...; every member of group i is dated FixtureEpoch + i days.
//
// Parameters:
//   - groups: number of groups
//   - size: members per group
//
// Returns:
//   - []types.Record: groups*size records
func UniformGroups(groups, size int) []types.Record {
	records := make([]types.Record, 0, groups*size)
	for g := range groups {
		for range size {
			records = append(records, types.Record{
				GroupKey:  fmt.Sprintf("g%d", g),
				Timestamp: FixtureEpoch.AddDate(0, 0, g),
			})
		}
	}

	return records
}

// RandomRecords returns n records with shuffled group membership and timestamps.
//
// Roughly keylessRatio of the records carry no group key. Keys are drawn from
// groupCount distinct values and every record carries a timestamp within a year
// of FixtureEpoch.
//
// Parameters:
//   - seed: generator seed
//   - n: number of records
//   - groupCount: number of distinct keys
//   - keylessRatio: fraction of records without a key, in [0, 1]
//
// Returns:
//   - []types.Record: generated records
func RandomRecords(seed uint64, n, groupCount int, keylessRatio float64) []types.Record {
	rng := rand.New(rand.NewPCG(seed, seed+1)) //nolint:gosec
	records := make([]types.Record, n)
	for i := range records {
		records[i].Timestamp = FixtureEpoch.Add(time.Duration(rng.Int64N(int64(365 * 24 * time.Hour))))
		if rng.Float64() < keylessRatio || groupCount <= 0 {
			continue
		}
		records[i].GroupKey = fmt.Sprintf("k%d", rng.IntN(groupCount))
	}

	return records
}

// GroupStarts returns, for every record index, the earliest timestamp among the
// records sharing its key. Keyless records map to their own timestamp.
//
// Parameters:
//   - records: fixture records
//
// Returns:
//   - func(int) time.Time: lookup suitable for AssertTemporalOrder
func GroupStarts(records []types.Record) func(int) time.Time {
	earliest := make(map[any]time.Time)
	for _, r := range records {
		if r.GroupKey == nil {
			continue
		}
		if cur, ok := earliest[r.GroupKey]; !ok || r.Timestamp.Before(cur) {
			earliest[r.GroupKey] = r.Timestamp
		}
	}

	return func(i int) time.Time {
		if key := records[i].GroupKey; key != nil {
			return earliest[key]
		}

		return records[i].Timestamp
	}
}
