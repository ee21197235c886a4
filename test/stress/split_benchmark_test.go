package stress_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/datasplit"
	"github.com/arloliu/datasplit/source"
	"github.com/arloliu/datasplit/test/testutil"
)

func BenchmarkSplit(b *testing.B) {
	sizes := []struct {
		items, groups int
	}{
		{1_000, 100},
		{100_000, 5_000},
		{1_000_000, 50_000},
	}

	for _, strat := range []datasplit.Strategy{datasplit.StrategyRandom, datasplit.StrategyTemporal, datasplit.StrategyHash} {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%d-items/%d-groups", strat, size.items, size.groups), func(b *testing.B) {
				items := source.NewStatic(testutil.RandomRecords(1, size.items, size.groups, 0.05))
				cfg := datasplit.Config{Grouped: true, Strategy: strat, Seed: datasplit.Ptr(uint64(1))}
				splitter, err := datasplit.NewSplitter(&cfg)
				require.NoError(b, err)

				b.ReportAllocs()
				b.ResetTimer()
				for range b.N {
					if _, err := splitter.Split(items); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// TestSplit_LargeCollection splits a million items and bounds the heap growth.
func TestSplit_LargeCollection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping large collection test in short mode")
	}

	const n = 1_000_000
	items := source.NewIndexed(n)

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	res, err := datasplit.Split(items, datasplit.TestConfig())
	require.NoError(t, err)
	testutil.AssertCoverage(t, res, n)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	// Groups, ordering and the three index slices dominate; allow generous headroom.
	grown := int64(after.TotalAlloc - before.TotalAlloc)
	t.Logf("allocated %d MiB for %d items", grown>>20, n)
	require.Less(t, grown, int64(1<<30))
}

// TestSplit_ManyTinyGroups checks group atomicity when groups outnumber items per split.
func TestSplit_ManyTinyGroups(t *testing.T) {
	records := testutil.UniformGroups(10_000, 1)
	cfg := datasplit.TestConfig()
	cfg.Grouped = true

	res, err := datasplit.Split(source.NewStatic(records), cfg)
	require.NoError(t, err)

	require.Len(t, res.Train, 8_000)
	require.Len(t, res.Validation, 1_000)
	require.Len(t, res.Test, 1_000)
}
