package datasplit

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/datasplit/internal/grouping"
	"github.com/arloliu/datasplit/internal/logger"
	"github.com/arloliu/datasplit/source"
	"github.com/arloliu/datasplit/test/testutil"
)

func TestNewSplitter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewSplitter(nil)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("fractions above one", func(t *testing.T) {
		cfg := Config{TrainFrac: 0.5, ValFrac: 0.5, TestFrac: 0.5}
		_, err := NewSplitter(&cfg)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("does not modify caller config", func(t *testing.T) {
		cfg := Config{Seed: Ptr(uint64(3))}
		s, err := NewSplitter(&cfg)
		require.NoError(t, err)

		require.Empty(t, cfg.Strategy)
		require.Nil(t, cfg.EnforceSumToOne)

		*cfg.Seed = 99
		require.Equal(t, uint64(3), *s.Config().Seed)
		require.Equal(t, StrategyRandom, s.Config().Strategy)
	})

	t.Run("all-zero fractions take the defaults", func(t *testing.T) {
		cfg := Config{EnforceSumToOne: Ptr(true)}
		s, err := NewSplitter(&cfg)
		require.NoError(t, err)

		got := s.Config()
		require.Equal(t, 0.8, got.TrainFrac)
		require.Equal(t, 0.1, got.ValFrac)
		require.Equal(t, 0.1, got.TestFrac)
	})

	t.Run("partially zero fractions are validated as given", func(t *testing.T) {
		cfg := Config{TrainFrac: 0.5, EnforceSumToOne: Ptr(true)}
		_, err := NewSplitter(&cfg)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("logs shortfall at construction", func(t *testing.T) {
		log := logger.NewTest(t)
		cfg := Config{TrainFrac: 0.8, ValFrac: 0.1, TestFrac: 0.05, EnforceSumToOne: Ptr(false)}
		_, err := NewSplitter(&cfg, WithLogger(log))
		require.NoError(t, err)

		var warned bool
		for _, e := range log.Entries() {
			if e.Level == "WARN" && e.Fields["code"] == DiagnosticUnallocated {
				warned = true
			}
		}
		require.True(t, warned)
	})
}

func TestSplit_Scenarios(t *testing.T) {
	t.Run("ungrouped random 80/10/10", func(t *testing.T) {
		cfg := TestConfig()
		res, err := Split(source.NewIndexed(10), cfg)
		require.NoError(t, err)

		require.Len(t, res.Train, 8)
		require.Len(t, res.Validation, 1)
		require.Len(t, res.Test, 1)
		require.Empty(t, res.Overflow)
		require.Equal(t, uint64(42), res.Seed)
		require.True(t, res.SeedSupplied)
		testutil.AssertCoverage(t, res, 10)

		again, err := Split(source.NewIndexed(10), cfg)
		require.NoError(t, err)
		require.Equal(t, res, again)
	})

	t.Run("grouped random 60/20/20", func(t *testing.T) {
		records := testutil.UniformGroups(5, 3)
		items := source.NewStatic(records)
		cfg := Config{TrainFrac: 0.6, ValFrac: 0.2, TestFrac: 0.2, Grouped: true, Seed: Ptr(uint64(42))}

		res, err := Split(items, cfg)
		require.NoError(t, err)

		require.Len(t, res.Train, 9)
		require.Len(t, res.Validation, 3)
		require.Len(t, res.Test, 3)
		require.Equal(t, 5, res.GroupCount)

		groups, err := grouping.Index(items, true)
		require.NoError(t, err)
		testutil.AssertCoverage(t, res, 15)
		testutil.AssertGroupAtomic(t, res, groups)
	})

	t.Run("fractions summing above one are rejected", func(t *testing.T) {
		_, err := Split(source.NewIndexed(10), Config{TrainFrac: 0.5, ValFrac: 0.5, TestFrac: 0.5})
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("relaxed shortfall goes to overflow", func(t *testing.T) {
		cfg := Config{
			TrainFrac:       0.8,
			ValFrac:         0.1,
			TestFrac:        0.05,
			EnforceSumToOne: Ptr(false),
			Seed:            Ptr(uint64(1)),
		}
		res, err := Split(source.NewIndexed(100), cfg)
		require.NoError(t, err)

		require.Len(t, res.Train, 80)
		require.Len(t, res.Validation, 10)
		require.Len(t, res.Test, 5)
		require.Len(t, res.Overflow, 5)
		testutil.AssertCoverage(t, res, 100)

		require.Len(t, res.Diagnostics, 1)
		require.Equal(t, DiagnosticUnallocated, res.Diagnostics[0].Code)
		require.InDelta(t, 0.05, res.Diagnostics[0].UnallocatedFrac, 1e-9)
	})

	t.Run("temporal with a group missing timestamps", func(t *testing.T) {
		day := testutil.FixtureEpoch
		items := source.NewStatic([]Record{
			{GroupKey: "a", Timestamp: day},
			{GroupKey: "b"},
			{GroupKey: "a", Timestamp: day.Add(time.Hour)},
			{GroupKey: "c", Timestamp: day.AddDate(0, 0, 1)},
		})
		cfg := Config{Grouped: true, Strategy: StrategyTemporal}

		_, err := Split(items, cfg)
		require.ErrorIs(t, err, ErrMissingTimestamp)

		var groupErr *GroupError
		require.True(t, errors.As(err, &groupErr))
		require.Equal(t, "b", groupErr.Group.Key)
		require.Equal(t, 1, groupErr.Item)
	})

	t.Run("single item all in train", func(t *testing.T) {
		res, err := Split(source.NewIndexed(1), Config{TrainFrac: 1, Seed: Ptr(uint64(5))})
		require.NoError(t, err)

		require.Equal(t, []int{0}, res.Train)
		require.Empty(t, res.Validation)
		require.Empty(t, res.Test)
	})
}

func TestSplitter_Errors(t *testing.T) {
	m := NewMemoryMetrics()
	cfg := TestConfig()
	cfg.Grouped = true
	s, err := NewSplitter(&cfg, WithMetrics(m))
	require.NoError(t, err)

	t.Run("nil collection", func(t *testing.T) {
		_, err := s.Split(nil)
		require.ErrorIs(t, err, ErrNilCollection)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := s.Split(source.NewIndexed(0))
		require.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("grouped split without group keys", func(t *testing.T) {
		_, err := s.Split(source.NewIndexed(4))
		require.ErrorIs(t, err, ErrMissingGroupKey)
	})

	t.Run("grouped split with non-comparable keys", func(t *testing.T) {
		items := source.NewSlice([][]byte{[]byte("a"), []byte("b")}, func(k []byte) (any, bool) { return k, true }, nil)

		require.NotPanics(t, func() {
			_, err := s.Split(items)
			require.ErrorIs(t, err, ErrMissingGroupKey)
		})
	})

	t.Run("temporal split without timestamps", func(t *testing.T) {
		tcfg := Config{Strategy: StrategyTemporal}
		_, err := Split(source.NewIndexed(4), tcfg)
		require.ErrorIs(t, err, ErrMissingTimestamp)
	})

	require.Equal(t, int64(1), m.Errors("nil_collection"))
	require.Equal(t, int64(1), m.Errors("empty_input"))
	require.Equal(t, int64(2), m.Errors("missing_group_key"))
	require.Zero(t, m.TotalSplits())
}

func TestSplitter_UnseededRandom(t *testing.T) {
	log := logger.NewTest(t)
	cfg := DefaultConfig()
	s, err := NewSplitter(&cfg, WithLogger(log))
	require.NoError(t, err)

	res, err := s.Split(source.NewIndexed(50))
	require.NoError(t, err)
	require.False(t, res.SeedSupplied)

	entry, ok := log.Find("INFO", "splitting with random seed")
	require.True(t, ok)
	require.Equal(t, res.Seed, entry.Fields["seed"])

	// The reported seed reproduces the split.
	cfg.Seed = Ptr(res.Seed)
	replay, err := Split(source.NewIndexed(50), cfg)
	require.NoError(t, err)
	require.Equal(t, res.Train, replay.Train)
	require.Equal(t, res.Validation, replay.Validation)
	require.Equal(t, res.Test, replay.Test)
}

func TestSplitter_Temporal(t *testing.T) {
	records := testutil.RandomRecords(11, 200, 30, 0.2)
	items := source.NewStatic(records)
	cfg := Config{Grouped: true, Strategy: StrategyTemporal}

	res, err := Split(items, cfg)
	require.NoError(t, err)
	require.Equal(t, StrategyTemporal, res.Strategy)

	groups, err := grouping.Index(items, true)
	require.NoError(t, err)
	testutil.AssertCoverage(t, res, len(records))
	testutil.AssertGroupAtomic(t, res, groups)
	testutil.AssertTemporalOrder(t, res, testutil.GroupStarts(records))
}

func TestSplitter_CoalesceTimestamps(t *testing.T) {
	day := testutil.FixtureEpoch
	records := []Record{
		{Timestamp: day},
		{Timestamp: day.AddDate(0, 0, 1)},
		{Timestamp: day},
		{Timestamp: day.AddDate(0, 0, 2)},
		{Timestamp: day.AddDate(0, 0, 1)},
	}
	cfg := Config{Strategy: StrategyTemporal, CoalesceTimestamps: true, TrainFrac: 0.4, ValFrac: 0.4, TestFrac: 0.2}

	res, err := Split(source.NewStatic(records), cfg)
	require.NoError(t, err)

	require.Equal(t, 3, res.GroupCount)
	require.ElementsMatch(t, []int{0, 2}, res.Train)
	require.ElementsMatch(t, []int{1, 4}, res.Validation)
	require.Equal(t, []int{3}, res.Test)
}

func TestSplitter_Hash(t *testing.T) {
	records := testutil.UniformGroups(40, 2)
	cfg := Config{Grouped: true, Strategy: StrategyHash, Seed: Ptr(uint64(8))}

	first, err := Split(source.NewStatic(records), cfg)
	require.NoError(t, err)
	second, err := Split(source.NewStatic(records), cfg)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, StrategyHash, first.Strategy)
	require.True(t, first.SeedSupplied)
	testutil.AssertCoverage(t, first, len(records))
}

type reverseOrderer struct{}

func (reverseOrderer) Order(groups []Group, _ Collection) ([]Group, error) {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}

	return out, nil
}

func TestSplitter_CustomStrategy(t *testing.T) {
	m := NewMemoryMetrics()
	cfg := Config{TrainFrac: 0.5, ValFrac: 0.25, TestFrac: 0.25}
	s, err := NewSplitter(&cfg, WithStrategy(reverseOrderer{}), WithMetrics(m))
	require.NoError(t, err)

	res, err := s.Split(source.NewIndexed(4))
	require.NoError(t, err)

	require.Equal(t, []int{3, 2}, res.Train)
	require.Equal(t, []int{1}, res.Validation)
	require.Equal(t, []int{0}, res.Test)
	require.Equal(t, Strategy("custom"), res.Strategy)
	require.Equal(t, int64(1), m.Splits("custom"))
	require.Equal(t, int64(2), m.Items(SplitTrain))
}

func TestSplitter_Concurrent(t *testing.T) {
	cfg := TestConfig()
	cfg.Grouped = true
	s, err := NewSplitter(&cfg)
	require.NoError(t, err)

	items := source.NewStatic(testutil.RandomRecords(3, 500, 60, 0.1))
	want, err := s.Split(items)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = s.Split(items)
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
