package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/datasplit/types"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_ = NewPrometheus(reg, "")

		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("records splits", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordSplit("random", types.SplitSizes{Train: 8, Validation: 1, Test: 1}, 10, 0.002)
		p.RecordSplit("random", types.SplitSizes{Train: 80, Validation: 10, Test: 5, Overflow: 5}, 100, 0.004)
		p.RecordSplit("temporal", types.SplitSizes{Train: 3}, 1, 0.001)

		require.InDelta(t, 2, testutil.ToFloat64(p.splits.WithLabelValues("random")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.splits.WithLabelValues("temporal")), 0)
		require.InDelta(t, 91, testutil.ToFloat64(p.items.WithLabelValues("train")), 0)
		require.InDelta(t, 5, testutil.ToFloat64(p.items.WithLabelValues("overflow")), 0)
		require.Equal(t, 2, testutil.CollectAndCount(p.duration))
	})

	t.Run("records errors and unallocated fraction", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordSplitError("missing_timestamp")
		p.RecordSplitError("missing_timestamp")
		p.RecordUnallocated(0.05)

		require.InDelta(t, 2, testutil.ToFloat64(p.splitErrors.WithLabelValues("missing_timestamp")), 0)
		require.InDelta(t, 0.05, testutil.ToFloat64(p.unallocated), 1e-12)
	})

	t.Run("uses namespace in metric names", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "ml")

		p.RecordSplitError("other")

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "ml_splitter_split_errors_total")
	})
}
