package logger

import (
	"testing"

	"github.com/arloliu/datasplit/types"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	var _ types.Logger = logger

	require.NotPanics(t, func() {
		logger.Debug("split sizes", "train", 8)
		logger.Info("random split seed", "seed", uint64(42))
		logger.Warn("split fractions do not sum to one", "sum", 0.95)
		logger.Error("split failed", "reason", "empty_input")
		logger.Fatal("message", "k1", "v1") // Should NOT exit
	})
}

func TestNewNop(t *testing.T) {
	logger := NewNop()

	require.NotNil(t, logger)
	require.IsType(t, &NopLogger{}, logger)
}

func TestTestLogger_Records(t *testing.T) {
	log := NewTest(t)

	log.Info("random split seed", "seed", uint64(7), "supplied", false)
	log.Warn("split fractions do not sum to one", "sum", 0.9)
	log.Debug("odd", "dangling")

	require.True(t, log.Has("INFO", "random split seed"))
	require.False(t, log.Has("ERROR", "random split seed"))

	entry, ok := log.Find("INFO", "random split seed")
	require.True(t, ok)
	require.Equal(t, uint64(7), entry.Fields["seed"])
	require.Equal(t, false, entry.Fields["supplied"])
	require.Len(t, log.Entries(), 3)
}

func TestFormatKeyValues(t *testing.T) {
	require.Equal(t, "", formatKeyValues(nil))
	require.Equal(t, "a=1 b=<missing> ", formatKeyValues([]any{"a", 1, "b"}))
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("benchmark message", "key1", "value1", "key2", 42)
	}
}
