package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/datasplit/types"
)

// RequireValidSplit fails the test unless res is a partition of [0, n): every
// index appears in exactly one of train, validation, test or overflow.
//
// Parameters:
//   - t: The testing.T instance
//   - res: Split result to check
//   - n: Collection length the result was produced from
//
// Example:
//
//	res, err := splitter.Split(items)
//	require.NoError(t, err)
//	splittest.RequireValidSplit(t, res, items.Len())
func RequireValidSplit(t *testing.T, res types.Result, n int) {
	t.Helper()

	seen := make([]bool, n)
	for _, name := range []types.SplitName{types.SplitTrain, types.SplitValidation, types.SplitTest, types.SplitOverflow} {
		for _, idx := range res.Indices(name) {
			require.GreaterOrEqual(t, idx, 0, "%s holds negative index", name)
			require.Less(t, idx, n, "%s holds out-of-range index %d", name, idx)
			require.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true
		}
	}

	require.Equal(t, n, res.Sizes().Total(), "split does not cover every item")
}
