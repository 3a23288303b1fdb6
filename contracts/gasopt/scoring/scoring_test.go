package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	for _, tc := range []struct {
		original, optimized int
		pct, score          int
	}{
		{1000, 400, 60, 100},
		{1000, 500, 50, 100},
		{1000, 501, 49, 80},
		{1000, 700, 30, 80},
		{1000, 850, 15, 60},
		{1000, 950, 5, 40},
		{1000, 960, 4, 20},
		{1000, 999, 0, 20},
		{1000, 0, 100, 100},
		{5000, 2000, 60, 100},
		{3, 2, 33, 80},
		{7, 6, 14, 40},
	} {
		require.True(t, Valid(tc.original, tc.optimized))
		require.Equal(t, tc.pct, SavingsPercent(tc.original, tc.optimized), "%d -> %d", tc.original, tc.optimized)
		require.Equal(t, tc.score, Score(tc.original, tc.optimized), "%d -> %d", tc.original, tc.optimized)
	}
}

func TestScoreMonotonic(t *testing.T) {
	const original = 10_000

	allowed := map[int]struct{}{20: {}, 40: {}, 60: {}, 80: {}, 100: {}}

	prev := 0
	for optimized := original - 1; optimized >= 0; optimized-- {
		s := Score(original, optimized)
		require.Contains(t, allowed, s)
		require.GreaterOrEqual(t, s, prev, "optimized %d", optimized)
		prev = s
	}
}

func TestValid(t *testing.T) {
	require.True(t, Valid(1, 0))
	require.False(t, Valid(100, 100))
	require.False(t, Valid(100, 101))
	require.False(t, Valid(0, 0))
	require.False(t, Valid(100, -1))
}
