package coinchange

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Jozeph555/coincalc/internal/errors"
)

func TestSolveGreedy(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   Breakdown
	}{
		{name: "zero amount yields empty breakdown", amount: 0, want: Breakdown{}},
		{name: "single smallest coin", amount: 1, want: Breakdown{1: 1}},
		{name: "two plus one", amount: 3, want: Breakdown{2: 1, 1: 1}},
		{name: "two twos", amount: 4, want: Breakdown{2: 2}},
		{name: "mixed denominations", amount: 113, want: Breakdown{50: 2, 10: 1, 2: 1, 1: 1}},
		{name: "all denominations but five", amount: 99, want: Breakdown{50: 1, 25: 1, 10: 2, 2: 2}},
		{name: "exact largest coin", amount: 50, want: Breakdown{50: 1}},
		{name: "large amount", amount: 150000, want: Breakdown{50: 3000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SolveGreedy(tc.amount)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s, want %s", got, tc.want)
			assert.Equal(t, tc.amount, got.Value(), "breakdown must sum to the amount")
		})
	}
}

func TestSolveGreedy_NegativeAmount(t *testing.T) {
	_, err := SolveGreedy(-1)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err), "want ValidationError, got %T", err)
}

func TestGreedySolver_Solve(t *testing.T) {
	solver := GreedySolver{}
	assert.Equal(t, "Greedy", solver.Name())

	t.Run("reports completion", func(t *testing.T) {
		var last float64
		got, err := solver.Solve(context.Background(), 113, func(f float64) { last = f })
		require.NoError(t, err)
		assert.Equal(t, 113, got.Value())
		assert.Equal(t, 1.0, last)
	})

	t.Run("nil progress func is valid", func(t *testing.T) {
		_, err := solver.Solve(context.Background(), 42, nil)
		require.NoError(t, err)
	})

	t.Run("canceled context is honored", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := solver.Solve(ctx, 113, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
