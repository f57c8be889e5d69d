package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// =============================================================================
// Linspace Tests
// =============================================================================

func TestLinspace_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		n    int
		want []float64
	}{
		{"unit interval two points", 0, 1, 2, []float64{0, 1}},
		{"symmetric three points", -5, 5, 3, []float64{-5, 0, 5}},
		{"degenerate interval", 2, 2, 5, []float64{2, 2, 2, 2, 2}},
		{"descending", 1, -1, 5, []float64{1, 0.5, 0, -0.5, -1}},
		{"quarters", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Linspace(tt.a, tt.b, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinspace_SingleSample(t *testing.T) {
	got, err := Linspace(3.5, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5}, got)
}

func TestLinspace_ZeroSamples(t *testing.T) {
	got, err := Linspace(0, 1, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLinspace_NegativeCount(t *testing.T) {
	got, err := Linspace(0, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, got)
}

func TestLinspace_Properties(t *testing.T) {
	intervals := []struct {
		a, b float64
		n    int
	}{
		{-5, 5, 1000},
		{0, 1, 7},
		{1e-3, 1e3, 333},
		{10, -10, 41},
		{-0.1, 0.3, 3},
		{math.Pi, math.E, 100},
	}

	for _, iv := range intervals {
		got, err := Linspace(iv.a, iv.b, iv.n)
		require.NoError(t, err)
		require.Len(t, got, iv.n)

		assert.Equal(t, iv.a, got[0])
		assert.Equal(t, iv.b, got[iv.n-1])

		step, err := Step(iv.a, iv.b, iv.n)
		require.NoError(t, err)

		tol := 1e-9 * math.Max(math.Abs(iv.a), math.Abs(iv.b))
		for i := 1; i < len(got); i++ {
			if iv.a <= iv.b {
				assert.GreaterOrEqual(t, got[i], got[i-1], "sample %d of %v", i, iv)
			} else {
				assert.LessOrEqual(t, got[i], got[i-1], "sample %d of %v", i, iv)
			}
			diff := got[i] - got[i-1]
			assert.True(t, scalar.EqualWithinAbsOrRel(diff, step, tol, 1e-9),
				"step %d of %v: got %v, want %v", i, iv, diff, step)
		}
	}
}

func TestLinspace_Deterministic(t *testing.T) {
	first, err := Linspace(-1.25, 7.5, 257)
	require.NoError(t, err)
	second, err := Linspace(-1.25, 7.5, 257)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLinspace_FreshSlice(t *testing.T) {
	first, err := Linspace(0, 1, 3)
	require.NoError(t, err)
	first[1] = 42

	second, err := Linspace(0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, second[1])
}

func TestLinspace_InfiniteEndpoint(t *testing.T) {
	got, err := Linspace(0, math.Inf(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got[0])
	assert.True(t, math.IsInf(got[2], 1))
}

// =============================================================================
// Step Tests
// =============================================================================

func TestStep(t *testing.T) {
	step, err := Step(-5, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, step)

	step, err = Step(1, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, -0.25, step)
}

func TestStep_TooFewSamples(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		_, err := Step(0, 1, n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}
