package boscale

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullFactorialLevels(t *testing.T) {
	plan, err := FullFactorialLevels([]int{2, 3})
	require.NoError(t, err)

	// First column cycles fastest.
	assert.Equal(t, [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{0, 2},
		{1, 2},
	}, plan)
}

func TestFullFactorialNormalized(t *testing.T) {
	plan, err := FullFactorial([]int{3, 2})
	require.NoError(t, err)
	require.Len(t, plan, 6)

	// Column 0 spans three levels over [0, 1], column 1 two levels.
	assert.Equal(t, [][]float64{
		{0, 0},
		{0.5, 0},
		{1, 0},
		{0, 1},
		{0.5, 1},
		{1, 1},
	}, plan)
}

func TestFullFactorialBadLevels(t *testing.T) {
	_, err := FullFactorialLevels([]int{2, 0})
	assert.ErrorIs(t, err, ErrBadLevels)

	_, err = FullFactorial([]int{})
	assert.ErrorIs(t, err, ErrBadLevels)
}

func TestLevelMatrix(t *testing.T) {
	got := LevelMatrix([][]int{{0, 2}, {1, 0}})
	assert.Equal(t, [][]float64{{0, 2}, {1, 0}}, got)
}

func TestLatinHypercubeStratification(t *testing.T) {
	const (
		dim     = 3
		samples = 10
	)

	plan, err := LatinHypercube(dim, samples, 7)
	require.NoError(t, err)
	require.Len(t, plan, samples)

	for i := 0; i < dim; i++ {
		col := column(plan, i)
		sort.Float64s(col)

		// Exactly one point per equal-width stratum of [0, 1).
		for k, v := range col {
			assert.GreaterOrEqual(t, v, float64(k)/samples)
			assert.Less(t, v, float64(k+1)/samples)
		}
	}
}

func TestLatinHypercubeDeterministicSeed(t *testing.T) {
	a, err := LatinHypercube(2, 25, 42)
	require.NoError(t, err)

	b, err := LatinHypercube(2, 25, 42)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLatinHypercubeBadArgs(t *testing.T) {
	_, err := LatinHypercube(0, 10, 1)
	assert.ErrorIs(t, err, ErrBadSampleCount)

	_, err = LatinHypercube(2, 0, 1)
	assert.ErrorIs(t, err, ErrBadSampleCount)
}
