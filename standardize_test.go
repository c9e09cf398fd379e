package boscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnStats(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}

	mean, std, err := ColumnStats(X)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, mean[0], 1e-12)
	assert.InDelta(t, 20.0, mean[1], 1e-12)

	// Population standard deviation: divide by n, not n-1.
	assert.InDelta(t, math.Sqrt(2.0/3.0), std[0], 1e-12)
	assert.InDelta(t, 10*math.Sqrt(2.0/3.0), std[1], 1e-12)
}

func TestColumnStatsSingleRow(t *testing.T) {
	mean, std, err := ColumnStats([][]float64{{4, 7}})
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 7}, mean)
	assert.Equal(t, []float64{0, 0}, std)
}

func TestStandardizeExample(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}

	Xs, mean, std, err := Standardize(X, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, mean[0], 1e-12)

	// Standardized data has zero mean.
	var sum float64
	for _, row := range Xs {
		sum += row[0]
	}
	assert.InDelta(t, 0.0, sum/3, 1e-12)

	// The inverse with the same statistics reproduces X exactly.
	back, err := InverseStandardize(Xs, mean, std)
	require.NoError(t, err)

	for k := range X {
		assert.InDelta(t, X[k][0], back[k][0], 1e-12)
	}
}

func TestStandardizeRoundTrip(t *testing.T) {
	X := [][]float64{
		{320, 0.25, 12.5},
		{480, 0.75, 3.2},
		{400, 0.10, 60.0},
		{355, 0.40, 41.0},
	}

	Xs, mean, std, err := Standardize(X, nil, nil)
	require.NoError(t, err)

	back, err := InverseStandardize(Xs, mean, std)
	require.NoError(t, err)

	for k := range X {
		for i := range X[k] {
			assert.InDelta(t, X[k][i], back[k][i], 1e-9)
		}
	}
}

func TestStandardizeSuppliedStats(t *testing.T) {
	X := [][]float64{{10}, {30}}

	Xs, mean, std, err := Standardize(X, []float64{20}, []float64{10})
	require.NoError(t, err)

	assert.Equal(t, []float64{20}, mean)
	assert.Equal(t, []float64{10}, std)
	assert.Equal(t, [][]float64{{-1}, {1}}, Xs)
}

func TestStandardizeZeroStd(t *testing.T) {
	// A constant column: std 0 propagates NaN, no error.
	Xs, _, _, err := Standardize([][]float64{{5}, {5}}, nil, nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(Xs[0][0]))
}

func TestStandardizeDimensionMismatch(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}}

	_, _, _, err := Standardize(X, []float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = InverseStandardize(X, []float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, _, err = ColumnStats(nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}
