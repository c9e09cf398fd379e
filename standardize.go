package boscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

//////
// Standardization transforms.
//////

// ColumnStats computes the per-column mean and population standard deviation
// of a matrix (rows = samples, columns = variables).
//
// The population form (divide by n) is used rather than the sample-corrected
// form (divide by n-1): the statistics exist to make a standardization
// round-trip exact, not to estimate a population parameter.
//
// Parameters:
// - X: Matrix to summarize
//
// Returns:
// - mean: Per-column means
// - std: Per-column population standard deviations
// - error: ErrEmptyMatrix or ErrDimensionMismatch on structural problems
//
// Important notes:
// - A constant column yields std 0; standardizing with it produces NaN/Inf
// - A single-row matrix yields std 0 for every column.
func ColumnStats(X [][]float64) (mean, std []float64, err error) {
	rows, dim, err := matrixShape(X)
	if err != nil {
		return nil, nil, err
	}

	mean = make([]float64, dim)
	std = make([]float64, dim)

	for i := 0; i < dim; i++ {
		col := column(X, i)
		mean[i] = stat.Mean(col, nil)

		var ss float64
		for _, v := range col {
			d := v - mean[i]
			ss += d * d
		}

		std[i] = math.Sqrt(ss / float64(rows))
	}

	return mean, std, nil
}

// Standardize transforms a matrix to zero mean and unit variance per column:
// (X - mean) / std.
//
// When mean is nil, both statistics are computed from X itself via
// ColumnStats (population form) and returned alongside the result so the
// caller can invert the transform later.
//
// Parameters:
// - X: Matrix to standardize
// - mean: Per-column means, or nil to compute from X
// - std: Per-column standard deviations, or nil to compute from X
//
// Returns:
// - [][]float64: Freshly allocated standardized matrix, same shape as X
// - mean, std: The statistics actually used
// - error: ErrEmptyMatrix or ErrDimensionMismatch on structural problems
//
// Usage example:
//
//	Xs, mean, std, err := boscale.Standardize(X, nil, nil)
//	// later, e.g. on model output:
//	Xr, err := boscale.InverseStandardize(Xs, mean, std)
//
// Important notes:
// - A zero std for a column produces NaN/Inf entries, not an error
// - The input matrix is never modified.
func Standardize(X [][]float64, mean, std []float64) ([][]float64, []float64, []float64, error) {
	rows, dim, err := matrixShape(X)
	if err != nil {
		return nil, nil, nil, err
	}

	if mean == nil {
		mean, std, err = ColumnStats(X)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if err := statsLen(dim, mean, std); err != nil {
		return nil, nil, nil, err
	}

	out := newMatrix(rows, dim)

	for k, row := range X {
		for i, v := range row {
			out[k][i] = (v - mean[i]) / std[i]
		}
	}

	return out, mean, std, nil
}

// InverseStandardize transforms a standardized matrix back into real units:
// X * std + mean. It is the exact algebraic inverse of Standardize given the
// same statistics, modulo floating-point error.
//
// Parameters:
// - X: Standardized matrix
// - mean: Per-column means used to standardize
// - std: Per-column standard deviations used to standardize
//
// Returns:
// - [][]float64: Freshly allocated matrix in real units, same shape as X
// - error: ErrEmptyMatrix or ErrDimensionMismatch on structural problems
func InverseStandardize(X [][]float64, mean, std []float64) ([][]float64, error) {
	rows, dim, err := matrixShape(X)
	if err != nil {
		return nil, err
	}

	if err := statsLen(dim, mean, std); err != nil {
		return nil, err
	}

	out := newMatrix(rows, dim)

	for k, row := range X {
		for i, v := range row {
			out[k][i] = v*std[i] + mean[i]
		}
	}

	return out, nil
}

// statsLen checks that the statistics vectors cover every column.
func statsLen(dim int, mean, std []float64) error {
	if len(mean) != dim || len(std) != dim {
		return fmt.Errorf("%w: %d means and %d stds for %d columns", ErrDimensionMismatch, len(mean), len(std), dim)
	}

	return nil
}
