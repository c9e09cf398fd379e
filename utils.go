package boscale

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

//////
// Helper functions.
//////

// SingleRow promotes a bare vector to a single-row matrix. The matrix forms
// of the transforms take 2-D input only; this is the explicit spelling of
// the promotion instead of runtime shape inspection.
//
// Parameters:
// - xv: Vector to promote
//
// Returns:
// - [][]float64: A 1×len(xv) matrix holding a copy of xv
//
// Usage example:
//
//	Xunit, err := boscale.UnitScaleMatrix(boscale.SingleRow(x), cfg)
func SingleRow(xv []float64) [][]float64 {
	row := make([]float64, len(xv))
	copy(row, xv)

	return [][]float64{row}
}

// ToFloat64s converts a slice of any numeric type to a slice of float64
// values. DOE plans are generated in integer level units; this conversion
// moves them into the float64 world of the transforms.
//
// Important notes:
// - Creates a new slice; doesn't modify the input
// - Preserves order of elements
// - Returns an empty slice if the input is nil or empty.
func ToFloat64s[T constraints.Integer | constraints.Float](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}

	return out
}

// matrixShape validates that X is a non-empty rectangular matrix and reports
// its row and column counts. Ragged rows are a structural error, not a
// numeric one.
func matrixShape(X [][]float64) (rows, cols int, err error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return 0, 0, ErrEmptyMatrix
	}

	cols = len(X[0])

	for i, row := range X {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrDimensionMismatch, i, len(row), cols)
		}
	}

	return len(X), cols, nil
}

// newMatrix allocates a rows×cols matrix of zeros with one backing slice per
// row.
func newMatrix(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	return out
}

// column extracts column i of X into a new slice.
func column(X [][]float64, i int) []float64 {
	col := make([]float64, len(X))
	for k, row := range X {
		col[k] = row[i]
	}

	return col
}

// setColumn writes col into column i of X. Lengths must already agree.
func setColumn(X [][]float64, i int, col []float64) {
	for k, v := range col {
		X[k][i] = v
	}
}

// roundTo rounds x to the given number of decimal places. Negative decimals
// return x unchanged.
func roundTo(x float64, decimals int) float64 {
	if decimals < 0 {
		return x
	}

	p := math.Pow(10, float64(decimals))

	return math.Round(x*p) / p
}

// roundMatrix rounds every entry of X in place. Negative decimals are a
// no-op, matching NoRounding.
func roundMatrix(X [][]float64, decimals int) {
	if decimals < 0 {
		return
	}

	for _, row := range X {
		for i, v := range row {
			row[i] = roundTo(v, decimals)
		}
	}
}
