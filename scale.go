package boscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//////
// Unit-scale transforms.
//////

// UnitScaleVector converts a vector from real units into the unit scale:
// (xv - Min) / (Max - Min).
//
// Parameters:
// - xv: Values of one variable in real units
// - r: Real-unit bounds of that variable
//
// Returns:
// - []float64: Freshly allocated normalized values, same length as xv
//
// Usage example:
//
//	u := boscale.UnitScaleVector([]float64{50}, boscale.Range{Min: 0, Max: 100})
//	// u == []float64{0.5}
//
// Important notes:
// - The input is never modified; the result is always a new slice
// - A zero-width range produces ±Inf (or NaN at the bound itself), not an error
// - Values outside [Min, Max] simply map outside [0, 1].
func UnitScaleVector(xv []float64, r Range) []float64 {
	out := make([]float64, len(xv))
	copy(out, xv)

	floats.AddConst(-r.Min, out)
	floats.Scale(1/r.Width(), out)

	return out
}

// InverseUnitScaleVector converts a vector from the unit scale back into real
// units: Min + (Max - Min) * xv. It is the exact algebraic inverse of
// UnitScaleVector for the same range, modulo floating-point error.
//
// Parameters:
// - xv: Values of one variable in the unit scale
// - r: Real-unit bounds of that variable
//
// Returns:
// - []float64: Freshly allocated values in real units, same length as xv
//
// Usage example:
//
//	x := boscale.InverseUnitScaleVector([]float64{0.5}, boscale.Range{Min: 0, Max: 100})
//	// x == []float64{50}
func InverseUnitScaleVector(xv []float64, r Range) []float64 {
	out := make([]float64, len(xv))
	copy(out, xv)

	floats.Scale(r.Width(), out)
	floats.AddConst(r.Min, out)

	return out
}

// UnitScaleMatrix converts a matrix (rows = samples, columns = variables)
// from real units into the unit scale, column by column.
//
// For each column i the vector forward transform is applied with
// cfg.Ranges[i]; when cfg.LogFlags[i] is set, the base-10 logarithm is then
// applied to the normalized result. Note the order: the unit-scale value
// itself is log-transformed, not the raw value before normalization.
// InverseUnitScaleMatrix mirrors this order, which is what makes the two
// directions exact inverses of each other.
//
// Parameters:
// - X: Matrix in real units; use SingleRow to promote a bare vector
// - cfg: Per-column ranges, log flags, and rounding (see DefaultScaleConfig)
//
// Returns:
// - [][]float64: Freshly allocated matrix of the same shape as X
// - error: ErrEmptyMatrix or ErrDimensionMismatch on structural problems
//
// Usage example:
//
//	cfg := boscale.DefaultScaleConfig(2)
//	cfg.Ranges = []boscale.Range{{Min: 0, Max: 100}, {Min: 1, Max: 10}}
//
//	Xunit, err := boscale.UnitScaleMatrix(X, cfg)
//
// Important notes:
// - With DefaultScaleConfig ranges this is the identity transform
// - cfg.Decimals >= 0 rounds every entry to that many decimal places
// - A log flag on a column whose normalized values are non-positive
//   produces NaN/-Inf entries, not an error.
func UnitScaleMatrix(X [][]float64, cfg ScaleConfig) ([][]float64, error) {
	rows, dim, err := matrixShape(X)
	if err != nil {
		return nil, err
	}

	ranges, logFlags, err := cfg.columns(dim)
	if err != nil {
		return nil, err
	}

	out := newMatrix(rows, dim)

	for i := 0; i < dim; i++ {
		col := UnitScaleVector(column(X, i), ranges[i])

		if logFlags[i] {
			for k, v := range col {
				col[k] = math.Log10(v)
			}
		}

		setColumn(out, i, col)
	}

	roundMatrix(out, cfg.Decimals)

	return out, nil
}

// InverseUnitScaleMatrix converts a matrix from the unit scale back into real
// units, column by column. It is the mirror of UnitScaleMatrix: for a column
// with its log flag set, 10 is first raised to the power of the input value
// and the vector inverse transform is applied afterwards.
//
// Parameters:
// - X: Matrix in the unit scale; use SingleRow to promote a bare vector
// - cfg: Per-column ranges, log flags, and rounding (see DefaultScaleConfig)
//
// Returns:
// - [][]float64: Freshly allocated matrix of the same shape as X
// - error: ErrEmptyMatrix or ErrDimensionMismatch on structural problems
//
// Usage example:
//
//	cfg := boscale.DefaultScaleConfig(2)
//	cfg.Ranges = []boscale.Range{{Min: 0, Max: 100}, {Min: 1, Max: 10}}
//
//	Xreal, err := boscale.InverseUnitScaleMatrix(Xunit, cfg)
//
// Important notes:
//   - Round-trip correctness depends on forward and inverse agreeing on where
//     the log flag applies; both sides of this package keep it on the
//     normalized value.
func InverseUnitScaleMatrix(X [][]float64, cfg ScaleConfig) ([][]float64, error) {
	rows, dim, err := matrixShape(X)
	if err != nil {
		return nil, err
	}

	ranges, logFlags, err := cfg.columns(dim)
	if err != nil {
		return nil, err
	}

	out := newMatrix(rows, dim)

	for i := 0; i < dim; i++ {
		col := column(X, i)

		if logFlags[i] {
			for k, v := range col {
				col[k] = math.Pow(10, v)
			}
		}

		setColumn(out, i, InverseUnitScaleVector(col, ranges[i]))
	}

	roundMatrix(out, cfg.Decimals)

	return out, nil
}

//////
// Internal.
//////

// columns resolves the configured ranges and log flags against the column
// count of the matrix being transformed, substituting the documented
// defaults for nil fields.
func (cfg ScaleConfig) columns(dim int) ([]Range, []bool, error) {
	ranges := cfg.Ranges
	if ranges == nil {
		ranges = DefaultScaleConfig(dim).Ranges
	}

	if len(ranges) != dim {
		return nil, nil, fmt.Errorf("%w: %d ranges for %d columns", ErrDimensionMismatch, len(ranges), dim)
	}

	logFlags := cfg.LogFlags
	if logFlags == nil {
		logFlags = make([]bool, dim)
	}

	if len(logFlags) != dim {
		return nil, nil, fmt.Errorf("%w: %d log flags for %d columns", ErrDimensionMismatch, len(logFlags), dim)
	}

	return ranges, logFlags, nil
}
