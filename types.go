package boscale

import "golang.org/x/exp/constraints"

// Range defines the physical bounds of one variable. It maps the real
// interval [Min, Max] onto the unit interval [0, 1] and back.
//
// Fields:
// - Min: The lower bound of the variable in real units
// - Max: The upper bound of the variable in real units
//
// Usage:
//
//	// Example 1: Reactor temperature between 300 and 500 K
//	tempRange := boscale.Range{Min: 300, Max: 500}
//
//	// Example 2: Catalyst loading between 0.01 and 1.0 wt%
//	loadingRange := boscale.Range{Min: 0.01, Max: 1.0}
//
// Validation:
//   - Min must be strictly less than Max for the unit-scale transforms to be
//     meaningful. This is intentionally not enforced: a zero-width range
//     propagates infinities through the arithmetic instead of raising an
//     error, matching the permissive philosophy of the package.
type Range struct {
	// Min defines the lower bound of the variable in real units.
	Min float64

	// Max defines the upper bound of the variable in real units.
	Max float64
}

// NewRange builds a Range from any numeric bound type. It exists so that
// integer bounds (for example DOE level indices) can be used without manual
// conversion noise at the call site.
//
// Type Parameter:
//   - T: The numeric type of the bounds (any integer or float type)
//
// Usage example:
//
//	// Level indices 0..4 of a five-level factor
//	r := boscale.NewRange(0, 4)
func NewRange[T constraints.Integer | constraints.Float](min, max T) Range {
	return Range{Min: float64(min), Max: float64(max)}
}

// Width returns Max - Min. A zero width makes the unit-scale transforms
// divide by zero; see Range for why that is not guarded.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// NoRounding disables decimal rounding in a ScaleConfig. Any negative
// Decimals value behaves the same way; this constant is the documented
// spelling.
const NoRounding = -1

// ScaleConfig configures the matrix forms of the unit-scale transforms.
// The zero value is not useful on its own; obtain a populated configuration
// from DefaultScaleConfig and override the fields you need.
//
// Fields explanation:
// - Ranges: Per-column real-unit bounds (nil means identity [0, 1] for all)
// - LogFlags: Per-column base-10 log scaling switches (nil means all false)
// - Decimals: Number of decimal places to round results to (NoRounding = off)
//
// Usage example:
//
//	cfg := boscale.DefaultScaleConfig(3)
//	cfg.Ranges = []boscale.Range{
//	    {Min: 300, Max: 500},   // Temperature
//	    {Min: 0.01, Max: 1.0},  // Pressure
//	    {Min: 0, Max: 1},       // Concentration
//	}
//	cfg.LogFlags = []bool{false, true, false}
//	cfg.Decimals = 4
//
// Important notes:
//   - When Ranges or LogFlags are non-nil their length must equal the column
//     count of the matrix being transformed; a mismatch is rejected with
//     ErrDimensionMismatch.
//   - A set log flag applies log10 to the already normalized unit value, not
//     to the raw value before normalization. The inverse transform mirrors
//     this by exponentiating before inverse-unit-scaling.
type ScaleConfig struct {
	// Ranges holds the real-unit bounds of each column, in column order.
	// nil is interpreted as the identity range [0, 1] for every column.
	Ranges []Range

	// LogFlags marks the columns that are represented logarithmically after
	// normalization. nil is interpreted as all false.
	LogFlags []bool

	// Decimals is the number of decimal places kept in the result.
	// Negative values (NoRounding) disable rounding.
	Decimals int
}

// DefaultScaleConfig returns the documented default configuration for a
// matrix with dim columns: identity [0, 1] ranges, no log scaling, and no
// rounding.
//
// Parameters:
// - dim: Number of columns in the matrix to be transformed
//
// Usage example:
//
//	// Identity configuration: UnitScaleMatrix(X, DefaultScaleConfig(2))
//	// returns a copy of X.
//	cfg := boscale.DefaultScaleConfig(2)
func DefaultScaleConfig(dim int) ScaleConfig {
	ranges := make([]Range, dim)
	for i := range ranges {
		ranges[i] = Range{Min: 0, Max: 1}
	}

	return ScaleConfig{
		Ranges:   ranges,
		LogFlags: make([]bool, dim),
		Decimals: NoRounding,
	}
}
