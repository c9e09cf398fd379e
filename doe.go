package boscale

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

//////
// Design-of-experiments sampling plans.
//////

// FullFactorialLevels generates a general full-factorial design in raw level
// units. Each variable i takes the level indices 0..levels[i]-1 and the plan
// enumerates every combination, prod(levels) rows in total.
//
// The enumeration order is fixed: the first column cycles fastest, each
// subsequent column repeats every level for the product of the level counts
// before it. For levels {2, 3} the rows are (0,0), (1,0), (0,1), (1,1),
// (0,2), (1,2).
//
// Type Parameter:
//   - T: The integer type of the level counts
//
// Parameters:
// - levels: Number of levels per variable; all must be >= 1
//
// Returns:
// - [][]float64: prod(levels)×len(levels) plan in level units
// - error: ErrBadLevels if levels is empty or contains a count below 1
//
// Usage example:
//
//	plan, err := boscale.FullFactorialLevels([]int{3, 2})
//	// 6 rows over level indices {0,1,2}×{0,1}
func FullFactorialLevels[T constraints.Integer](levels []T) ([][]float64, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels given", ErrBadLevels)
	}

	rows := 1

	for i, l := range levels {
		if l < 1 {
			return nil, fmt.Errorf("%w: variable %d has %d levels", ErrBadLevels, i, int64(l))
		}

		rows *= int(l)
	}

	out := newMatrix(rows, len(levels))

	// Column i advances one level every prod(levels[:i]) rows.
	levelRepeat := 1

	for i, l := range levels {
		n := int(l)

		for k := 0; k < rows; k++ {
			out[k][i] = float64((k / levelRepeat) % n)
		}

		levelRepeat *= n
	}

	return out, nil
}

// FullFactorial generates a full-factorial design normalized to the unit
// scale: the raw level-unit plan from FullFactorialLevels is unit-scaled
// with a per-column range of [0, levels[i]-1], so every variable spans
// [0, 1] across its levels.
//
// Type Parameter:
//   - T: The integer type of the level counts
//
// Parameters:
// - levels: Number of levels per variable; all must be >= 1
//
// Returns:
// - [][]float64: prod(levels)×len(levels) plan in the unit scale
// - error: ErrBadLevels if levels is empty or contains a count below 1
//
// Usage example:
//
//	plan, err := boscale.FullFactorial([]int{5, 5})
//	// 25 unit-scale points, each column taking values 0, 0.25, 0.5, 0.75, 1
//
// Important notes:
//   - A single-level variable has a zero-width level range; its normalized
//     column is non-finite (the permissive degenerate case, not an error).
func FullFactorial[T constraints.Integer](levels []T) ([][]float64, error) {
	X, err := FullFactorialLevels(levels)
	if err != nil {
		return nil, err
	}

	cfg := DefaultScaleConfig(len(levels))
	for i, l := range levels {
		cfg.Ranges[i] = NewRange(T(0), l-1)
	}

	return UnitScaleMatrix(X, cfg)
}

// LevelMatrix converts a raw sampling plan in integer level units, as
// produced by an external DOE generator, into the float64 matrix form the
// transforms operate on.
//
// Type Parameter:
//   - T: The integer type of the level indices
func LevelMatrix[T constraints.Integer](X [][]T) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = ToFloat64s(row)
	}

	return out
}

// LatinHypercube draws a space-filling sampling plan over the unit
// hypercube: samples points in dim dimensions, stratified so that every
// column has exactly one point in each of the samples equal-width bins of
// [0, 1).
//
// Parameters:
// - dim: Number of variables
// - samples: Number of points to draw
// - seed: Seed for the pseudo-random source; a fixed seed gives a fixed plan
//
// Returns:
// - [][]float64: samples×dim plan in the unit scale
// - error: ErrBadSampleCount if dim or samples is below 1
//
// Usage example:
//
//	plan, err := boscale.LatinHypercube(2, 25, 42)
func LatinHypercube(dim, samples int, seed uint64) ([][]float64, error) {
	if dim < 1 || samples < 1 {
		return nil, fmt.Errorf("%w: dim %d, samples %d", ErrBadSampleCount, dim, samples)
	}

	src := rand.NewSource(seed)

	lh := samplemv.LatinHypercube{
		Q:   distmv.NewUnitUniform(dim, src),
		Src: src,
	}

	batch := mat.NewDense(samples, dim, nil)
	lh.Sample(batch)

	out := newMatrix(samples, dim)
	for k := range out {
		copy(out[k], batch.RawRowView(k))
	}

	return out, nil
}
