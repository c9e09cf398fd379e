package boscale

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//////
// 2D visualization helpers.
//////

// Mesh2D generates a meshSize×meshSize grid of evenly spaced points covering
// the unit square [0, 1]×[0, 1], for evaluating and plotting a model surface
// over two variables.
//
// The grids use Cartesian ('xy') indexing: x1[i][j] varies along j and
// x2[i][j] varies along i. The flattened point list enumerates the grid in
// row-major order (outer loop over the first axis, inner loop over the
// second), so points[i*meshSize+j] == {x1[i][j], x2[i][j]}. The order is
// fixed and repeatable; model output evaluated over points can be reshaped
// back onto the grid with ResponseGrid.
//
// Parameters:
// - meshSize: Number of grid points along each axis
//
// Returns:
// - points: meshSize² two-column rows, model-evaluation input
// - x1, x2: The two coordinate grids
// - error: ErrBadMeshSize if meshSize < 2
//
// Usage example:
//
//	points, x1, x2, err := boscale.Mesh2D(41)
func Mesh2D(meshSize int) (points, x1, x2 [][]float64, err error) {
	if meshSize < 2 {
		return nil, nil, nil, fmt.Errorf("%w: got %d", ErrBadMeshSize, meshSize)
	}

	axis := floats.Span(make([]float64, meshSize), 0, 1)

	x1 = newMatrix(meshSize, meshSize)
	x2 = newMatrix(meshSize, meshSize)

	for i := 0; i < meshSize; i++ {
		for j := 0; j < meshSize; j++ {
			x1[i][j] = axis[j]
			x2[i][j] = axis[i]
		}
	}

	points = make([][]float64, 0, meshSize*meshSize)

	for i := 0; i < meshSize; i++ {
		for j := 0; j < meshSize; j++ {
			points = append(points, []float64{x1[i][j], x2[i][j]})
		}
	}

	return points, x1, x2, nil
}

// MeshToReal converts a pair of unit-scale coordinate grids into real units
// by applying the vector inverse-unit-scale transform to each grid with its
// own range. It exists purely to relabel plot axes in real units.
//
// Parameters:
// - x1, x2: Coordinate grids in the unit scale (as produced by Mesh2D)
// - r1, r2: Real-unit bounds of the two variables
//
// Returns:
// - Freshly allocated grids of the same shapes, in real units.
func MeshToReal(x1, x2 [][]float64, r1, r2 Range) ([][]float64, [][]float64) {
	real1 := make([][]float64, len(x1))
	for i, row := range x1 {
		real1[i] = InverseUnitScaleVector(row, r1)
	}

	real2 := make([][]float64, len(x2))
	for i, row := range x2 {
		real2[i] = InverseUnitScaleVector(row, r2)
	}

	return real1, real2
}

// ResponseGrid inverse-standardizes a flat model-output column and reshapes
// it onto the meshSize×meshSize grid produced by Mesh2D, ready for contour
// or surface plotting.
//
// Parameters:
// - y: Standardized model output, one value per mesh point, in mesh order
// - mean, std: Statistics used to standardize the response column
// - meshSize: Resolution of the mesh y was evaluated on
//
// Returns:
// - [][]float64: meshSize×meshSize grid in real units
// - error: ErrBadMeshSize if meshSize < 2, ErrDimensionMismatch if
//   len(y) != meshSize²
//
// Usage example:
//
//	surface, err := boscale.ResponseGrid(y, yMean, yStd, 41)
func ResponseGrid(y []float64, mean, std float64, meshSize int) ([][]float64, error) {
	if meshSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMeshSize, meshSize)
	}

	if len(y) != meshSize*meshSize {
		return nil, fmt.Errorf("%w: %d values for a %d×%d mesh", ErrDimensionMismatch, len(y), meshSize, meshSize)
	}

	out := newMatrix(meshSize, meshSize)

	for i := 0; i < meshSize; i++ {
		for j := 0; j < meshSize; j++ {
			out[i][j] = y[i*meshSize+j]*std + mean
		}
	}

	return out, nil
}
