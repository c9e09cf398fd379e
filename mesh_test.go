package boscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMesh2D(t *testing.T) {
	const n = 5

	points, x1, x2, err := Mesh2D(n)
	require.NoError(t, err)

	require.Len(t, points, n*n)
	require.Len(t, x1, n)
	require.Len(t, x2, n)

	// Cartesian indexing: x1 varies along columns, x2 along rows.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, float64(j)/(n-1), x1[i][j], 1e-12)
			assert.InDelta(t, float64(i)/(n-1), x2[i][j], 1e-12)
		}
	}

	// The flattened list enumerates the grid row-major, outer loop over the
	// first axis.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := points[i*n+j]
			require.Len(t, p, 2)
			assert.Equal(t, x1[i][j], p[0])
			assert.Equal(t, x2[i][j], p[1])
		}
	}

	// Endpoints cover the unit square exactly.
	assert.Equal(t, 0.0, points[0][0])
	assert.Equal(t, 0.0, points[0][1])
	assert.Equal(t, 1.0, points[n*n-1][0])
	assert.Equal(t, 1.0, points[n*n-1][1])
}

func TestMesh2DDeterminism(t *testing.T) {
	a, _, _, err := Mesh2D(7)
	require.NoError(t, err)

	b, _, _, err := Mesh2D(7)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMesh2DBadSize(t *testing.T) {
	_, _, _, err := Mesh2D(1)
	assert.ErrorIs(t, err, ErrBadMeshSize)

	_, _, _, err = Mesh2D(0)
	assert.ErrorIs(t, err, ErrBadMeshSize)
}

func TestMeshToReal(t *testing.T) {
	_, x1, x2, err := Mesh2D(3)
	require.NoError(t, err)

	r1 := Range{Min: 300, Max: 500}
	r2 := Range{Min: 1, Max: 3}

	real1, real2 := MeshToReal(x1, x2, r1, r2)

	assert.Equal(t, 300.0, real1[0][0])
	assert.Equal(t, 400.0, real1[0][1])
	assert.Equal(t, 500.0, real1[0][2])

	assert.Equal(t, 1.0, real2[0][0])
	assert.Equal(t, 2.0, real2[1][0])
	assert.Equal(t, 3.0, real2[2][0])

	// The unit-scale grids are untouched.
	assert.Equal(t, 0.0, x1[0][0])
	assert.Equal(t, 1.0, x2[2][0])
}

func TestResponseGrid(t *testing.T) {
	const n = 3

	// Standardized response in mesh order; mean 10, std 2.
	y := make([]float64, n*n)
	for k := range y {
		y[k] = float64(k)
	}

	grid, err := ResponseGrid(y, 10, 2, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, float64(i*n+j)*2+10, grid[i][j])
		}
	}
}

func TestResponseGridBadInput(t *testing.T) {
	_, err := ResponseGrid(make([]float64, 8), 0, 1, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = ResponseGrid(make([]float64, 1), 0, 1, 1)
	assert.ErrorIs(t, err, ErrBadMeshSize)
}
