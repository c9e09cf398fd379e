package boscale

import "errors"

// Sentinel errors for structural problems. All messages carry the
// "boscale: ..." prefix; callers match them with errors.Is. Numeric
// degeneracies (zero-width ranges, zero standard deviation) are deliberately
// NOT part of this set — they propagate as infinities and NaNs through the
// arithmetic instead.
var (
	// ErrDimensionMismatch indicates disagreement between the column count of
	// a matrix and the length of its ranges, log flags, or statistics — or a
	// ragged row inside the matrix itself.
	ErrDimensionMismatch = errors.New("boscale: dimension mismatch")

	// ErrEmptyMatrix indicates a matrix with no rows or no columns where at
	// least one value is required.
	ErrEmptyMatrix = errors.New("boscale: empty matrix")

	// ErrBadMeshSize indicates a mesh resolution below 2; a mesh needs at
	// least both endpoints of the unit interval.
	ErrBadMeshSize = errors.New("boscale: mesh size must be at least 2")

	// ErrBadLevels indicates a full-factorial level count below 1.
	ErrBadLevels = errors.New("boscale: level counts must be positive")

	// ErrBadSampleCount indicates a non-positive dimension or sample count
	// for a Latin hypercube plan.
	ErrBadSampleCount = errors.New("boscale: dimension and sample count must be positive")

	// ErrColumnNotFound indicates that a named response column does not
	// exist in the table being split.
	ErrColumnNotFound = errors.New("boscale: column not found")

	// ErrBadTable indicates a tabular input file that cannot be interpreted
	// as a header row followed by numeric data rows.
	ErrBadTable = errors.New("boscale: malformed table")
)
