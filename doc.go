// Package boscale provides design-of-experiments sampling plans and the
// scaling/standardization transforms that sit between real physical units and
// the normalized representations consumed by surrogate models in a Bayesian
// optimization workflow.
//
// # Features
//
// The package includes the following key features:
//
//   - Unit-scale Transforms: Forward and inverse normalization of vectors and
//     matrices into the [0, 1] interval, with optional per-column base-10
//     logarithmic scaling and optional decimal rounding
//   - Standardization: Zero-mean/unit-variance transforms with population
//     (not sample-corrected) statistics, either supplied or computed
//   - Visualization Helpers: Cartesian 2D mesh generation over the unit
//     square, plot-axis relabeling into real units, and response-surface
//     reshaping for contour plots
//   - DOE Plans: General full-factorial designs and Latin hypercube sampling
//     over the unit hypercube
//   - Tabular I/O: CSV and XLSX readers for experiment tables plus X/Y
//     column splitting by response name
//   - Pure Functions: Every transform allocates a fresh result and never
//     mutates its inputs, so all of them are safe to call concurrently
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/boscale
//
// # Scaling
//
// The transforms come in an explicit vector form and an explicit matrix form
// rather than inspecting the shape of their input at runtime. The matrix
// forms are configured through ScaleConfig; DefaultScaleConfig documents the
// defaults (identity [0, 1] ranges, no log scaling, no rounding):
//
//	cfg := boscale.DefaultScaleConfig(2)
//	cfg.Ranges = []boscale.Range{{Min: 300, Max: 500}, {Min: 0.01, Max: 1}}
//	cfg.LogFlags = []bool{false, true}
//
//	Xunit, err := boscale.UnitScaleMatrix(X, cfg)
//
// When a log flag is set, the base-10 logarithm is applied to the already
// normalized unit value, and the inverse transform exponentiates before
// inverse-unit-scaling. The two directions are exact algebraic inverses only
// because this order is preserved on both sides.
//
// # Standardization
//
// Standardize computes per-column population statistics when none are
// supplied, and InverseStandardize undoes the transform given the same
// statistics:
//
//	Xs, mean, std, err := boscale.Standardize(X, nil, nil)
//	Xr, err := boscale.InverseStandardize(Xs, mean, std)
//
// # DOE Plans
//
// FullFactorial produces a normalized sampling plan from per-variable level
// counts; LatinHypercube draws a space-filling plan over the unit hypercube:
//
//	plan, err := boscale.FullFactorial([]int{5, 5})
//	lhs, err := boscale.LatinHypercube(2, 25, 42)
//
// # Error Handling
//
// The arithmetic itself is deliberately permissive: a zero-width range or a
// zero standard deviation propagates infinities and NaNs exactly as the
// underlying floating-point operations produce them. Structural problems, on
// the other hand (column-count disagreement between data, ranges, flags, or
// statistics), are rejected up front with sentinel errors that callers match
// via errors.Is.
//
// # Thread Safety
//
// There is no shared mutable state anywhere in the package. Inputs are
// treated as immutable, outputs are freshly allocated, and every function can
// be called concurrently from multiple goroutines.
package boscale
