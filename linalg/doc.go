// Package linalg provides the dense float64 substrate consumed by the rest
// of localinv: Euclidean vectors, row-major matrices, LU factorization with
// partial pivoting, matrix inversion, operator norms, and the Iso type — a
// continuous linear isomorphism carrying its inverse and cached operator
// norms.
//
// The package is deliberately scoped to finite dimension. On ℝⁿ every
// closed ball is complete, which is exactly the hypothesis the fixed-point
// machinery upstream needs; nothing here attempts infinite-dimensional
// generality.
//
// Numeric policy:
//
//   - All public indexers (At/Set) are bounds-checked and return
//     ErrOutOfRange rather than panicking.
//   - Ingestion rejects NaN/±Inf (ErrNaNInf); kernels assume finite input.
//   - LU uses partial (row) pivoting. A pivot column with no usable pivot
//     yields ErrSingular — singularity is reported, never papered over.
//   - Dimension zero is a legal, fully supported trivial space: a 0×0
//     matrix is invertible with operator norm 0.
//
// Complexity:
//
//	LU/Inverse: O(n³) time, O(n²) space.
//	OpNorm:     O(k·n²) time for k power-method iterations.
//	MatVec:     O(r·c) time.
package linalg
