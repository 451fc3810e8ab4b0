// SPDX-License-Identifier: MIT

package linalg

import "math"

// Defaults for the operator-norm power method. Conservative for float64 on
// the small dimensions this library targets.
const (
	// DefaultOpNormTol is the relative Rayleigh-quotient tolerance.
	DefaultOpNormTol = 1e-12

	// DefaultOpNormMaxIter caps the power iterations.
	DefaultOpNormMaxIter = 1000
)

// OpNorm computes the operator 2-norm ‖A‖ = σ_max(A), the largest singular
// value, via power iteration on the Gram matrix AᵀA.
//
// The start vector is a fixed, slightly tilted all-ones vector so runs are
// deterministic; if the iterate ever lands exactly in the kernel of AᵀA the
// method deterministically restarts from the next canonical basis vector.
// Convergence is declared when the Rayleigh quotient stabilizes within tol
// (relative); exceeding maxIter yields ErrNoConvergence.
//
// The trivial space is a fast path: a matrix with zero rows or columns has
// operator norm 0.
//
// Complexity: O(k·r·c) for k iterations.
func OpNorm(a *Dense, tol float64, maxIter int) (float64, error) {
	if a == nil {
		return 0, wrapErr(opOpNorm, ErrNilMatrix)
	}
	if a.r == 0 || a.c == 0 {
		return 0, nil
	}
	if tol <= 0 {
		tol = DefaultOpNormTol
	}
	if maxIter <= 0 {
		maxIter = DefaultOpNormMaxIter
	}

	n := a.c
	v := tiltedOnes(n)
	restart := 0 // next canonical basis index to fall back to
	at, _ := Transpose(a)

	lambda := 0.0
	for iter := 0; iter < maxIter; iter++ {
		// One application of AᵀA without forming the Gram matrix.
		av, _ := a.MatVec(v)
		bv, _ := at.MatVec(av)

		norm := bv.Norm()
		if norm == 0 {
			// v lies in the kernel; restart from the next basis vector.
			if restart >= n {
				return 0, nil // AᵀA annihilates every basis vector: A = 0
			}
			v = Zero(n)
			v[restart] = 1
			restart++

			continue
		}

		next := v.Dot(bv) // Rayleigh quotient with ‖v‖ = 1
		v = bv.Scale(1 / norm)
		if math.Abs(next-lambda) <= tol*math.Max(1, math.Abs(next)) {
			return math.Sqrt(next), nil
		}
		lambda = next
	}

	return 0, wrapErr(opOpNorm, ErrNoConvergence)
}

// tiltedOnes builds the deterministic start vector (1 + i/(n+1))ᵢ,
// normalized. The tilt keeps it off the symmetry axes that would trap the
// plain all-ones start (e.g. orthogonal to the dominant singular vector of
// a difference matrix).
func tiltedOnes(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = 1 + float64(i)/float64(n+1)
	}

	return v.Scale(1 / v.Norm())
}
