// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opInverse = "Inverse"
	opSolve   = "Solve"
	opOpNorm  = "OpNorm"
)

// wrapErr wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func wrapErr(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU computes the partially pivoted Doolittle factorization P·A = L·U.
//
// L is unit lower triangular, U is upper triangular, and perm describes the
// row permutation P: row i of P·A is row perm[i] of A. Pivoting by largest
// absolute column entry keeps the factorization stable on the
// near-singular inputs this library exists to detect honestly.
//
// Errors:
//   - ErrNilMatrix  — a is nil.
//   - ErrNonSquare  — a is rectangular.
//   - ErrSingular   — a pivot column has no non-zero entry.
//
// Complexity: O(n³) time, O(n²) space.
func LU(a *Dense) (l, u *Dense, perm []int, err error) {
	if a == nil {
		return nil, nil, nil, wrapErr(opLU, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, nil, nil, wrapErr(opLU, ErrNonSquare)
	}

	n := a.r
	w := a.Clone() // working copy: L below the diagonal, U on and above
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, cand, factor float64
	for k = 0; k < n; k++ {
		// Partial pivot: pick the row with the largest |w[i][k]|, i ≥ k.
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(w.data[i*n+k]); cand > best {
				p, best = i, cand
			}
		}
		if best == 0 {
			return nil, nil, nil, wrapErr(opLU, ErrSingular)
		}
		if p != k {
			swapRows(w, p, k)
			perm[p], perm[k] = perm[k], perm[p]
		}
		// Eliminate below the pivot, storing multipliers in place.
		for i = k + 1; i < n; i++ {
			factor = w.data[i*n+k] / w.data[k*n+k]
			w.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				w.data[i*n+j] -= factor * w.data[k*n+j]
			}
		}
	}

	// Unpack the in-place factors into fresh L and U.
	l, _ = Identity(n)
	u, _ = NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			l.data[i*n+j] = w.data[i*n+j]
		}
		for j = i; j < n; j++ {
			u.data[i*n+j] = w.data[i*n+j]
		}
	}

	return l, u, perm, nil
}

// Solve computes the unique x with a·x = b via one LU factorization and a
// forward/backward substitution pair.
//
// Errors: those of LU, plus ErrDimensionMismatch when len(b) != a.Rows().
//
// Complexity: O(n³) dominated by the factorization.
func Solve(a *Dense, b Vec) (Vec, error) {
	if a == nil {
		return nil, wrapErr(opSolve, ErrNilMatrix)
	}
	if len(b) != a.r {
		return nil, wrapErr(opSolve, ErrDimensionMismatch)
	}
	l, u, perm, err := LU(a)
	if err != nil {
		return nil, wrapErr(opSolve, err)
	}

	return luSolve(l, u, perm, b), nil
}

// Inverse computes A⁻¹ via one pivoted LU factorization and n triangular
// solves against the canonical basis columns. The input is not mutated.
//
// Errors: those of LU (ErrNilMatrix, ErrNonSquare, ErrSingular).
//
// Complexity: O(n³) time, O(n²) space.
func Inverse(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, wrapErr(opInverse, ErrNilMatrix)
	}
	l, u, perm, err := LU(a)
	if err != nil {
		return nil, wrapErr(opInverse, err)
	}

	n := a.r
	inv, _ := NewDense(n, n)
	e := make(Vec, n)
	var col, i int
	for col = 0; col < n; col++ {
		// e is the canonical basis column e_col.
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		x := luSolve(l, u, perm, e)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// luSolve solves L·U·x = P·b given the factors of LU. The pivots of u are
// non-zero by construction (LU would have failed otherwise).
func luSolve(l, u *Dense, perm []int, b Vec) Vec {
	n := len(perm)
	y := make(Vec, n)
	x := make(Vec, n)

	var i, k int
	var sum float64
	// Forward substitution: L·y = P·b (unit diagonal on L).
	for i = 0; i < n; i++ {
		sum = 0.0
		for k = 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = b[perm[i]] - sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = 0.0
		for k = i + 1; k < n; k++ {
			sum += u.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[i*n+i]
	}

	return x
}

// swapRows exchanges rows p and k of m in place.
func swapRows(m *Dense, p, k int) {
	basep, basek := p*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[basep+j], m.data[basek+j] = m.data[basek+j], m.data[basep+j]
	}
}
