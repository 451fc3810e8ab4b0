// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// linalg package. All kernels return these sentinels and tests check them
// via errors.Is. No kernel panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers.

package linalg

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Zero is legal: the trivial space is a real citizen.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or MatVec with a vector of
	// the wrong length.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when no usable pivot exists during LU
	// factorization or inversion: the matrix is (numerically) singular.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion, Set).
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNoConvergence indicates that an iterative kernel (the operator-norm
	// power method) failed to meet its tolerance within the iteration cap.
	ErrNoConvergence = errors.New("linalg: iteration cap reached before tolerance")
)
