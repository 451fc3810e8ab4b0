// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// Iso is a continuous linear isomorphism of ℝⁿ: a pair of mutually inverse
// linear maps with their operator norms cached at construction.
//
// An Iso is immutable once built. It is the "f′" consumed by the
// approximation machinery upstream: InvNorm (written N there) is the
// constant every quantitative radius is expressed in.
//
// The trivial space n = 0 is legal; both norms are 0 there and every
// downstream admissibility check short-circuits on Dim() == 0.
type Iso struct {
	fwd, inv      *Dense
	norm, invNorm float64
}

// NewIso builds the isomorphism determined by the square matrix a.
//
// Construction is where non-invertibility surfaces: a singular a yields
// ErrSingular and no Iso exists, so downstream code never re-checks
// invertibility at runtime.
//
// Errors:
//   - ErrNilMatrix  — a is nil.
//   - ErrNonSquare  — a is rectangular.
//   - ErrSingular   — a is not invertible.
//   - ErrNoConvergence — the operator-norm power method failed (rare;
//     indicates a pathological matrix for the default cap).
func NewIso(a *Dense) (*Iso, error) {
	if a == nil {
		return nil, fmt.Errorf("NewIso: %w", ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, fmt.Errorf("NewIso: %w", ErrNonSquare)
	}
	if a.r == 0 {
		// Trivial space: the unique (empty) map is its own inverse.
		fwd, _ := NewDense(0, 0)
		return &Iso{fwd: fwd, inv: fwd.Clone()}, nil
	}

	inv, err := Inverse(a)
	if err != nil {
		return nil, fmt.Errorf("NewIso: %w", err)
	}
	norm, err := OpNorm(a, DefaultOpNormTol, DefaultOpNormMaxIter)
	if err != nil {
		return nil, fmt.Errorf("NewIso: %w", err)
	}
	invNorm, err := OpNorm(inv, DefaultOpNormTol, DefaultOpNormMaxIter)
	if err != nil {
		return nil, fmt.Errorf("NewIso: %w", err)
	}

	return &Iso{fwd: a.Clone(), inv: inv, norm: norm, invNorm: invNorm}, nil
}

// Dim returns the dimension of the space the isomorphism acts on.
func (iso *Iso) Dim() int { return iso.fwd.r }

// Norm returns the cached operator norm ‖A‖.
func (iso *Iso) Norm() float64 { return iso.norm }

// InvNorm returns the cached operator norm N = ‖A⁻¹‖. It is 0 exactly on
// the trivial space, where 1/N is read as +∞ by callers.
func (iso *Iso) InvNorm() float64 { return iso.invNorm }

// Apply evaluates the forward map A·x. The argument must have dimension
// Dim(); a mismatch is a programmer error and panics.
func (iso *Iso) Apply(x Vec) Vec {
	y, err := iso.fwd.MatVec(x)
	if err != nil {
		panic(err.Error())
	}

	return y
}

// ApplyInv evaluates the inverse map A⁻¹·y. Same dimension contract as
// Apply.
func (iso *Iso) ApplyInv(y Vec) Vec {
	x, err := iso.inv.MatVec(y)
	if err != nil {
		panic(err.Error())
	}

	return x
}

// Forward returns a copy of the forward matrix A.
func (iso *Iso) Forward() *Dense { return iso.fwd.Clone() }

// Inverse returns a copy of the inverse matrix A⁻¹.
func (iso *Iso) Inverse() *Dense { return iso.inv.Clone() }
