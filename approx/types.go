// Package approx: domains and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrNotAdmissible if c ≥ 1/‖A⁻¹‖ on a non-trivial space.
//	– ErrBadConstant   if c is negative or non-finite, or Weaken shrinks c.
//	– ErrNilFunc       if the approximated map is nil.
//	– ErrNilIso        if the reference isomorphism is nil.
//	– ErrNilDomain     if the domain is nil.
package approx

import (
	"errors"
	"math"

	"github.com/katalvlaran/localinv/linalg"
)

// Sentinel errors returned by witness construction and derivation.
var (
	// ErrNotAdmissible indicates c ≥ 1/‖A⁻¹‖ on a non-trivial space: the
	// chosen constant or neighborhood is too large for any inversion
	// guarantee. It is surfaced at construction time and never silently
	// weakened.
	ErrNotAdmissible = errors.New("approx: constant not admissible (c ≥ 1/‖A⁻¹‖)")

	// ErrBadConstant indicates a negative or non-finite approximation
	// constant, or a Weaken target smaller than the current constant.
	ErrBadConstant = errors.New("approx: bad approximation constant")

	// ErrNilFunc indicates that the approximated map f is nil.
	ErrNilFunc = errors.New("approx: function is nil")

	// ErrNilIso indicates that the reference linear isomorphism is nil.
	ErrNilIso = errors.New("approx: linear isomorphism is nil")

	// ErrNilDomain indicates that the domain is nil.
	ErrNilDomain = errors.New("approx: domain is nil")
)

// Domain is a subset of ℝⁿ tested by membership. Implementations must be
// immutable value types.
type Domain interface {
	// Contains reports whether x belongs to the domain.
	Contains(x linalg.Vec) bool
}

// Ball is an open or closed Euclidean ball. The zero Radius closed ball is
// the singleton {Center}; an open ball of radius 0 is empty.
type Ball struct {
	Center linalg.Vec
	Radius float64
	Open   bool
}

// ClosedBall returns the closed ball B̄(c, r).
func ClosedBall(center linalg.Vec, radius float64) Ball {
	return Ball{Center: center.Clone(), Radius: radius}
}

// OpenBall returns the open ball B(c, r).
func OpenBall(center linalg.Vec, radius float64) Ball {
	return Ball{Center: center.Clone(), Radius: radius, Open: true}
}

// Contains implements Domain.
func (b Ball) Contains(x linalg.Vec) bool {
	if x.Dim() != b.Center.Dim() {
		return false
	}
	d := x.Dist(b.Center)
	if b.Open {
		return d < b.Radius
	}

	return d <= b.Radius
}

// Sample returns a deterministic grid of points of the ball: perAxis
// equally spaced coordinates per axis over the bounding box, filtered by
// membership. The size grows as perAxisᵈⁱᵐ — intended for the small
// dimensions the finite-sample predicate targets. perAxis < 1 or an empty
// ball yields only the center (when it belongs to the ball).
func (b Ball) Sample(perAxis int) []linalg.Vec {
	dim := b.Center.Dim()
	if perAxis < 2 || b.Radius <= 0 || dim == 0 {
		if b.Contains(b.Center) {
			return []linalg.Vec{b.Center.Clone()}
		}

		return nil
	}

	step := 2 * b.Radius / float64(perAxis-1)
	out := make([]linalg.Vec, 0)
	idx := make([]int, dim)
	for {
		p := make(linalg.Vec, dim)
		for i := 0; i < dim; i++ {
			p[i] = b.Center[i] - b.Radius + float64(idx[i])*step
		}
		if b.Contains(p) {
			out = append(out, p)
		}
		// Odometer increment over the grid indices.
		i := 0
		for ; i < dim; i++ {
			idx[i]++
			if idx[i] < perAxis {
				break
			}
			idx[i] = 0
		}
		if i == dim {
			break
		}
	}

	return out
}

// Whole is all of ℝⁿ (any dimension).
type Whole struct{}

// Contains implements Domain; every point belongs.
func (Whole) Contains(linalg.Vec) bool { return true }

// invOrInf returns 1/n, read as +∞ when n is 0 (the trivial space, where
// the operator norm of the inverse is 0 by convention).
func invOrInf(n float64) float64 {
	if n == 0 {
		return math.Inf(1)
	}

	return 1 / n
}
