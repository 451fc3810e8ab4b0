// SPDX-License-Identifier: MIT

package linalg

import "math"

// Vec is a point of ℝⁿ (equivalently, a vector), stored as a plain slice.
//
// Arithmetic methods allocate a fresh result and never mutate the receiver;
// the local-inversion pipeline treats vectors as immutable values. All
// binary operations require operands of equal dimension — a mismatch is a
// programmer error and panics (public entry points validate dimensions
// before reaching these helpers).
type Vec []float64

// Zero returns the origin of ℝⁿ. Zero(0) is the unique point of the
// trivial space.
func Zero(n int) Vec { return make(Vec, n) }

// Dim returns the dimension of the ambient space.
func (v Vec) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)

	return c
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	mustSameDim(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out
}

// Sub returns v − o.
func (v Vec) Sub(o Vec) Vec {
	mustSameDim(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}

	return out
}

// Scale returns a·v.
func (v Vec) Scale(a float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = a * v[i]
	}

	return out
}

// Dot returns the Euclidean inner product ⟨v, o⟩.
func (v Vec) Dot(o Vec) float64 {
	mustSameDim(v, o)
	sum := 0.0
	for i := range v {
		sum += v[i] * o[i]
	}

	return sum
}

// Norm returns the Euclidean norm ‖v‖₂.
func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dist returns the Euclidean distance ‖v − o‖₂.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Norm() }

// IsFinite reports whether every coordinate is finite (no NaN, no ±Inf).
func (v Vec) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Concat returns the point (a, b) of the product space ℝ^len(a) × ℝ^len(b).
func Concat(a, b Vec) Vec {
	out := make(Vec, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// Split cuts v into its first n coordinates and the remainder. It is the
// inverse of Concat. Splitting past the end is a programmer error.
func (v Vec) Split(n int) (Vec, Vec) {
	if n < 0 || n > len(v) {
		panic(ErrOutOfRange.Error())
	}

	return v[:n].Clone(), v[n:].Clone()
}

// mustSameDim guards binary vector operations against mixed dimensions.
func mustSameDim(a, b Vec) {
	if len(a) != len(b) {
		panic(ErrDimensionMismatch.Error())
	}
}
