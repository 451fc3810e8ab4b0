// Package implicit solves F(x, y) = z for y as a function of x near a
// known solution point — the implicit-function construction reduced to the
// local-inversion engine.
//
// Given F : ℝᵉ × ℝᵍ → ℝᵍ with a point (x₀, y₀), the partial derivative
// A = ∂F/∂x and an invertible partial derivative B = ∂F/∂y there, the
// auxiliary map
//
//	Φ(x, y) = (x, F(x, y))
//
// has block derivative [[I, 0], [A, B]] at (x₀, y₀), invertible exactly
// when B is. Inverting Φ locally and projecting onto the y-block yields the
// implicit function: Eval(x, z) returns the unique nearby y with
// F(x, y) = z, and At(x) tracks the level set z = F(x₀, y₀).
//
// The derivative of the implicit function at x₀ is −B⁻¹A, reported by
// Derivative.
//
// ✨ What the package offers
//
//   - Problem: the hypothesis bundle (F, A, B, x₀, y₀).
//   - Solve: validates the bundle, lifts Φ through
//     inverse.FromStrictDerivative and returns an ImplicitFunction handle.
//     A singular B surfaces as linalg.ErrSingular — no handle exists for a
//     degenerate level set.
//   - ImplicitFunction: Eval / At with per-call solver stats, Level,
//     Derivative, and access to the underlying local inverse.
//
// ⚙️ Guarantees
//
//   - Every answer satisfies F(x, Eval(x, z)) = z up to the contraction
//     solver tolerance.
//   - Queries outside the certified neighborhood are rejected with
//     inverse.ErrOutOfReach rather than answered by extrapolation.
//
// See inverse for the underlying machinery and linalg for the matrix
// substrate.
package implicit
