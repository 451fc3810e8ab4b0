// Package localinv is a quantitative local-inversion toolkit: given a map f
// between finite-dimensional normed spaces that stays within a bounded
// Lipschitz deviation c of an invertible linear map A, it constructs an
// explicit local inverse of f with a guaranteed radius of validity.
//
// 🚀 What is localinv?
//
//	A pure-Go numerical realization of the inverse/implicit function
//	theorems as a generalized Newton-like contraction solver:
//	  • approx    — the approximation witness (f ≈ A on a domain, constant c)
//	    and the derived Lipschitz / anti-Lipschitz constants
//	  • fixpoint  — a generic Banach fixed-point engine with a provable
//	    convergence radius and iteration cap
//	  • inverse   — the update map g_y(x) = x + A⁻¹(y − f(x)), quantitative
//	    ball surjectivity, and the LocalInverse handle (bi-Lipschitz local
//	    bijection with both directions continuous)
//	  • implicit  — the implicit-function adapter: solve F(x, φ(x)) = z with
//	    derivative −B⁻¹A
//	  • linalg    — the dense vector/matrix substrate: LU with partial
//	    pivoting, inversion, operator norms, linear isomorphisms
//
// ✨ Why choose localinv?
//
//   - Quantitative – every guarantee carries an explicit constant: a closed
//     ball of radius ε around a base point b maps onto a ball of radius
//     (1/‖A⁻¹‖ − c)·ε around f(b)
//   - Honest failure modes – inadmissible constants, singular derivatives
//     and non-convergence surface as sentinel errors, never as silent
//     truncation
//   - Pure Go – no cgo, no BLAS, deterministic iteration orders
//
// Data flows bottom-up: an approx.Witness is the substrate; fixpoint turns
// the Newton map into pointwise inverses; inverse assembles them into a
// LocalInverse handle; implicit specializes the same machinery to maps with
// an invertible partial derivative in the second argument.
//
//	go get github.com/katalvlaran/localinv
package localinv
