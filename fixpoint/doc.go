// Package fixpoint implements the Banach fixed-point engine behind every
// local inversion in localinv: given a self-map of a complete metric space
// contracting at a rate strictly below 1, Solve iterates it to the unique
// fixed point.
//
// 🚀 Contract
//
//	For a map h with dist(h(x), h(y)) ≤ rate·dist(x, y) and rate < 1 on a
//	nonempty complete space, Solve(h, dist, x₀, rate) returns x* with
//	h(x*) = x*, and the a-priori bound
//
//	    dist(x₀, x*) ≤ dist(x₀, h(x₀)) / (1 − rate)
//
//	holds (see APrioriBound). Consecutive displacements shrink
//	geometrically by the rate, which is what makes the iterate sequence
//	Cauchy and yields the iteration cap below.
//
// ⚙️ Termination (finite-precision policy)
//
//	The ideal criterion — convergence of the iterate filter — is an
//	infinite-precision notion. This implementation deliberately
//	approximates it: iteration stops when one step moves less than Tol, or
//	after ceil(log(Tol/d₀)/log(rate)) steps (intersected with MaxIter),
//	the count after which the geometric envelope d₀·rateᵏ provably dips
//	under Tol. Exceeding the cap without meeting Tol is reported as
//	ErrNoConvergence — it indicates a wrong rate bound or floating-point
//	degradation, and is never silently truncated.
//
// The solver is generic over the point type: any type with a caller-
// supplied distance works, and the engine itself holds no shared state, so
// independent solves may run in parallel freely.
package fixpoint
