// Package inverse turns an approximation witness into an explicit local
// inverse: the quantitative inverse function theorem as a running
// algorithm.
//
// 🚀 How it works
//
//	For a witness "f ≈ A on a domain with constant c" (package approx,
//	N = ‖A⁻¹‖), fix a target y and consider the Newton-style update map
//
//	    g_y(x) = x + A⁻¹(y − f(x)).
//
//	Three identities drive everything (each one tested):
//	  • g_y(x) = x  ⟺  f(x) = y — fixed points are exactly preimages
//	  • dist(g_y(x), x) ≤ N·dist(f(x), y) — one-step displacement bound
//	  • dist(g_y(x), g_y(x′)) ≤ N·c·dist(x, x′) — the contraction estimate,
//	    the only place the witness bound is consumed
//
//	g_y is never applied globally: on a closed ball B̄(b, ε) inside the
//	domain, the two bounds above combine so that g_y maps the ball into
//	itself whenever dist(f(b), y) ≤ (1/N − c)·ε. That license makes the
//	ball a complete space the generic fixpoint solver may run on, and
//	yields the quantitative surjectivity statement: f(B̄(b, ε)) contains
//	the closed ball of radius (1/N − c)·ε around f(b).
//
// ✨ The LocalInverse handle
//
//	BuildLocalInverse packages the pointwise solves into a local
//	homeomorphism: source = open ball around the base point, target = open
//	ball around its image, forward map f, inverse map the contraction
//	solve. The inverse identities hold on full neighborhoods (within
//	solver tolerance), the inverse direction is Lipschitz with constant
//	(1/N − c)⁻¹, and construction is all-or-nothing — no partial handle is
//	ever returned.
//
// FromStrictDerivative lifts a plain derivative hypothesis into a witness
// automatically: it picks c = 1/(2N) (admissible by construction) and
// probes shrinking radii until the approximation bound verifies on a
// deterministic sample, mirroring how strict differentiability guarantees
// such a neighborhood exists.
package inverse
