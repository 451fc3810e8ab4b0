// Package approx defines the data contract at the heart of localinv: the
// approximation witness "f approximates the linear isomorphism A on a
// domain with constant c", together with the derived Lipschitz facts the
// whole inversion pipeline runs on.
//
// 🚀 What is a Witness?
//
//	An immutable record {f, A, domain, c} whose defining bound
//
//	    ‖f(x) − f(y) − A(x − y)‖ ≤ c·‖x − y‖   for all x, y in the domain
//
//	is the single analytic hypothesis of the inverse function theorem in
//	quantitative form. From it, pure arithmetic (no iteration) yields:
//	  • f is Lipschitz with constant ‖A‖ + c
//	  • x ↦ f(x) − A(x) is Lipschitz with constant c
//	  • f is anti-Lipschitz (hence injective) with constant (1/N − c)⁻¹
//	  • the Newton update map contracts at rate N·c
//	where N = ‖A⁻¹‖.
//
// ✨ Admissibility
//
//	Everything above needs c < 1/N. That inequality is checked exactly once,
//	at construction (NewWitness), and is relied on — never re-verified — by
//	every downstream component. The trivial space (dimension 0) sidesteps
//	the division and is always admissible.
//
// The defining bound itself is a precondition supplied by the caller; the
// finite-sample checker ApproximatesLinearOn is advisory tooling for tests
// and for the strict-derivative lifter, not a proof.
package approx
