package implicit

import (
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/inverse"
	"github.com/katalvlaran/localinv/linalg"
)

// Problem bundles the implicit-function hypothesis: a map
// F : ℝᵉ × ℝᵍ → ℝᵍ, a solution point (X0, Y0), and the two partial
// derivatives of F there — A = ∂F/∂x (g×e) and B = ∂F/∂y (g×g,
// invertible).
//
// e and g are read off X0 and Y0; Solve validates everything else against
// them.
type Problem struct {
	F  func(x, y linalg.Vec) linalg.Vec
	A  *linalg.Dense
	B  *linalg.Dense
	X0 linalg.Vec
	Y0 linalg.Vec
}

// ImplicitFunction is the artifact of Solve: the function x ↦ y implicitly
// defined by F(x, y) = z near (X0, Y0), one handle per level z.
//
// Internally it is a local inverse of Φ(x, y) = (x, F(x, y)) with the
// output projected onto the y-block; all certification (neighborhood
// radii, out-of-reach rejection) is inherited from that handle.
type ImplicitFunction struct {
	h     *inverse.LocalInverse
	deriv *linalg.Dense
	level linalg.Vec
	e, g  int
}

// Solve validates the problem and constructs the implicit function.
//
// The block derivative [[I, 0], [A, B]] of Φ is assembled and handed to
// inverse.FromStrictDerivative at (X0, Y0). Errors:
//   - ErrNilFunc / ErrNilMatrix / ErrBadShape on a malformed bundle;
//   - linalg.ErrSingular when B (hence the block matrix) is not
//     invertible;
//   - inverse.ErrNoNeighborhood when no qualifying radius is found.
//
// Solver options apply to every later Eval call.
func Solve(prob Problem, opts ...fixpoint.Option) (*ImplicitFunction, error) {
	if prob.F == nil {
		return nil, ErrNilFunc
	}
	if prob.A == nil || prob.B == nil {
		return nil, ErrNilMatrix
	}
	e, g := prob.X0.Dim(), prob.Y0.Dim()
	if prob.A.Rows() != g || prob.A.Cols() != e || prob.B.Rows() != g || prob.B.Cols() != g {
		return nil, ErrBadShape
	}
	level := prob.F(prob.X0, prob.Y0)
	if level.Dim() != g {
		return nil, ErrBadShape
	}

	f := prob.F
	phi := func(p linalg.Vec) linalg.Vec {
		x, y := p.Split(e)

		return linalg.Concat(x, f(x, y))
	}
	d, err := blockDerivative(prob.A, prob.B, e, g)
	if err != nil {
		return nil, err
	}
	h, err := inverse.FromStrictDerivative(phi, linalg.Concat(prob.X0, prob.Y0), d, opts...)
	if err != nil {
		return nil, err
	}

	// B is invertible here — the block lift above already vouched for it.
	binv, err := linalg.Inverse(prob.B)
	if err != nil {
		return nil, err
	}
	bia, err := linalg.Mul(binv, prob.A)
	if err != nil {
		return nil, err
	}
	deriv, err := linalg.Scale(bia, -1)
	if err != nil {
		return nil, err
	}

	return &ImplicitFunction{h: h, deriv: deriv, level: level, e: e, g: g}, nil
}

// Eval solves F(x, y) = z for the unique y near Y0, together with the
// contraction-solver stats of the run.
//
// The query must lie in the certified target neighborhood of Φ;
// inverse.ErrOutOfReach and fixpoint.ErrNoConvergence propagate unchanged.
func (fn *ImplicitFunction) Eval(x, z linalg.Vec) (linalg.Vec, fixpoint.Stats, error) {
	if x.Dim() != fn.e || z.Dim() != fn.g {
		return nil, fixpoint.Stats{}, ErrBadPoint
	}
	p, stats, err := fn.h.Inverse(linalg.Concat(x, z))
	if err != nil {
		return nil, stats, err
	}
	_, y := p.Split(fn.e)

	return y, stats, nil
}

// At tracks the original level set: Eval(x, F(X0, Y0)).
func (fn *ImplicitFunction) At(x linalg.Vec) (linalg.Vec, fixpoint.Stats, error) {
	return fn.Eval(x, fn.level)
}

// Level returns a copy of the tracked level z = F(X0, Y0).
func (fn *ImplicitFunction) Level() linalg.Vec { return fn.level.Clone() }

// Derivative returns a copy of −B⁻¹A, the derivative of the implicit
// function at X0.
func (fn *ImplicitFunction) Derivative() *linalg.Dense { return fn.deriv.Clone() }

// Handle exposes the underlying local inverse of Φ, for callers that need
// its certified source and target neighborhoods.
func (fn *ImplicitFunction) Handle() *inverse.LocalInverse { return fn.h }

// blockDerivative assembles [[I, 0], [A, B]] on ℝ^(e+g).
func blockDerivative(a, b *linalg.Dense, e, g int) (*linalg.Dense, error) {
	d, err := linalg.NewDense(e+g, e+g)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e; i++ {
		if err := d.Set(i, i, 1); err != nil {
			return nil, err
		}
	}
	for i := 0; i < g; i++ {
		for j := 0; j < e; j++ {
			v, aerr := a.At(i, j)
			if aerr != nil {
				return nil, aerr
			}
			if err := d.Set(e+i, j, v); err != nil {
				return nil, err
			}
		}
		for j := 0; j < g; j++ {
			v, berr := b.At(i, j)
			if berr != nil {
				return nil, berr
			}
			if err := d.Set(e+i, e+j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
