package fixpoint_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absDist(a, b float64) float64 { return math.Abs(a - b) }

// TestSolve_Scalar converges the classic cos fixed point (Dottie number,
// rate sin(1) < 1 on [0,1]).
func TestSolve_Scalar(t *testing.T) {
	x, stats, err := fixpoint.Solve(math.Cos, absDist, 0.5, math.Sin(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, x, 1e-9, "Dottie number")
	assert.Greater(t, stats.Iterations, 1)
	assert.LessOrEqual(t, stats.Residual, fixpoint.DefaultTol)
}

// TestSolve_VectorContraction converges an affine contraction on ℝ² whose
// fixed point is known in closed form: h(x) = x/2 + (1, 2) has fixed point
// (2, 4), rate 1/2.
func TestSolve_VectorContraction(t *testing.T) {
	h := func(x linalg.Vec) linalg.Vec { return x.Scale(0.5).Add(linalg.Vec{1, 2}) }
	dist := func(a, b linalg.Vec) float64 { return a.Dist(b) }

	x, _, err := fixpoint.Solve(h, dist, linalg.Zero(2), 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-9)
	assert.InDelta(t, 4.0, x[1], 1e-9)
}

// TestSolve_FixedStartReturnsImmediately: a starting point that is already
// fixed returns after a single application — the trivial-space edge case.
func TestSolve_FixedStartReturnsImmediately(t *testing.T) {
	id := func(x float64) float64 { return x }

	x, stats, err := fixpoint.Solve(id, absDist, 3.0, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
	want := fixpoint.Stats{Iterations: 1, Residual: 0}
	assert.Empty(t, cmp.Diff(want, stats), "exactly one application, zero residual")
}

// TestSolve_APrioriBound verifies dist(x₀, x*) ≤ d₀/(1−rate) on the affine
// contraction above.
func TestSolve_APrioriBound(t *testing.T) {
	h := func(x float64) float64 { return 0.5*x + 1 } // fixed point 2, rate 1/2
	x0 := 0.0
	d0 := absDist(x0, h(x0)) // = 1

	x, _, err := fixpoint.Solve(h, absDist, x0, 0.5)
	require.NoError(t, err)
	assert.LessOrEqual(t, absDist(x0, x), fixpoint.APrioriBound(d0, 0.5)+1e-12,
		"a-priori bound d₀/(1−rate) = 2 must contain the fixed point")
}

// TestSolve_BadInputs covers the validation sentinels.
func TestSolve_BadInputs(t *testing.T) {
	id := func(x float64) float64 { return x }

	_, _, err := fixpoint.Solve[float64](nil, absDist, 0, 0.5)
	assert.ErrorIs(t, err, fixpoint.ErrNilStep)
	_, _, err = fixpoint.Solve(id, nil, 0, 0.5)
	assert.ErrorIs(t, err, fixpoint.ErrNilDist)
	_, _, err = fixpoint.Solve(id, absDist, 0, 1.0)
	assert.ErrorIs(t, err, fixpoint.ErrBadRate)
	_, _, err = fixpoint.Solve(id, absDist, 0, -0.1)
	assert.ErrorIs(t, err, fixpoint.ErrBadRate)
}

// TestSolve_NoConvergence starves a slow contraction with a tiny cap and
// expects an honest failure, not a silent truncation.
func TestSolve_NoConvergence(t *testing.T) {
	slow := func(x float64) float64 { return 0.999999*x + 1 }

	_, stats, err := fixpoint.Solve(slow, absDist, 0.0, 0.999999,
		fixpoint.WithMaxIter(5), fixpoint.WithTol(1e-15))
	assert.ErrorIs(t, err, fixpoint.ErrNoConvergence)
	assert.Equal(t, 6, stats.Iterations, "initial application plus the cap of 5")
}

// TestSolve_GeometricCap checks that the rate-derived cap kicks in below
// MaxIter: at rate 1/2 from d₀ = 1 to tol 1e-12, about 40 halvings
// suffice, far below the default cap.
func TestSolve_GeometricCap(t *testing.T) {
	h := func(x float64) float64 { return 0.5*x + 1 }

	_, stats, err := fixpoint.Solve(h, absDist, 0.0, 0.5)
	require.NoError(t, err)
	assert.Less(t, stats.Iterations, 50, "geometric envelope bounds the work")
}

// TestOptions_PanicsOnInvalid documents the programmer-error contract of
// the option constructors.
func TestOptions_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { fixpoint.WithTol(0)(&fixpoint.Options{}) })
	assert.Panics(t, func() { fixpoint.WithMaxIter(-1)(&fixpoint.Options{}) })
}
