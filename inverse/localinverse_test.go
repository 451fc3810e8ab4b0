package inverse_test

import (
	"testing"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/inverse"
	"github.com/katalvlaran/localinv/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactDoubling builds a zero-deviation witness: f(x) = 2x, c = 0.
func exactDoubling(t *testing.T) *approx.Witness {
	t.Helper()
	a, err := linalg.NewDenseFromRows([][]float64{{2}})
	require.NoError(t, err)
	iso, err := linalg.NewIso(a)
	require.NoError(t, err)
	f := func(x linalg.Vec) linalg.Vec { return x.Scale(2) }
	w, err := approx.NewWitness(f, iso, approx.Whole{}, 0)
	require.NoError(t, err)

	return w
}

// TestBuildLocalInverse_ExactLinear: with an exactly linear f the Newton
// map lands on the preimage in one step — Inverse(y) = y/2 to machine
// precision for every sampled y.
func TestBuildLocalInverse_ExactLinear(t *testing.T) {
	h, err := inverse.BuildLocalInverse(exactDoubling(t), linalg.Vec{0}, 100)
	require.NoError(t, err)

	for _, yv := range []float64{-50, -3, 0, 0.125, 7, 42} {
		x, _, ierr := h.Inverse(linalg.Vec{yv})
		require.NoError(t, ierr)
		assert.InDelta(t, yv/2, x[0], 1e-15, "exact linear inverse")
	}
}

// TestLocalInverse_RoundTrip checks both inverse identities on full
// neighborhoods of the perturbed doubling map.
func TestLocalInverse_RoundTrip(t *testing.T) {
	w := perturbedWitness(t)
	h, err := inverse.BuildLocalInverse(w, linalg.Vec{0}, 5)
	require.NoError(t, err)

	// Inverse ∘ Forward = id on the source.
	for _, xv := range []float64{-4.9, -2, 0, 1.5, 4.9} {
		x := linalg.Vec{xv}
		require.True(t, h.MapSource(x))
		back, _, ierr := h.Inverse(h.Forward(x))
		require.NoError(t, ierr)
		assert.InDelta(t, xv, back[0], 1e-9, "left inverse at x=%g", xv)
	}

	// Forward ∘ Inverse = id on the target (radius 1.99·5 = 9.95).
	for _, yv := range []float64{-9.9, -1, 0, 3.3, 9.9} {
		y := linalg.Vec{yv}
		require.True(t, h.MapTarget(y))
		x, _, ierr := h.Inverse(y)
		require.NoError(t, ierr)
		assert.InDelta(t, yv, h.Forward(x)[0], 1e-9, "right inverse at y=%g", yv)
	}
}

// TestLocalInverse_SourceTargetGeometry pins the advertised balls.
func TestLocalInverse_SourceTargetGeometry(t *testing.T) {
	w := perturbedWitness(t)
	h, err := inverse.BuildLocalInverse(w, linalg.Vec{0}, 10)
	require.NoError(t, err)

	src := h.Source()
	assert.True(t, src.Open)
	assert.Equal(t, 10.0, src.Radius)

	tgt := h.Target()
	assert.True(t, tgt.Open)
	assert.InDelta(t, 19.9, tgt.Radius, 1e-9, "(1/N − c)·ε = 1.99·10")
	assert.InDelta(t, 0.0, tgt.Center[0], 1e-12, "centered at f(0) = 0")

	assert.True(t, h.MapSource(linalg.Vec{9.9}))
	assert.False(t, h.MapSource(linalg.Vec{10}), "source ball is open")
	assert.False(t, h.MapTarget(linalg.Vec{19.9}), "target ball is open")
}

// TestLocalInverse_InverseIsLipschitz verifies the continuity transfer:
// the inverse contracts targets by at most the anti-Lipschitz constant
// (1/N − c)⁻¹ ≈ 0.5025.
func TestLocalInverse_InverseIsLipschitz(t *testing.T) {
	w := perturbedWitness(t)
	h, err := inverse.BuildLocalInverse(w, linalg.Vec{0}, 5)
	require.NoError(t, err)

	k := w.AntiLipschitz()
	ys := []float64{-8, -3, -0.5, 0.1, 2, 7.7}
	xs := make([]linalg.Vec, len(ys))
	for i, yv := range ys {
		x, _, ierr := h.Inverse(linalg.Vec{yv})
		require.NoError(t, ierr)
		xs[i] = x
	}
	for i := range ys {
		for j := i + 1; j < len(ys); j++ {
			lhs := xs[i].Dist(xs[j])
			rhs := k * (linalg.Vec{ys[i]}).Dist(linalg.Vec{ys[j]})
			assert.LessOrEqual(t, lhs, rhs+1e-9)
		}
	}
}

// TestBuildLocalInverse_Validation covers the all-or-nothing guards.
func TestBuildLocalInverse_Validation(t *testing.T) {
	w := perturbedWitness(t)

	_, err := inverse.BuildLocalInverse(nil, linalg.Vec{0}, 1)
	assert.ErrorIs(t, err, inverse.ErrNilWitness)
	_, err = inverse.BuildLocalInverse(w, linalg.Vec{0}, 0)
	assert.ErrorIs(t, err, inverse.ErrBadRadius)
	_, err = inverse.BuildLocalInverse(w, linalg.Vec{0, 0}, 1)
	assert.ErrorIs(t, err, inverse.ErrBadBase)
}

// TestBuildLocalInverse_DomainTooSmall: a working ball that provably
// sticks out of a ball domain is rejected at build time.
func TestBuildLocalInverse_DomainTooSmall(t *testing.T) {
	w := perturbedWitness(t)
	small, err := w.Restrict(approx.ClosedBall(linalg.Vec{0}, 1))
	require.NoError(t, err)

	_, err = inverse.BuildLocalInverse(small, linalg.Vec{0}, 2)
	assert.ErrorIs(t, err, inverse.ErrDomainTooSmall)

	h, err := inverse.BuildLocalInverse(small, linalg.Vec{0}, 1)
	require.NoError(t, err, "ε equal to the closed domain radius fits")
	assert.NotNil(t, h)
}

// TestLocalInverse_TrivialSpace: the dimension-0 fast path succeeds and
// inverts the unique point without iterating.
func TestLocalInverse_TrivialSpace(t *testing.T) {
	e, err := linalg.NewDense(0, 0)
	require.NoError(t, err)
	iso, err := linalg.NewIso(e)
	require.NoError(t, err)
	id := func(x linalg.Vec) linalg.Vec { return x.Clone() }
	w, err := approx.NewWitness(id, iso, approx.Whole{}, 0)
	require.NoError(t, err)

	h, err := inverse.BuildLocalInverse(w, linalg.Vec{}, 1)
	require.NoError(t, err)
	x, stats, err := h.Inverse(linalg.Vec{})
	require.NoError(t, err)
	assert.Equal(t, 0, x.Dim())
	assert.Equal(t, 1, stats.Iterations, "no iteration beyond the first application")
}

// TestLocalInverse_DerivativeInv returns A⁻¹ (a copy).
func TestLocalInverse_DerivativeInv(t *testing.T) {
	w := perturbedWitness(t)
	h, err := inverse.BuildLocalInverse(w, linalg.Vec{0}, 1)
	require.NoError(t, err)

	d := h.DerivativeInv()
	v, aerr := d.At(0, 0)
	require.NoError(t, aerr)
	assert.InDelta(t, 0.5, v, 1e-12)
}
