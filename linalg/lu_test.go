package linalg_test

import (
	"testing"

	"github.com/katalvlaran/localinv/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconstruct multiplies L·U and undoes the row permutation, returning a
// matrix that should equal the original input.
func reconstruct(t *testing.T, l, u *linalg.Dense, perm []int) *linalg.Dense {
	t.Helper()
	lu, err := linalg.Mul(l, u)
	require.NoError(t, err)
	n := len(perm)
	out, err := linalg.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, aerr := lu.At(i, j)
			require.NoError(t, aerr)
			require.NoError(t, out.Set(perm[i], j, v))
		}
	}

	return out
}

// TestLU_Reconstruction verifies P·A = L·U on a matrix that forces a pivot
// swap (zero in the leading position).
func TestLU_Reconstruction(t *testing.T) {
	a, err := linalg.NewDenseFromRows([][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 0, 3},
	})
	require.NoError(t, err)

	l, u, perm, err := linalg.LU(a)
	require.NoError(t, err)

	got := reconstruct(t, l, u, perm)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := a.At(i, j)
			have, _ := got.At(i, j)
			assert.InDelta(t, want, have, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestLU_Singular checks that a rank-deficient matrix is reported, not
// factored.
func TestLU_Singular(t *testing.T) {
	a, err := linalg.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	require.NoError(t, err)

	_, _, _, err = linalg.LU(a)
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

// TestSolve_HandChecked solves a 2×2 system with a known solution.
func TestSolve_HandChecked(t *testing.T) {
	a, err := linalg.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 1},
	})
	require.NoError(t, err)

	x, err := linalg.Solve(a, linalg.Vec{3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 1.0, x[1], 1e-12)
}

// TestInverse_HandChecked inverts a 2×2 with determinant 1 and verifies
// A·A⁻¹ = I; also covers the pivoting path via an antidiagonal matrix.
func TestInverse_HandChecked(t *testing.T) {
	a, err := linalg.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 1},
	})
	require.NoError(t, err)

	inv, err := linalg.Inverse(a)
	require.NoError(t, err)
	wantInv := [][]float64{{1, -1}, {-1, 2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := inv.At(i, j)
			assert.InDelta(t, wantInv[i][j], v, 1e-12, "inverse entry (%d,%d)", i, j)
		}
	}

	anti, err := linalg.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	antiInv, err := linalg.Inverse(anti)
	require.NoError(t, err, "pivoting must handle a zero leading entry")
	v, _ := antiInv.At(0, 1)
	assert.InDelta(t, 1.0, v, 1e-12, "the swap matrix is its own inverse")
}

// TestInverse_Singular confirms the error path.
func TestInverse_Singular(t *testing.T) {
	z, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	_, err = linalg.Inverse(z)
	assert.ErrorIs(t, err, linalg.ErrSingular)
}
