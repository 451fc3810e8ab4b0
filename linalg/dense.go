// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values backed by a single flat
// slice. The zero-row/zero-column matrix is legal and represents (a map on)
// the trivial space.
//
// Mutation is confined to Set; every kernel in this package allocates fresh
// results and leaves its operands untouched.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a rows×cols zero matrix.
// Returns ErrBadShape when rows or cols is negative.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from explicit row data.
// All rows must share one length (ErrDimensionMismatch) and every entry
// must be finite (ErrNaNInf).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix (ErrBadShape for negative n).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j), bounds-checked.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j), bounds-checked; non-finite v is rejected with
// ErrNaNInf.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy, independent of the original. O(r·c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// MatVec computes y = m·x.
// Returns ErrDimensionMismatch when len(x) differs from Cols.
func (m *Dense) MatVec(x Vec) (Vec, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.c {
		return nil, ErrDimensionMismatch
	}
	y := make(Vec, m.r)
	for i := 0; i < m.r; i++ {
		acc := 0.0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Mul computes the matrix product a·b.
// Returns ErrDimensionMismatch when a.Cols != b.Rows.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			baseB := k * b.c
			baseO := i * b.c
			for j := 0; j < b.c; j++ {
				out.data[baseO+j] += aik * b.data[baseB+j]
			}
		}
	}

	return out, nil
}

// Add computes a + b elementwise (ErrDimensionMismatch on shape mismatch).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1) }

// Sub computes a − b elementwise (ErrDimensionMismatch on shape mismatch).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1) }

// addSub computes out = a + sign·b for sign ∈ {+1, −1}. Shared by Add/Sub
// so validation and allocation live in one place.
func addSub(a, b *Dense, sign float64) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Scale computes α·a.
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Transpose returns aᵀ.
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// String renders the matrix row by row, mainly for test failure output.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
