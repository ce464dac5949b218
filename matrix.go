package qsim

import (
	"fmt"
	"math/bits"
	"math/cmplx"
)

// Matrix is a dense, row-major complex matrix.
type Matrix [][]complex128

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Diagonal builds a square matrix with the given values on its diagonal.
func Diagonal(values ...complex128) Matrix {
	m := zeros(len(values), len(values))
	for i, v := range values {
		m[i][i] = v
	}
	return m
}

func zeros(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Dim is the row count; only meaningful for square matrices.
func (m Matrix) Dim() int {
	return len(m)
}

/*
arity validates that m is square with a power of two dimension of at least
two and returns log2 of that dimension.
*/
func (m Matrix) arity() (int, error) {
	n := len(m)
	if n < 2 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: got %d rows", ErrInvalidMatrix, n)
	}
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), n)
		}
	}
	return bits.TrailingZeros(uint(n)), nil
}

func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]complex128(nil), row...)
	}
	return out
}

// Adjoint returns the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	out := zeros(len(m[0]), len(m))
	for i, row := range m {
		for j, v := range row {
			out[j][i] = cmplx.Conj(v)
		}
	}
	return out
}

// Mul returns m·o. The caller guarantees the inner dimensions agree.
func (m Matrix) Mul(o Matrix) Matrix {
	out := zeros(len(m), len(o[0]))
	for i, row := range m {
		for k, a := range row {
			if a == 0 {
				continue
			}
			for j, b := range o[k] {
				out[i][j] += a * b
			}
		}
	}
	return out
}

// Scale multiplies every element by s.
func (m Matrix) Scale(s complex128) Matrix {
	out := m.Clone()
	for _, row := range out {
		for j := range row {
			row[j] *= s
		}
	}
	return out
}

// BlockDiag places a and b on the diagonal of a larger zero matrix.
func BlockDiag(a, b Matrix) Matrix {
	n := len(a) + len(b)
	out := zeros(n, n)
	for i, row := range a {
		copy(out[i], row)
	}
	for i, row := range b {
		copy(out[len(a)+i][len(a):], row)
	}
	return out
}

// IsIdentity reports whether every element is within tol of the identity.
// A NaN or infinite element is never within tol.
func (m Matrix) IsIdentity(tol float64) bool {
	for i, row := range m {
		for j, v := range row {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if !(cmplx.Abs(v-want) <= tol) {
				return false
			}
		}
	}
	return true
}

// Equal reports elementwise equality within tol.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	if len(m) != len(o) {
		return false
	}
	for i, row := range m {
		if len(row) != len(o[i]) {
			return false
		}
		for j, v := range row {
			if !(cmplx.Abs(v-o[i][j]) <= tol) {
				return false
			}
		}
	}
	return true
}
