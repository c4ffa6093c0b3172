// SPDX-License-Identifier: MIT

// Package qmat: linear-algebra kernels over Dense.
// All kernels validate operand shapes up front, never mutate their inputs,
// and allocate exactly one result. Loop orders are fixed (i→j→k) so results
// are deterministic across runs.

package qmat

import (
	"math"
	"math/cmplx"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b *Dense, sign complex128) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}
	return out, nil
}

// Add returns a + b. Shapes must agree; ErrDimensionMismatch otherwise.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1) }

// Sub returns a − b. Shapes must agree; ErrDimensionMismatch otherwise.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1) }

// Scale returns z·a. Complexity: O(r*c).
func Scale(z complex128, a *Dense) *Dense {
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = z * a.data[i]
	}
	return out
}

// Mul returns the matrix product a·b.
// Requires a.Cols == b.Rows; ErrDimensionMismatch otherwise.
// Complexity: O(a.r * a.c * b.c), classic ikj order on the flat buffers.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}
	return out, nil
}

// Adjoint returns the conjugate transpose a†.
// Total over any shape; never fails. Complexity: O(r*c).
func Adjoint(a *Dense) *Dense {
	out := &Dense{r: a.c, c: a.r, data: make([]complex128, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = cmplx.Conj(a.data[i*a.c+j])
		}
	}
	return out
}

// Trace returns the sum of diagonal entries.
// Returns ErrNonSquare for non-square input. Complexity: O(n).
func Trace(a *Dense) (complex128, error) {
	if a.r != a.c {
		return 0, ErrNonSquare
	}
	var tr complex128
	for i := 0; i < a.r; i++ {
		tr += a.data[i*a.c+i]
	}
	return tr, nil
}

// Dot returns the conjugated inner product ⟨a|b⟩ = a†·b of two column
// vectors of equal length.
// Returns ErrNotVector or ErrDimensionMismatch on shape violations.
func Dot(a, b *Dense) (complex128, error) {
	if !a.IsVector() || !b.IsVector() {
		return 0, ErrNotVector
	}
	if a.r != b.r {
		return 0, ErrDimensionMismatch
	}
	var sum complex128
	for i := 0; i < a.r; i++ {
		sum += cmplx.Conj(a.data[i]) * b.data[i]
	}
	return sum, nil
}

// Norm2 returns the L2 (Frobenius) norm of a.
func Norm2(a *Dense) float64 {
	var sum float64
	for _, v := range a.data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

// Normalize returns a divided by its L2 norm.
// Returns ErrZeroNorm when the norm vanishes; the division that would
// silently yield non-finite entries is promoted to a checked failure.
func Normalize(a *Dense) (*Dense, error) {
	norm := Norm2(a)
	if norm == 0 {
		return nil, ErrZeroNorm
	}
	return Scale(complex(1/norm, 0), a), nil
}

// UnitNormalize returns a scaled to unit trace, a / tr(a).
// Returns ErrNonSquare for non-square input and ErrZeroTrace when the trace
// is too small to divide by.
func UnitNormalize(a *Dense) (*Dense, error) {
	tr, err := Trace(a)
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(tr) == 0 {
		return nil, ErrZeroTrace
	}
	return Scale(1/tr, a), nil
}

// EqualApprox reports whether a and b share a shape and agree elementwise
// within absolute tolerance tol.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}

// IsHermitian reports whether a is square and satisfies a = a† within tol.
func IsHermitian(a *Dense, tol float64) bool {
	if a.r != a.c {
		return false
	}
	for i := 0; i < a.r; i++ {
		for j := i; j < a.c; j++ {
			if cmplx.Abs(a.data[i*a.c+j]-cmplx.Conj(a.data[j*a.c+i])) > tol {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether a is square and satisfies a†·a = I within tol.
// Complexity: O(n³).
func IsUnitary(a *Dense, tol float64) bool {
	if a.r != a.c {
		return false
	}
	prod, err := Mul(Adjoint(a), a)
	if err != nil {
		return false
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(prod.data[i*a.c+j]-want) > tol {
				return false
			}
		}
	}
	return true
}
