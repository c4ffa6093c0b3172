// SPDX-License-Identifier: MIT

// Package qmat: Hermitian eigendecomposition and matrix exponential.
//
// Every matrix this library exponentiates has the form z·H with H Hermitian
// (evolution propagators, picture changes, Gibbs exponents), so a dedicated
// Hermitian solver covers the whole surface. Rather than hand-rolling a
// complex Jacobi sweep, the solver maps H = A + iB onto the standard real
// symmetric 2n×2n embedding
//
//	M = ⎡A −B⎤
//	    ⎣B  A⎦
//
// and delegates to gonum's EigenSym. Each eigenvalue λ of H appears twice in
// M's ascending spectrum; an eigenvector (x; y) of M yields the complex
// eigenvector x + iy of H. A modified Gram–Schmidt pass over the 2n
// candidates keeps one orthonormal representative per copy.

package qmat

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultHermTol is the absolute tolerance used to accept an input as
	// Hermitian before eigendecomposition.
	DefaultHermTol = 1e-8

	// independenceTol is the residual norm below which a candidate
	// eigenvector is considered a duplicate of the accepted set.
	independenceTol = 1e-6
)

// EigenHerm diagonalizes the Hermitian matrix a.
// It returns the eigenvalues in ascending order and a unitary matrix whose
// k-th column is the eigenvector of the k-th eigenvalue.
//
// Errors:
//   - ErrNonSquare     — a is not square.
//   - ErrNotHermitian  — a deviates from a† beyond DefaultHermTol.
//   - ErrEigenFailed   — the backing factorization did not converge or a
//     full eigenbasis could not be recovered.
//
// Complexity: O(n³).
func EigenHerm(a *Dense) ([]float64, *Dense, error) {
	if !a.IsSquare() {
		return nil, nil, ErrNonSquare
	}
	if !IsHermitian(a, DefaultHermTol) {
		return nil, nil, ErrNotHermitian
	}
	n := a.r

	// Stage 1: build the 2n×2n real symmetric embedding.
	embed := make([]float64, 2*n*2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(a.data[i*n+j]), imag(a.data[i*n+j])
			embed[i*2*n+j] = re
			embed[i*2*n+j+n] = -im
			embed[(i+n)*2*n+j] = im
			embed[(i+n)*2*n+j+n] = re
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(2*n, embed), true); !ok {
		return nil, nil, ErrEigenFailed
	}
	realVals := es.Values(nil) // ascending order
	var realVecs mat.Dense
	es.VectorsTo(&realVecs)

	// Stage 2: fold candidate columns back to complex space and keep one
	// orthonormal representative per doubled eigenvalue.
	vals := make([]float64, 0, n)
	vecs := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	kept := make([]*Dense, 0, n)
	for k := 0; k < 2*n && len(kept) < n; k++ {
		cand := &Dense{r: n, c: 1, data: make([]complex128, n)}
		for i := 0; i < n; i++ {
			cand.data[i] = complex(realVecs.At(i, k), realVecs.At(i+n, k))
		}
		// Modified Gram–Schmidt against the accepted set.
		for _, u := range kept {
			overlap, _ := Dot(u, cand)
			for i := 0; i < n; i++ {
				cand.data[i] -= overlap * u.data[i]
			}
		}
		if Norm2(cand) <= independenceTol {
			continue // duplicate copy of an already-kept eigenvector
		}
		unit, err := Normalize(cand)
		if err != nil {
			return nil, nil, ErrEigenFailed
		}
		for i := 0; i < n; i++ {
			vecs.data[i*n+len(kept)] = unit.data[i]
		}
		kept = append(kept, unit)
		vals = append(vals, realVals[k])
	}
	if len(kept) != n {
		return nil, nil, ErrEigenFailed
	}
	return vals, vecs, nil
}

// ExpHerm returns U·diag(exp(z·λᵢ))·U† for the Hermitian matrix a with
// eigenvalues λᵢ and eigenvectors U — the matrix exponential exp(z·a).
// All evolution propagators in this library are built through this kernel.
//
// Errors: those of EigenHerm.
// Complexity: O(n³).
func ExpHerm(a *Dense, z complex128) (*Dense, error) {
	vals, vecs, err := EigenHerm(a)
	if err != nil {
		return nil, err
	}
	n := a.r
	expD := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i, lambda := range vals {
		expD.data[i*n+i] = cmplx.Exp(z * complex(lambda, 0))
	}
	tmp, err := Mul(vecs, expD)
	if err != nil {
		return nil, err
	}
	return Mul(tmp, Adjoint(vecs))
}
