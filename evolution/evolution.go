// SPDX-License-Identifier: MIT

// Package evolution: diagonalization, picture changes and free evolution.

package evolution

import (
	"errors"
	"math"

	"github.com/lzawbrito/pulsego/qmat"
)

// Diagnostic tolerances.
const (
	// UnitTraceRelTol is the relative tolerance for the unit-trace check.
	UnitTraceRelTol = 1e-6

	// PositivityTol absorbs floating-point noise around zero eigenvalues.
	PositivityTol = -1e-10
)

// ErrNonPositiveTemperature rejects canonical ensembles at T ≤ 0.
var ErrNonPositiveTemperature = errors.New("evolution: temperature must be positive")

// ErrNotAntiHermitian rejects evolution generators whose exponential would
// not be unitary.
var ErrNotAntiHermitian = errors.New("evolution: generator is not anti-Hermitian")

// ExpDiagonalize decomposes the Hermitian operator q into its eigenbasis
// and exponentiates the eigenvalue diagonal.
//
// It returns (u, d, dexp): u has the eigenvectors as columns in the order
// produced by the decomposition (ascending eigenvalues), d is the diagonal
// eigenvalue matrix, and dexp is diag(exp(λᵢ)) — the elementwise exponential
// of the eigenvalues, so q's exponential is u·dexp·u†.
//
// Non-Hermitian input is rejected with qmat.ErrNotHermitian; there is no
// fallback for non-diagonalizable operators.
func ExpDiagonalize(q *qmat.Dense) (u, d, dexp *qmat.Dense, err error) {
	vals, vecs, err := qmat.EigenHerm(q)
	if err != nil {
		return nil, nil, nil, err
	}
	n := len(vals)
	d, err = qmat.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, err
	}
	dexp, err = qmat.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, err
	}
	for i, lambda := range vals {
		if err = d.Set(i, i, complex(lambda, 0)); err != nil {
			return nil, nil, nil, err
		}
		if err = dexp.Set(i, i, complex(math.Exp(lambda), 0)); err != nil {
			return nil, nil, nil, err
		}
	}
	return vecs, d, dexp, nil
}

// conjugate returns t·q·t†.
func conjugate(q, t *qmat.Dense) (*qmat.Dense, error) {
	tmp, err := qmat.Mul(t, q)
	if err != nil {
		return nil, err
	}
	return qmat.Mul(tmp, qmat.Adjoint(t))
}

// ChangedPicture casts q into the picture generated by hChangeOfPicture, or
// back to the Schrödinger picture when invert is true.
//
// The transform is T·q·T† with T = exp(−i·2π·hChangeOfPicture·time); the
// exponent's sign flips under invert. hChangeOfPicture is expressed in MHz
// (typically a term of the Hamiltonian) and time in microseconds.
func ChangedPicture(q, hChangeOfPicture *qmat.Dense, time float64, invert bool) (*qmat.Dense, error) {
	phase := complex(0, -2*math.Pi*time)
	if invert {
		phase = -phase
	}
	t, err := qmat.ExpHerm(hChangeOfPicture, phase)
	if err != nil {
		return nil, err
	}
	return conjugate(q, t)
}

// FreeEvolution evolves the density matrix q through the given time under
// the stationary Hamiltonian: U·q·U† with U = exp(i·2π·h·time).
// h is in MHz, time in microseconds; 2π converts frequency to angular phase.
func FreeEvolution(q, staticHamiltonian *qmat.Dense, time float64) (*qmat.Dense, error) {
	u, err := qmat.ExpHerm(staticHamiltonian, complex(0, 2*math.Pi*time))
	if err != nil {
		return nil, err
	}
	return conjugate(q, u)
}

// EvolveUnderGenerator evolves the density matrix q by the exponential of an
// anti-Hermitian generator Ω (typically the summed Magnus terms): U·q·U†
// with U = exp(Ω).
//
// Ω must satisfy Ω† = −Ω, so that iΩ is Hermitian and U is unitary;
// ErrNotAntiHermitian otherwise.
func EvolveUnderGenerator(q, generator *qmat.Dense) (*qmat.Dense, error) {
	// K = −i·Ω is Hermitian exactly when Ω is anti-Hermitian; exp(i·K) = exp(Ω).
	k := qmat.Scale(-1i, generator)
	if !qmat.IsHermitian(k, qmat.DefaultHermTol) {
		return nil, ErrNotAntiHermitian
	}
	u, err := qmat.ExpHerm(k, 1i)
	if err != nil {
		return nil, err
	}
	return conjugate(q, u)
}

// UnitTrace reports whether tr(q) equals 1 within UnitTraceRelTol relative
// tolerance. Pure predicate; non-square input reports false.
func UnitTrace(q *qmat.Dense) bool {
	tr, err := qmat.Trace(q)
	if err != nil {
		return false
	}
	return math.Abs(real(tr)-1) <= UnitTraceRelTol && math.Abs(imag(tr)) <= UnitTraceRelTol
}

// Positivity reports whether all eigenvalues of q are nonnegative, allowing
// PositivityTol of floating-point noise below zero. Pure predicate;
// non-Hermitian or non-square input reports false.
func Positivity(q *qmat.Dense) bool {
	vals, _, err := qmat.EigenHerm(q)
	if err != nil {
		return false
	}
	for _, v := range vals {
		if v < PositivityTol {
			return false
		}
	}
	return true
}

// Commutator returns [a, b] = a·b − b·a.
// Operands must be square and of equal shape; qmat.ErrDimensionMismatch
// otherwise.
func Commutator(a, b *qmat.Dense) (*qmat.Dense, error) {
	ab, err := qmat.Mul(a, b)
	if err != nil {
		return nil, err
	}
	ba, err := qmat.Mul(b, a)
	if err != nil {
		return nil, err
	}
	return qmat.Sub(ab, ba)
}
