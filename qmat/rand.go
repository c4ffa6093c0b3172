// SPDX-License-Identifier: MIT

// Package qmat: random operator generation for tests and sampling.
// Matches the legacy element convention: real and imaginary parts uniform in
// [−10, 10), rounded to two decimals. Density-matrix spectra are sampled
// from the flat Dirichlet distribution, which is the uniform distribution on
// the probability simplex.

package qmat

import (
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// round2 rounds to two decimal places, mirroring the legacy generator.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// RandomOperator returns a d×d matrix whose entries have real and imaginary
// parts uniform in [−10, 10), rounded to two decimals.
// rng must be non-nil; a nil rng is a programmer error and panics.
func RandomOperator(d int, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		panic("qmat: RandomOperator requires a non-nil rng")
	}
	if d <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := &Dense{r: d, c: d, data: make([]complex128, d*d)}
	for i := range out.data {
		re := round2(20 * (rng.Float64() - 0.5))
		im := round2(20 * (rng.Float64() - 0.5))
		out.data[i] = complex(re, im)
	}
	return out, nil
}

// RandomObservable returns a random d×d Hermitian matrix, the symmetrized
// half-sum (A + A†)/2 of a RandomOperator draw.
func RandomObservable(d int, rng *rand.Rand) (*Dense, error) {
	a, err := RandomOperator(d, rng)
	if err != nil {
		return nil, err
	}
	sum, err := Add(a, Adjoint(a))
	if err != nil {
		return nil, err
	}
	return Scale(0.5, sum), nil
}

// RandomDensityMatrix returns a random d×d density matrix: U·diag(p)·U†
// where U is the eigenbasis of a random observable and p is a Dirichlet(1,…,1)
// sample, so the result is positive with unit trace by construction.
func RandomDensityMatrix(d int, rng *rand.Rand) (*Dense, error) {
	obs, err := RandomObservable(d, rng)
	if err != nil {
		return nil, err
	}
	_, u, err := EigenHerm(obs)
	if err != nil {
		return nil, err
	}

	alpha := make([]float64, d)
	for i := range alpha {
		alpha[i] = 1
	}
	dir := distmv.NewDirichlet(alpha, exprand.NewSource(rng.Uint64()))
	spectrum := dir.Rand(nil)

	diag := &Dense{r: d, c: d, data: make([]complex128, d*d)}
	for i, p := range spectrum {
		diag.data[i*d+i] = complex(p, 0)
	}
	tmp, err := Mul(u, diag)
	if err != nil {
		return nil, err
	}
	return Mul(tmp, Adjoint(u))
}
