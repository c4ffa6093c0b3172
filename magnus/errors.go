// SPDX-License-Identifier: MIT
// Package magnus: sentinel error set.

package magnus

import "errors"

var (
	// ErrTooFewSamples indicates a Hamiltonian sample array with fewer than
	// two entries; the integration bounds are the first and last samples, so
	// at least two are required.
	ErrTooFewSamples = errors.New("magnus: need at least two Hamiltonian samples")

	// ErrNilSample indicates a nil entry in the Hamiltonian sample array.
	ErrNilSample = errors.New("magnus: nil Hamiltonian sample")

	// ErrShapeMismatch indicates samples that are not square or disagree in
	// shape across the array.
	ErrShapeMismatch = errors.New("magnus: Hamiltonian samples must share one square shape")
)
