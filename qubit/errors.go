// SPDX-License-Identifier: MIT
// Package qubit: sentinel error set.
// Representation errors (malformed shapes, failed unitarity, bad basis
// input, ambiguous state construction) are reported through this closed set
// and matched via errors.Is; nothing here panics on user input.

package qubit

import "errors"

var (
	// ErrInvalidFactorCount indicates a composite space with fewer than one factor.
	ErrInvalidFactorCount = errors.New("qubit: composite space requires at least one factor")

	// ErrBadBasisBit indicates a basis bit outside {0, 1}.
	ErrBadBasisBit = errors.New("qubit: basis bits must be 0 or 1")

	// ErrBasisLength indicates a bit sequence whose length differs from the
	// space's factor count.
	ErrBasisLength = errors.New("qubit: bit sequence length does not match factor count")

	// ErrBadShape indicates a state or gate matrix whose shape is
	// incompatible with the space dimension 2ⁿ.
	ErrBadShape = errors.New("qubit: matrix shape incompatible with space dimension")

	// ErrNotUnitary indicates a gate matrix failing U†U = I within
	// DefaultUnitaryTol.
	ErrNotUnitary = errors.New("qubit: gate matrix is not unitary")

	// ErrSpaceMismatch indicates a gate applied to a state from a space with
	// a different factor count.
	ErrSpaceMismatch = errors.New("qubit: gate and state act on different spaces")

	// ErrUnderspecifiedState indicates MakeState called with neither angles
	// nor coefficients.
	ErrUnderspecifiedState = errors.New("qubit: state requires angles or coefficients")
)
