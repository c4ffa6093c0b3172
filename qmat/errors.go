// SPDX-License-Identifier: MIT
// Package qmat: sentinel error set.
// All public APIs return these sentinels (optionally wrapped with call
// context via %w); tests match them with errors.Is. No panics on malformed
// user input — panics are reserved for programmer errors (nil RNG).

package qmat

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("qmat: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("qmat: index out of bounds")

	// ErrBadData indicates that a flat data slice does not match the requested shape.
	ErrBadData = errors.New("qmat: data length does not match shape")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub on different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("qmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("qmat: matrix is not square")

	// ErrNotVector signals that an n×1 column vector was required.
	ErrNotVector = errors.New("qmat: operand is not a column vector")

	// ErrZeroNorm is returned by Normalize when the input has zero L2 norm.
	ErrZeroNorm = errors.New("qmat: cannot normalize a zero vector")

	// ErrZeroTrace is returned by UnitNormalize when the trace vanishes.
	ErrZeroTrace = errors.New("qmat: cannot unit-normalize a traceless matrix")

	// ErrNotHermitian signals that a Hermitian operator was required but the
	// input violates A = A† beyond DefaultHermTol.
	ErrNotHermitian = errors.New("qmat: matrix is not Hermitian within tolerance")

	// ErrEigenFailed indicates that the eigendecomposition backend failed to
	// converge or produced a defective eigenbasis.
	ErrEigenFailed = errors.New("qmat: eigendecomposition failed")
)
