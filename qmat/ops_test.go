package qmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzawbrito/pulsego/qmat"
)

func mustFromRows(t *testing.T, rows [][]complex128) *qmat.Dense {
	t.Helper()
	m, err := qmat.FromRows(rows)
	require.NoError(t, err)
	return m
}

// TestAddSub_ShapeMismatch verifies strict shape validation on Add and Sub.
func TestAddSub_ShapeMismatch(t *testing.T) {
	a := mustFromRows(t, [][]complex128{{1, 2}})
	b := mustFromRows(t, [][]complex128{{1}, {2}})

	_, err := qmat.Add(a, b)
	assert.ErrorIs(t, err, qmat.ErrDimensionMismatch)
	_, err = qmat.Sub(a, b)
	assert.ErrorIs(t, err, qmat.ErrDimensionMismatch)
}

// TestMul_Known verifies matrix multiplication against a hand-computed product.
func TestMul_Known(t *testing.T) {
	a := mustFromRows(t, [][]complex128{
		{1, 1i},
		{0, 2},
	})
	b := mustFromRows(t, [][]complex128{
		{3, 0},
		{1, -1i},
	})

	got, err := qmat.Mul(a, b)
	require.NoError(t, err)

	want := mustFromRows(t, [][]complex128{
		{3 + 1i, 1},
		{2, -2i},
	})
	assert.True(t, qmat.EqualApprox(got, want, 1e-12), "product mismatch:\n%v", got)

	_, err = qmat.Mul(a, mustFromRows(t, [][]complex128{{1, 2, 3}}))
	assert.ErrorIs(t, err, qmat.ErrDimensionMismatch, "inner dimensions must agree")
}

// TestAdjoint verifies the conjugate transpose entrywise.
func TestAdjoint(t *testing.T) {
	a := mustFromRows(t, [][]complex128{
		{1 + 2i, 3},
		{-1i, 4 - 1i},
	})
	got := qmat.Adjoint(a)
	want := mustFromRows(t, [][]complex128{
		{1 - 2i, 1i},
		{3, 4 + 1i},
	})
	assert.True(t, qmat.EqualApprox(got, want, 1e-12))
}

// TestTrace verifies the trace and its non-square rejection.
func TestTrace(t *testing.T) {
	a := mustFromRows(t, [][]complex128{
		{1 + 1i, 9},
		{9, 2 - 3i},
	})
	tr, err := qmat.Trace(a)
	require.NoError(t, err)
	assert.InDelta(t, 3, real(tr), 1e-12)
	assert.InDelta(t, -2, imag(tr), 1e-12)

	_, err = qmat.Trace(mustFromRows(t, [][]complex128{{1, 2}}))
	assert.ErrorIs(t, err, qmat.ErrNonSquare)
}

// TestDot_Conjugation verifies that Dot conjugates its first argument.
func TestDot_Conjugation(t *testing.T) {
	a, err := qmat.NewVector([]complex128{1i, 0})
	require.NoError(t, err)
	b, err := qmat.NewVector([]complex128{1i, 0})
	require.NoError(t, err)

	got, err := qmat.Dot(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(got), 1e-12, "⟨iψ|iψ⟩ must be +1, not −1")
	assert.InDelta(t, 0, imag(got), 1e-12)
}

// TestNormalize verifies L2 normalization and the zero-vector rejection.
func TestNormalize(t *testing.T) {
	v, err := qmat.NewVector([]complex128{3, 4i})
	require.NoError(t, err)

	unit, err := qmat.Normalize(v)
	require.NoError(t, err)
	assert.InDelta(t, 1, qmat.Norm2(unit), 1e-12)

	zero, err := qmat.NewVector([]complex128{0, 0})
	require.NoError(t, err)
	_, err = qmat.Normalize(zero)
	assert.ErrorIs(t, err, qmat.ErrZeroNorm, "zero vector must not normalize")
}

// TestUnitNormalize verifies trace normalization and the traceless rejection.
func TestUnitNormalize(t *testing.T) {
	a := mustFromRows(t, [][]complex128{
		{2, 0},
		{0, 2},
	})
	unit, err := qmat.UnitNormalize(a)
	require.NoError(t, err)
	tr, err := qmat.Trace(unit)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(tr), 1e-12)

	traceless := mustFromRows(t, [][]complex128{
		{1, 0},
		{0, -1},
	})
	_, err = qmat.UnitNormalize(traceless)
	assert.ErrorIs(t, err, qmat.ErrZeroTrace)
}

// TestIsHermitian covers both branches of the hermiticity predicate.
func TestIsHermitian(t *testing.T) {
	herm := mustFromRows(t, [][]complex128{
		{2, 1 - 1i},
		{1 + 1i, -3},
	})
	assert.True(t, qmat.IsHermitian(herm, 1e-12))

	notHerm := mustFromRows(t, [][]complex128{
		{2, 1},
		{0, -3},
	})
	assert.False(t, qmat.IsHermitian(notHerm, 1e-12))
	assert.False(t, qmat.IsHermitian(mustFromRows(t, [][]complex128{{1, 2}}), 1e-12), "non-square is never Hermitian")
}

// TestIsUnitary covers both branches of the unitarity predicate.
func TestIsUnitary(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	hadamard := mustFromRows(t, [][]complex128{
		{h, h},
		{h, -h},
	})
	assert.True(t, qmat.IsUnitary(hadamard, 1e-9))

	scaled := qmat.Scale(2, hadamard)
	assert.False(t, qmat.IsUnitary(scaled, 1e-9), "scaling breaks unitarity")
}
