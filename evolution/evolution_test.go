package evolution_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzawbrito/pulsego/evolution"
	"github.com/lzawbrito/pulsego/qmat"
	"github.com/lzawbrito/pulsego/qubit"
)

func pauli(t *testing.T, rows [][]complex128) *qmat.Dense {
	t.Helper()
	m, err := qmat.FromRows(rows)
	require.NoError(t, err)
	return m
}

func pauliX(t *testing.T) *qmat.Dense {
	return pauli(t, [][]complex128{{0, 1}, {1, 0}})
}

func pauliY(t *testing.T) *qmat.Dense {
	return pauli(t, [][]complex128{{0, -1i}, {1i, 0}})
}

func pauliZ(t *testing.T) *qmat.Dense {
	return pauli(t, [][]complex128{{1, 0}, {0, -1}})
}

// plusDensity returns ρ = |+⟩⟨+|, a state that actually precesses under σz.
func plusDensity(t *testing.T) *qmat.Dense {
	t.Helper()
	st, err := qubit.NewSpace().MakeState(qubit.WithCoefficients(1, 1))
	require.NoError(t, err)
	return st.DensityMatrix()
}

// TestExpDiagonalize_PauliZ checks U, D and exp(D) on the textbook case.
func TestExpDiagonalize_PauliZ(t *testing.T) {
	u, d, dexp, err := evolution.ExpDiagonalize(pauliZ(t))
	require.NoError(t, err)

	// Ascending spectrum: D = diag(−1, 1), exp(D) = diag(1/e, e).
	d00, err := d.At(0, 0)
	require.NoError(t, err)
	d11, err := d.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, -1, real(d00), 1e-10)
	assert.InDelta(t, 1, real(d11), 1e-10)

	e00, err := dexp.At(0, 0)
	require.NoError(t, err)
	e11, err := dexp.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), real(e00), 1e-10)
	assert.InDelta(t, math.E, real(e11), 1e-10)

	// U·D·U† reconstructs the operator.
	tmp, err := qmat.Mul(u, d)
	require.NoError(t, err)
	back, err := qmat.Mul(tmp, qmat.Adjoint(u))
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(back, pauliZ(t), 1e-9))
}

// TestCommutator_SelfVanishes: [A, A] = 0 for any operator A.
func TestCommutator_SelfVanishes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a, err := qmat.RandomOperator(4, rng)
	require.NoError(t, err)

	c, err := evolution.Commutator(a, a)
	require.NoError(t, err)

	zero, err := qmat.NewDense(4, 4)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(c, zero, 1e-9), "[A,A] must vanish")
}

// TestCommutator_PauliAlgebra: [σx, σz] = −2i·σy.
func TestCommutator_PauliAlgebra(t *testing.T) {
	c, err := evolution.Commutator(pauliX(t), pauliZ(t))
	require.NoError(t, err)

	want := qmat.Scale(-2i, pauliY(t))
	assert.True(t, qmat.EqualApprox(c, want, 1e-12))
}

// TestUnitTrace_And_Positivity exercise the diagnostics on physical and
// unphysical inputs.
func TestUnitTrace_And_Positivity(t *testing.T) {
	rho := plusDensity(t)
	assert.True(t, evolution.UnitTrace(rho))
	assert.True(t, evolution.Positivity(rho))

	doubled := qmat.Scale(2, rho)
	assert.False(t, evolution.UnitTrace(doubled))

	assert.False(t, evolution.Positivity(pauliZ(t)), "σz has a −1 eigenvalue")

	random, err := qmat.RandomDensityMatrix(3, rand.New(rand.NewSource(17)))
	require.NoError(t, err)
	assert.True(t, evolution.UnitTrace(random))
	assert.True(t, evolution.Positivity(random))
}

// TestFreeEvolution_ZeroTime leaves the state untouched.
func TestFreeEvolution_ZeroTime(t *testing.T) {
	rho := plusDensity(t)
	got, err := evolution.FreeEvolution(rho, pauliZ(t), 0)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(got, rho, 1e-10))
}

// TestFreeEvolution_PreservesPhysicality: unitary conjugation keeps the
// state Hermitian with unit trace, while actually moving it.
func TestFreeEvolution_PreservesPhysicality(t *testing.T) {
	rho := plusDensity(t)
	got, err := evolution.FreeEvolution(rho, pauliZ(t), 0.2)
	require.NoError(t, err)

	assert.True(t, qmat.IsHermitian(got, 1e-9))
	assert.True(t, evolution.UnitTrace(got))
	assert.True(t, evolution.Positivity(got))
	assert.False(t, qmat.EqualApprox(got, rho, 1e-3),
		"|+⟩⟨+| must precess under σz")
}

// TestChangedPicture_RoundTrip: transforming into a picture and back is the
// identity within tolerance.
func TestChangedPicture_RoundTrip(t *testing.T) {
	rho := plusDensity(t)
	h := pauliZ(t)

	moved, err := evolution.ChangedPicture(rho, h, 0.35, false)
	require.NoError(t, err)
	back, err := evolution.ChangedPicture(moved, h, 0.35, true)
	require.NoError(t, err)

	assert.True(t, qmat.EqualApprox(back, rho, 1e-9))
	assert.False(t, qmat.EqualApprox(moved, rho, 1e-3),
		"the picture change must not be a no-op for a non-commuting state")
}

// TestEvolveUnderGenerator matches free evolution when the generator is the
// exact logarithm i·2π·H·t, and rejects non-anti-Hermitian generators.
func TestEvolveUnderGenerator(t *testing.T) {
	rho := plusDensity(t)
	h := pauliZ(t)
	time := 0.4

	gen := qmat.Scale(complex(0, 2*math.Pi*time), h)
	got, err := evolution.EvolveUnderGenerator(rho, gen)
	require.NoError(t, err)

	want, err := evolution.FreeEvolution(rho, h, time)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(got, want, 1e-9))

	_, err = evolution.EvolveUnderGenerator(rho, h)
	assert.ErrorIs(t, err, evolution.ErrNotAntiHermitian, "a Hermitian generator is not a valid evolution logarithm")
}

// TestChangedPicture_CommutingInvariant: an operator commuting with the
// generator is unchanged in the new picture.
func TestChangedPicture_CommutingInvariant(t *testing.T) {
	h := pauliZ(t)
	moved, err := evolution.ChangedPicture(h, h, 1.7, false)
	require.NoError(t, err)
	assert.True(t, qmat.EqualApprox(moved, h, 1e-9))
}
