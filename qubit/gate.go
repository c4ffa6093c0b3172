// SPDX-License-Identifier: MIT

// Package qubit: unitary gates and the fixed gate constants.

package qubit

import (
	"math"

	"github.com/lzawbrito/pulsego/qmat"
)

// DefaultUnitaryTol is the absolute tolerance for the U†U = I check at gate
// construction.
const DefaultUnitaryTol = 1e-9

// Gate is a quantum n-gate: a unitary operator on an n-fold qubit space.
// With n = 1 one has a unary gate, with n = 2 a binary gate. Gates are
// immutable after construction and safe to share.
type Gate struct {
	space CompositeSpace
	mat   *qmat.Dense
}

// NewGate validates x against the target space and wraps it as a gate.
//
// Errors:
//   - ErrBadShape   — x is not 2ⁿ×2ⁿ for the space's factor count n.
//   - ErrNotUnitary — U†U deviates from the identity beyond DefaultUnitaryTol.
//
// The matrix is cloned; later mutation of x does not affect the gate.
func NewGate(x *qmat.Dense, space CompositeSpace) (*Gate, error) {
	dim := space.Dim()
	if x.Rows() != dim || x.Cols() != dim {
		return nil, ErrBadShape
	}
	if !qmat.IsUnitary(x, DefaultUnitaryTol) {
		return nil, ErrNotUnitary
	}
	return &Gate{space: space, mat: x.Clone()}, nil
}

// Space returns the space this gate acts on.
func (g *Gate) Space() CompositeSpace { return g.space }

// Matrix returns a copy of the gate's matrix representation.
func (g *Gate) Matrix() *qmat.Dense { return g.mat.Clone() }

// Apply maps a state through the gate: ψ ↦ U·ψ.
// The state must live on a space with the same factor count as the gate;
// mismatches fail loudly with ErrSpaceMismatch rather than producing a
// wrong-shaped result.
func (g *Gate) Apply(s *State) (*State, error) {
	if g.space != s.space {
		return nil, ErrSpaceMismatch
	}
	out, err := qmat.Mul(g.mat, s.vec)
	if err != nil {
		return nil, err
	}
	return &State{space: s.space, vec: out}, nil
}

// mustGate builds a gate constant, panicking on failure. Only used for the
// package-level constants below, so the unitarity check runs exactly once at
// initialization.
func mustGate(rows [][]complex128, space CompositeSpace) *Gate {
	m, err := qmat.FromRows(rows)
	if err != nil {
		panic("qubit: gate constant matrix: " + err.Error())
	}
	g, err := NewGate(m, space)
	if err != nil {
		panic("qubit: gate constant validation: " + err.Error())
	}
	return g
}

// hInv is 1/√2, the Hadamard normalization.
var hInv = complex(1/math.Sqrt2, 0)

// Hadamard is the fixed single-qubit Hadamard gate, validated once at
// package initialization and immutable afterwards.
var Hadamard = mustGate([][]complex128{
	{hInv, hInv},
	{hInv, -hInv},
}, CompositeSpace{n: 1})

// CNOT is the fixed two-qubit controlled-NOT gate on the composite space
// H^⊗2, validated once at package initialization and immutable afterwards.
var CNOT = mustGate([][]complex128{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 1},
	{0, 0, 1, 0},
}, CompositeSpace{n: 2})
