// SPDX-License-Identifier: MIT

// Package qubit: pure states bound to a space.

package qubit

import (
	"github.com/lzawbrito/pulsego/qmat"
)

// State is a pure quantum state: a 2ⁿ×1 amplitude column vector bound to
// the space it lives in. States are immutable after construction.
type State struct {
	space CompositeSpace
	vec   *qmat.Dense
}

// NewState binds an amplitude vector to a space.
// The vector must be a 2ⁿ×1 column where n is the space's factor count
// (equivalently, log₂ of its length must equal n exactly).
// Returns ErrBadShape otherwise. The vector is cloned; the caller's copy
// stays independent.
func NewState(space CompositeSpace, vec *qmat.Dense) (*State, error) {
	if !vec.IsVector() || vec.Rows() != space.Dim() {
		return nil, ErrBadShape
	}
	return &State{space: space, vec: vec.Clone()}, nil
}

// Space returns the space this state belongs to.
func (s *State) Space() CompositeSpace { return s.space }

// Vector returns a copy of the amplitude column vector.
func (s *State) Vector() *qmat.Dense { return s.vec.Clone() }

// DensityMatrix derives the rank-one projector |ψ⟩⟨ψ| expressed in the
// space's orthonormal basis: ρ[i][j] = ⟨eᵢ|ψ⟩·⟨ψ|eⱼ⟩.
//
// For a normalized state the result is Hermitian with unit trace; this is a
// tested invariant. The matrix is rebuilt on every call, never cached.
// Complexity: O(4ⁿ·2ⁿ) through the basis inner products.
func (s *State) DensityMatrix() *qmat.Dense {
	onb := s.space.ONB()
	dim := len(onb)
	data := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		bra, err := qmat.Dot(onb[i], s.vec)
		if err != nil {
			panic("qubit: density matrix inner product failed: " + err.Error())
		}
		for j := 0; j < dim; j++ {
			ket, err := qmat.Dot(s.vec, onb[j])
			if err != nil {
				panic("qubit: density matrix inner product failed: " + err.Error())
			}
			data[i*dim+j] = bra * ket
		}
	}
	rho, err := qmat.FromSlice(dim, dim, data)
	if err != nil {
		panic("qubit: density matrix assembly failed: " + err.Error())
	}
	return rho
}
