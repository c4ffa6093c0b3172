// SPDX-License-Identifier: MIT

// Package qubit: the canonical single-qubit space and state construction.

package qubit

import (
	"math"
	"math/cmplx"

	"github.com/lzawbrito/pulsego/qmat"
)

// Space is the canonical single-factor qubit space: a two-dimensional
// Hilbert space with eigenbasis |0⟩, |1⟩ and a defining observable A such
// that A|0⟩ = +1·|0⟩ and A|1⟩ = −1·|1⟩ (Pauli-Z).
//
// The two basis kets are cached at construction; accessors hand out clones
// so the cached values stay immutable.
type Space struct {
	CompositeSpace
	zero, one *qmat.Dense
}

// NewSpace creates the single-qubit space with its cached basis kets.
func NewSpace() Space {
	cs := CompositeSpace{n: 1}
	zero, err := cs.BasisFromBits([]int{0})
	if err != nil {
		panic("qubit: single-qubit basis construction failed: " + err.Error())
	}
	one, err := cs.BasisFromBits([]int{1})
	if err != nil {
		panic("qubit: single-qubit basis construction failed: " + err.Error())
	}
	return Space{CompositeSpace: cs, zero: zero, one: one}
}

// Zero returns the basis ket |0⟩.
func (s Space) Zero() *qmat.Dense { return s.zero.Clone() }

// One returns the basis ket |1⟩.
func (s Space) One() *qmat.Dense { return s.one.Clone() }

// Observable returns the defining Pauli-Z observable diag(1, −1).
func (s Space) Observable() *qmat.Dense {
	obs, err := qmat.FromRows([][]complex128{
		{1, 0},
		{0, -1},
	})
	if err != nil {
		panic("qubit: observable construction failed: " + err.Error())
	}
	return obs
}

// StateOption configures MakeState. Exactly one source of amplitudes must be
// supplied; angles take priority when both are present.
type StateOption func(*stateConfig)

type stateConfig struct {
	hasAngles        bool
	azimuthal, polar float64
	hasCoeffs        bool
	c0, c1           complex128
}

// WithAngles specifies the state by its Bloch-sphere angles:
// cos(polar/2)·|0⟩ + sin(polar/2)·e^{i·azimuthal}·|1⟩.
func WithAngles(azimuthal, polar float64) StateOption {
	return func(cfg *stateConfig) {
		cfg.hasAngles = true
		cfg.azimuthal = azimuthal
		cfg.polar = polar
	}
}

// WithCoefficients specifies the state as c0·|0⟩ + c1·|1⟩. The pair is
// L2-normalized before use, so any nonzero pair is a valid input.
func WithCoefficients(c0, c1 complex128) StateOption {
	return func(cfg *stateConfig) {
		cfg.hasCoeffs = true
		cfg.c0 = c0
		cfg.c1 = c1
	}
}

// MakeState is the sole state-construction entry point for single qubits.
//
// With WithAngles(α, β) it builds cos(β/2)|0⟩ + sin(β/2)e^{iα}|1⟩; otherwise
// WithCoefficients(c0, c1) is normalized and combined as c0|0⟩ + c1|1⟩.
// Angles win when both options are given.
//
// Errors:
//   - ErrUnderspecifiedState — neither option supplied.
//   - qmat.ErrZeroNorm       — coefficients that cannot be normalized.
func (s Space) MakeState(opts ...StateOption) (*State, error) {
	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.hasAngles:
		c0 := complex(math.Cos(cfg.polar/2), 0)
		c1 := complex(math.Sin(cfg.polar/2), 0) * cmplx.Exp(complex(0, cfg.azimuthal))
		vec, err := qmat.NewVector([]complex128{c0, c1})
		if err != nil {
			return nil, err
		}
		return NewState(s.CompositeSpace, vec)

	case cfg.hasCoeffs:
		vec, err := qmat.NewVector([]complex128{cfg.c0, cfg.c1})
		if err != nil {
			return nil, err
		}
		unit, err := qmat.Normalize(vec)
		if err != nil {
			return nil, err
		}
		return NewState(s.CompositeSpace, unit)

	default:
		return nil, ErrUnderspecifiedState
	}
}
