// SPDX-License-Identifier: MIT

// Package evolution: canonical (thermal) density matrices.

package evolution

import (
	"math"

	"github.com/lzawbrito/pulsego/qmat"
)

// CODATA 2018 values, SI units.
const (
	// PlanckConstant is h in J·s.
	PlanckConstant = 6.62607015e-34

	// BoltzmannConstant is k_B in J/K.
	BoltzmannConstant = 1.380649e-23
)

// CanonicalDensityMatrix returns the density matrix of a canonical ensemble
// at thermal equilibrium: exp(−(h/k_B)·H·2π·10⁶ / T), normalized to unit
// trace. The Hamiltonian is expressed in MHz; the 2π·10⁶ factor restores
// angular frequency in Hz so the Planck/Boltzmann ratio carries the right
// units. Temperature is in kelvin.
//
// Errors:
//   - ErrNonPositiveTemperature — temperature ≤ 0.
//   - qmat.ErrNotHermitian      — the Hamiltonian is not Hermitian.
func CanonicalDensityMatrix(hamiltonian *qmat.Dense, temperature float64) (*qmat.Dense, error) {
	if temperature <= 0 {
		return nil, ErrNonPositiveTemperature
	}
	scale := -(PlanckConstant / BoltzmannConstant) * 2 * math.Pi * 1e6 / temperature
	numerator, err := qmat.ExpHerm(hamiltonian, complex(scale, 0))
	if err != nil {
		return nil, err
	}
	return qmat.UnitNormalize(numerator)
}
