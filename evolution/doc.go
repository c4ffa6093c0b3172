// Package evolution provides the operator-algebra utilities that evolve
// density matrices: diagonalization-based exponentials, picture changes,
// free evolution, physicality diagnostics and thermal-state construction.
//
// 🚀 What is evolution?
//
//	  • ExpDiagonalize — eigenvector matrix U, diagonal eigenvalue matrix D
//	    and the exponentiated diagonal exp(D) of a Hermitian operator
//	  • ChangedPicture — move an operator between the Schrödinger picture
//	    and an interaction picture generated by a Hamiltonian term
//	  • FreeEvolution — evolve a density matrix under a time-independent
//	    Hamiltonian
//	  • UnitTrace / Positivity — pure boolean diagnostics for physical states
//	  • Commutator — [A, B] = AB − BA
//	  • CanonicalDensityMatrix — the Gibbs state exp(−H/kT) at unit trace
//
// ⚙️ Unit conventions:
//
//	Hamiltonians are expressed in MHz and times in microseconds; every
//	propagator carries the 2π factor converting frequencies to angular
//	phases, and the thermal exponent carries 2π·10⁶ to recover angular Hz
//	against the Planck/Boltzmann ratio.
//
// All functions are pure: inputs are never mutated and there is no shared
// state, so everything here is safe for concurrent use.
package evolution
