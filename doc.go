// Package pulsego is a numerical engine for representing and evolving
// finite-dimensional quantum systems: qubit spaces, pure states, unitary
// gates, and density-matrix dynamics under time-dependent Hamiltonians.
//
// 🚀 What is pulsego?
//
//	A small, deterministic library bringing together:
//		• qmat      — complex dense matrices, Hermitian eigendecomposition,
//		              matrix exponentials, random operator generation
//		• qubit     — composite qubit spaces, basis enumeration, states,
//		              unitarity-checked gates (Hadamard, CNOT)
//		• evolution — picture changes, free evolution, physicality
//		              diagnostics, canonical (thermal) density matrices
//		• magnus    — 1st/2nd/3rd order truncated Magnus expansion of a
//		              time-sampled Hamiltonian
//
// ✨ Why pulsego?
//
//   - Validated invariants — unitarity, hermiticity, trace and positivity
//     are checked where physics demands them, with sentinel errors
//   - Deterministic numerics — fixed loop orders, reproducible results
//   - Pure values — spaces, states and gates are immutable after
//     construction and safe to share across goroutines
//   - Optional parallelism — the cubic Magnus summation partitions its
//     outer index range across workers
//
// Unit conventions: Hamiltonians in MHz, times in microseconds, and the 2π
// factors converting frequencies to angular phases are folded into every
// propagator.
//
// Quick sketch:
//
//	sp := qubit.NewSpace()
//	psi, _ := sp.MakeState(qubit.WithAngles(0, math.Pi/2))
//	rho := psi.DensityMatrix()
//	evolved, _ := evolution.FreeEvolution(rho, hamiltonian, 5.0)
//
// Dive into the per-package docs and examples/ for full scenarios.
package pulsego
