// Package magnus computes the truncated Magnus expansion of a time-sampled,
// time-dependent Hamiltonian.
//
// 🚀 What is the Magnus expansion?
//
//	For a time-dependent Hamiltonian H(t), the evolution operator can be
//	written as the exponential of a single generator Ω(t) expressed as a
//	series of nested integrals of commutators of H at different times.
//	This package evaluates the discretized 1st, 2nd and 3rd order terms of
//	that series from an equally spaced sample array h[0..N−1], whose first
//	and last entries are the integration bounds:
//
//	  • FirstTerm  — trapezoidal integral of h, scaled by −i·2π:  O(N)
//	  • SecondTerm — double commutator sum over t2 ≤ t1:          O(N²)
//	  • ThirdTerm  — triple nested-commutator sum over t3≤t2≤t1:  O(N³)
//	  • Generator  — the sum of terms up to a chosen order
//
// ✨ Key properties:
//   - Hamiltonians in MHz, timeStep in microseconds; the 2π factors fold
//     frequency-to-angular-phase conversion into each term.
//   - Each term may be used alone for cheaper, lower-fidelity
//     approximations; the caller sums whichever terms it wants.
//   - The outer summation index can be partitioned across goroutines with
//     WithWorkers(w); each worker reduces a contiguous chunk and chunks are
//     combined in index order, so a given worker count is deterministic.
//
// ⚙️ Usage:
//
//	gen, err := magnus.Generator(h, dt, magnus.WithOrder(3), magnus.WithWorkers(4))
//
// Fewer than two samples is a degenerate integral and is rejected with
// ErrTooFewSamples rather than silently returning an empty sum.
package magnus
