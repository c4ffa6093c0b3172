// Package qubit models finite qubit spaces, pure states and unitary gates.
//
// 🚀 What is qubit?
//
//	The state layer of the library:
//	  • CompositeSpace — an n-fold tensor product of two-level systems,
//	    identified purely by its factor count n (structural equality)
//	  • basis kets from bit sequences (BasisFromBits) and the full
//	    orthonormal basis enumeration (ONB), with matching index order
//	  • Space — the canonical single-qubit instance with cached |0⟩, |1⟩
//	    and its defining Pauli-Z observable
//	  • State — an immutable 2ⁿ-amplitude column vector bound to a space,
//	    producing its rank-one density matrix on demand
//	  • Gate — a unitarity-checked 2ⁿ×2ⁿ operator with a loud,
//	    dimension-checked Apply
//	  • Hadamard and CNOT, validated once at package initialization
//
// ✨ Guarantees:
//   - Fail-fast validation, sentinel errors, errors.Is-friendly.
//   - Spaces, states and gates are immutable after construction and safe to
//     share across goroutines.
//   - Basis index convention: a bit sequence is read most-significant bit
//     first, so BasisFromBits([0,1,0]) is the unit vector at index 2, and
//     ONB()[i] is exactly the ket whose bit pattern encodes i.
//
// ⚙️ Usage:
//
//	sp := qubit.NewSpace()
//	plus, err := sp.MakeState(qubit.WithCoefficients(1, 1))
//	rho := plus.DensityMatrix()
//
// See example_test.go for gate application and Bell-state construction.
package qubit
