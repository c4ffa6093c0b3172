// Package qmat provides the complex dense matrix primitives underlying the
// qubit, evolution and magnus packages.
//
// 🚀 What is qmat?
//
//	A small, deterministic complex128 linear-algebra layer tailored to
//	finite-dimensional quantum mechanics:
//	  • Dense — row-major complex matrix value type (states are n×1 columns)
//	  • elementwise algebra: Add, Sub, Scale, Mul, Adjoint, Trace, Dot
//	  • structure predicates: IsHermitian, IsUnitary, EqualApprox
//	  • Hermitian eigendecomposition (EigenHerm) and the scaled matrix
//	    exponential ExpHerm(a, z) = U·diag(exp(z·λ))·U†
//	  • normalizations: Normalize (L2) and UnitNormalize (unit trace)
//	  • random operator / observable / density-matrix generators
//
// ✨ Design:
//   - Fail-fast validation with package-prefixed sentinel errors (errors.Is).
//   - Operands are never mutated; every operation allocates its result.
//   - Fixed loop orders, no map iteration: results are bit-for-bit
//     reproducible run to run.
//   - The Hermitian eigensolver delegates to gonum's EigenSym on the
//     standard 2n×2n real-symmetric embedding of a Hermitian matrix.
//
// Performance:
//
//   - Mul: O(n³); EigenHerm/ExpHerm: O(n³) with small constants for the
//     2–8 dimensional spaces this library targets.
//
// See example_test.go for usage patterns.
package qmat
