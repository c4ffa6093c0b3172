package qmat_test

import (
	"fmt"

	"github.com/lzawbrito/pulsego/qmat"
)

// ExampleAdjoint demonstrates the conjugate transpose of a small matrix.
func ExampleAdjoint() {
	a, _ := qmat.FromRows([][]complex128{
		{1 + 2i, 0},
		{3, -1i},
	})
	dag := qmat.Adjoint(a)
	v, _ := dag.At(0, 0)
	fmt.Println(v)
	// Output: (1-2i)
}

// ExampleExpHerm exponentiates the Pauli-Z observable with a zero scale,
// which is always the identity.
func ExampleExpHerm() {
	z, _ := qmat.FromRows([][]complex128{
		{1, 0},
		{0, -1},
	})
	e, _ := qmat.ExpHerm(z, 0)
	tr, _ := qmat.Trace(e)
	fmt.Printf("%.4f\n", real(tr))
	// Output: 2.0000
}
