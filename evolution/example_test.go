package evolution_test

import (
	"fmt"

	"github.com/lzawbrito/pulsego/evolution"
	"github.com/lzawbrito/pulsego/qmat"
)

// ExampleCanonicalDensityMatrix builds the thermal state of a Pauli-Z
// Hamiltonian at a temperature high enough to be essentially mixed.
func ExampleCanonicalDensityMatrix() {
	h, _ := qmat.FromRows([][]complex128{
		{1, 0},
		{0, -1},
	})
	rho, _ := evolution.CanonicalDensityMatrix(h, 300)
	fmt.Println(evolution.UnitTrace(rho))
	fmt.Println(evolution.Positivity(rho))
	// Output:
	// true
	// true
}

// ExampleCommutator shows the non-commutativity of σx and σz.
func ExampleCommutator() {
	x, _ := qmat.FromRows([][]complex128{{0, 1}, {1, 0}})
	z, _ := qmat.FromRows([][]complex128{{1, 0}, {0, -1}})

	c, _ := evolution.Commutator(x, z)
	v, _ := c.At(0, 1)
	fmt.Println(v)
	// Output: (-2+0i)
}
