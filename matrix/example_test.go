package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

// ExampleRREF reduces a rank-deficient matrix and reads its null space.
func ExampleRREF() {
	m, _ := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	red, _ := matrix.RREF(m)
	basis, _ := matrix.NullSpace(red)

	fmt.Println("pivots:", red.Pivots())
	fmt.Println("free:", red.Free())
	fmt.Printf("null: %.3f\n", basis[0].Values())
	// Output:
	// pivots: [0 1]
	// free: [2]
	// null: [1.000 -2.000 1.000]
}

// ExampleAsStochastic tags a verified transition matrix.
func ExampleAsStochastic() {
	a, _ := matrix.NewFromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	s, err := matrix.AsStochastic(a)
	fmt.Println(s.Kind(), err)
	// Output:
	// stochastic <nil>
}
