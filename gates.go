package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// I is the single qubit identity.
	I = mustOperator("I", Identity(2))

	// H = 1/√2 * [1  1]
	//            [1 -1]
	H = mustOperator("H", Matrix{
		{1, 1},
		{1, -1},
	}.Scale(complex(1/math.Sqrt2, 0)))

	X = mustOperator("X", Matrix{
		{0, 1},
		{1, 0},
	})

	Y = mustOperator("Y", Matrix{
		{0, -1i},
		{1i, 0},
	})

	Z = mustOperator("Z", Diagonal(1, -1))

	Swap = mustOperator("Swap", Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})

	CNot    = X.Controlled()
	Toffoli = CNot.Controlled()
)

// Phase shifts the phase of |1⟩ by theta: diag(1, e^{iθ}). It panics when
// theta is not finite.
func Phase(theta float64) *Operator {
	return mustOperator(
		fmt.Sprintf("Phase(%g)", theta),
		Diagonal(1, cmplx.Exp(complex(0, theta))),
	)
}

// Gates lists the fixed predefined gates.
func Gates() []*Operator {
	return []*Operator{I, H, X, Y, Z, Swap, CNot, Toffoli}
}
