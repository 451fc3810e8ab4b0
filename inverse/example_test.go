package inverse_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/inverse"
	"github.com/katalvlaran/localinv/linalg"
)

// ExampleBuildLocalInverse inverts the doubling map. With zero deviation
// the Newton map lands on the preimage in a single correction.
func ExampleBuildLocalInverse() {
	a, _ := linalg.NewDenseFromRows([][]float64{{2}})
	iso, _ := linalg.NewIso(a)
	double := func(x linalg.Vec) linalg.Vec { return x.Scale(2) }
	w, _ := approx.NewWitness(double, iso, approx.Whole{}, 0)

	h, _ := inverse.BuildLocalInverse(w, linalg.Vec{0}, 100)
	x, stats, _ := h.Inverse(linalg.Vec{3})
	fmt.Printf("x=%.1f iterations=%d\n", x[0], stats.Iterations)
	// Output:
	// x=1.5 iterations=2
}

// ExampleFromStrictDerivative builds a local inverse of a nonlinear map
// from its derivative at the base point alone.
func ExampleFromStrictDerivative() {
	f := func(x linalg.Vec) linalg.Vec {
		return linalg.Vec{2*x[0] + 0.01*math.Sin(x[0])}
	}
	fPrime, _ := linalg.NewDenseFromRows([][]float64{{2.01}})

	h, _ := inverse.FromStrictDerivative(f, linalg.Vec{0}, fPrime)
	x, _, _ := h.Inverse(linalg.Vec{0.2})
	fmt.Printf("f⁻¹(0.2)=%.6f\n", x[0])
	// Output:
	// f⁻¹(0.2)=0.099503
}
