package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/localinv/approx"
	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/inverse"
	"github.com/katalvlaran/localinv/linalg"
)

// invertCmd runs the perturbed-doubling demo: f(x) = 2x + δ·sin x is
// inverted on a working ball and each requested target is solved with its
// round-trip residual reported.
func invertCmd() *cobra.Command {
	var (
		delta   float64
		radius  float64
		tol     float64
		maxIter int
		at      []float64
	)

	c := &cobra.Command{
		Use:   "invert",
		Short: "Invert f(x) = 2x + δ·sin x on a certified neighborhood",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := solverFlags(tol, maxIter); err != nil {
				return err
			}
			if radius <= 0 {
				return fmt.Errorf("--radius must be positive, got %g", radius)
			}

			f := func(x linalg.Vec) linalg.Vec {
				return linalg.Vec{2*x[0] + delta*math.Sin(x[0])}
			}
			a, err := linalg.NewDenseFromRows([][]float64{{2}})
			if err != nil {
				return err
			}
			iso, err := linalg.NewIso(a)
			if err != nil {
				return err
			}
			w, err := approx.NewWitness(f, iso, approx.Whole{}, math.Abs(delta))
			if err != nil {
				return fmt.Errorf("δ=%g is not an admissible deviation: %w", delta, err)
			}
			h, err := inverse.BuildLocalInverse(w, linalg.Vec{0}, radius,
				fixpoint.WithTol(tol), fixpoint.WithMaxIter(maxIter))
			if err != nil {
				return err
			}

			src, tgt := h.Source(), h.Target()
			fmt.Printf("f(x) = 2x + %g·sin x   rate=%.4f\n", delta, w.ContractionRate())
			fmt.Printf("source B(0, %g) → target B(0, %g)\n", src.Radius, tgt.Radius)
			for _, yv := range at {
				x, stats, ierr := h.Inverse(linalg.Vec{yv})
				if ierr != nil {
					return fmt.Errorf("y=%g: %w", yv, ierr)
				}
				resid := math.Abs(f(x)[0] - yv)
				fmt.Printf("y=%+.4f  x=%+.10f  |f(x)−y|=%.2e  iterations=%d\n",
					yv, x[0], resid, stats.Iterations)
			}

			return nil
		},
	}

	c.Flags().Float64Var(&delta, "delta", 0.01, "deviation amplitude δ (|δ| < 2)")
	c.Flags().Float64Var(&radius, "radius", 10, "working-ball radius ε around 0")
	c.Flags().Float64Var(&tol, "tol", fixpoint.DefaultTol, "solver displacement tolerance")
	c.Flags().IntVar(&maxIter, "max-iter", fixpoint.DefaultMaxIter, "solver iteration cap")
	c.Flags().Float64SliceVar(&at, "at", []float64{-3, -1, 0, 1.5, 3}, "target values y to invert")

	return c
}
