package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/localinv/fixpoint"
	"github.com/katalvlaran/localinv/implicit"
	"github.com/katalvlaran/localinv/linalg"
)

// implicitCmd runs the unit-circle demo: x² + y² = 1 solved for y = φ(x)
// near (0, 1), printed next to the analytic branch √(1 − x²).
func implicitCmd() *cobra.Command {
	var (
		tol     float64
		maxIter int
		at      []float64
	)

	c := &cobra.Command{
		Use:   "implicit",
		Short: "Trace the upper unit circle as an implicit function of x",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := solverFlags(tol, maxIter); err != nil {
				return err
			}

			a, err := linalg.NewDenseFromRows([][]float64{{0}})
			if err != nil {
				return err
			}
			b, err := linalg.NewDenseFromRows([][]float64{{2}})
			if err != nil {
				return err
			}
			fn, err := implicit.Solve(implicit.Problem{
				F: func(x, y linalg.Vec) linalg.Vec {
					return linalg.Vec{x[0]*x[0] + y[0]*y[0] - 1}
				},
				A:  a,
				B:  b,
				X0: linalg.Vec{0},
				Y0: linalg.Vec{1},
			}, fixpoint.WithTol(tol), fixpoint.WithMaxIter(maxIter))
			if err != nil {
				return err
			}

			fmt.Println("F(x, y) = x² + y² − 1 at (0, 1)")
			for _, xv := range at {
				y, stats, aerr := fn.At(linalg.Vec{xv})
				if aerr != nil {
					return fmt.Errorf("x=%g: %w", xv, aerr)
				}
				ref := math.Sqrt(1 - xv*xv)
				fmt.Printf("x=%+.4f  φ(x)=%.10f  √(1−x²)=%.10f  iterations=%d\n",
					xv, y[0], ref, stats.Iterations)
			}

			return nil
		},
	}

	c.Flags().Float64Var(&tol, "tol", fixpoint.DefaultTol, "solver displacement tolerance")
	c.Flags().IntVar(&maxIter, "max-iter", fixpoint.DefaultMaxIter, "solver iteration cap")
	c.Flags().Float64SliceVar(&at, "at", []float64{-0.06, 0, 0.03, 0.06}, "x values to trace")

	return c
}
