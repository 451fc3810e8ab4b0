// Package cli wires the demo subcommands of the localinv binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "localinv",
		Short:        "localinv — certified local inversion of nonlinear maps",
		SilenceUsage: true,
	}

	cmd.AddCommand(invertCmd())
	cmd.AddCommand(implicitCmd())

	return cmd
}

// solverFlags validates the shared solver knobs before they reach the
// option constructors (which treat bad values as programmer errors).
func solverFlags(tol float64, maxIter int) error {
	if tol <= 0 {
		return fmt.Errorf("--tol must be positive, got %g", tol)
	}
	if maxIter <= 0 {
		return fmt.Errorf("--max-iter must be positive, got %d", maxIter)
	}

	return nil
}
