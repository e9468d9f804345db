package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sudosolve/internal/puzzle"
	"sudosolve/internal/solver"
)

// solve [file]: read a puzzle from a file or stdin, print the completion.
func solveCmd() *cobra.Command {
	var showStats bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			cells, err := puzzle.Parse(in)
			if err != nil {
				return err
			}
			out, st, err := solver.NewBacktracking().Solve(cmd.Context(), cells)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), puzzle.Render(out))
			if showStats {
				fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d duration=%s\n",
					st.Nodes, st.Duration.Round(time.Microsecond))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "print search statistics to stderr")
	return cmd
}
