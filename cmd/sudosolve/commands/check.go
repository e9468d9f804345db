package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudosolve/internal/puzzle"
	"sudosolve/internal/solver"
	"sudosolve/internal/validator"
)

// check [file]: validate a puzzle without solving it.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a puzzle without solving it",
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
			g, err := solver.GridFrom(cells)
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), &g)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			for _, c := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", c.Row+1, c.Col+1)
			}
			return solver.ErrConflict
		},
	}
}
