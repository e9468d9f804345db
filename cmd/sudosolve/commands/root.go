package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func Execute() error {
	root := &cobra.Command{
		Use:           "sudosolve",
		Short:         "Sudoku constraint solver with CLI and HTTP front ends",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (used by serve)")

	root.AddCommand(solveCmd(), checkCmd(), serveCmd())
	return root.Execute()
}

// openInput returns the puzzle source: the named file, or stdin when no
// argument was given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}
