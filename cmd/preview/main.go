package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var seed int64

	root := &cobra.Command{
		Use:          "preview",
		Short:        "Print synthetic marketplace analytics without a running server.",
		SilenceUsage: true,
	}
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed; 0 picks one from the clock")

	root.AddCommand(newDashboardCommand(&seed))
	root.AddCommand(newModelCommand(&seed))
	root.AddCommand(newGridCommand())
	return root
}
