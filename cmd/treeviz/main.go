// Command treeviz drives the tree engine from a terminal: an interactive
// session for stepping through operations and a bench mode that measures
// them.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	kindFlag   string
	degreeFlag int
	countFlag  int
	seedFlag   uint64
)

var rootCmd = &cobra.Command{
	Use:   "treeviz [command] (flags)",
	Short: "tree structure playground and benchmark tool",
	Long:  ``,
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		replCmd,
		benchCmd,
	)

	for _, cmd := range []*cobra.Command{replCmd, benchCmd} {
		cmd.Flags().StringVar(
			&configPath, "config", "", "optional YAML config file")
		cmd.Flags().StringVarP(
			&kindFlag, "kind", "k", "", "structure kind (see the repl's kinds command)")
		cmd.Flags().IntVar(
			&degreeFlag, "degree", 0, "minimum degree for b-tree and b-plus-tree")
	}

	benchCmd.Flags().IntVarP(
		&countFlag, "count", "n", 0, "number of values per operation phase")
	benchCmd.Flags().Uint64Var(
		&seedFlag, "seed", 0, "random seed for value generation")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
