package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"simplang/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-parse-print loop",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
