package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simplang",
	Short: "SimpleLang frontend toolchain",
	Long: `simplang lexes and parses SimpleLang source files.

Commands:
  analyze  - parse a file and report every diagnostic
  tokens   - print the token stream of a file
  ast      - print the syntax tree of a file
  repl     - interactive read-parse-print loop
  test     - run a fixture directory against its expectations`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func readSourceFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
