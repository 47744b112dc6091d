package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplang/internal/errors"
	"simplang/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file.sl>",
	Short: "Print the syntax tree of a file",
	Long: `Prints the syntax tree of a SimpleLang file. A file with syntax
errors still prints its partial tree: recovery keeps every statement that
did parse.`,
	Args: cobra.ExactArgs(1),
	RunE: runAst,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAst(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, source)

	fmt.Print(program.String())

	diags := errors.FromScanErrors(path, scanErrors)
	diags = append(diags, errors.FromParseErrors(path, parseErrors)...)
	if errors.HasErrors(diags) {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Print(reporter.FormatAll(diags))
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	}
	return nil
}
