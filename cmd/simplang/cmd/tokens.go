package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplang/internal/errors"
	"simplang/internal/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.sl>",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	scanner := parser.NewScanner(source)
	tokens := scanner.ScanTokens()

	for _, tok := range tokens {
		fmt.Printf("%4d:%-3d %-15s %q\n",
			tok.Position.Line, tok.Position.Column, tok.Type, tok.Lexeme)
	}

	scanErrors := scanner.Errors()
	if len(scanErrors) > 0 {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Print(reporter.FormatAll(errors.FromScanErrors(path, scanErrors)))
		return fmt.Errorf("%d diagnostic(s)", len(scanErrors))
	}
	return nil
}
