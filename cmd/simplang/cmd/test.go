package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"simplang/internal/harness"
)

var testCmd = &cobra.Command{
	Use:   "test <dir>",
	Short: "Run a fixture directory against its expectations",
	Long: `Parses every fixture under the directory and compares the produced
diagnostics with the //~ expectation comments in each file and with the
optional manifest.yaml verdicts.`,
	Args: cobra.ExactArgs(1),
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	results, err := harness.Run(args[0])
	if err != nil {
		return err
	}

	passed, failed, skipped := 0, 0, 0
	for _, result := range results {
		switch {
		case result.Skipped:
			skipped++
			color.Yellow("SKIP %s", result.File)
		case result.Passed():
			passed++
			color.Green("PASS %s", result.File)
		default:
			failed++
			color.Red("FAIL %s", result.File)
			for _, failure := range result.Failures {
				fmt.Printf("     %s\n", failure)
			}
		}
	}

	fmt.Printf("\n%d passed, %d failed, %d skipped\n", passed, failed, skipped)
	if failed > 0 {
		return fmt.Errorf("%d fixture(s) failed", failed)
	}
	return nil
}
