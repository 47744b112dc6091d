package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"simplang/internal/errors"
	"simplang/internal/parser"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.sl>",
	Short: "Parse a file and report every diagnostic",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, source)

	diags := errors.FromScanErrors(path, scanErrors)
	diags = append(diags, errors.FromParseErrors(path, parseErrors)...)

	reporter := errors.NewErrorReporter(path, source)
	fmt.Print(reporter.FormatAll(diags))

	duration := formatDuration(time.Since(startTime))

	if errors.HasErrors(diags) {
		color.Red("Analysis of %s failed after %s", path, duration)
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, duration)
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
