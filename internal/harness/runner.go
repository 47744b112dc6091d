package harness

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"simplang/internal/parser"
)

// Result is the verdict for one fixture file.
type Result struct {
	File     string
	Skipped  bool
	Failures []string
}

func (r Result) Passed() bool {
	return !r.Skipped && len(r.Failures) == 0
}

// Run walks a fixture directory, parses every fixture and checks the
// produced diagnostics against the //~ directives and the manifest.
func Run(dir string) ([]Result, error) {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}

	var results []Result
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasFixtureExtension(path, manifest.extensions()) {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		result, err := runFixture(path, relPath, manifest)
		if err != nil {
			return err
		}
		results = append(results, result)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return results, nil
}

func runFixture(path, relPath string, manifest *Manifest) (Result, error) {
	result := Result{File: relPath}

	entry, hasEntry := manifest.entryFor(relPath)
	if hasEntry && entry.Skip {
		result.Skipped = true
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	source := string(data)

	directives, err := ExtractDirectives(relPath, source)
	if err != nil {
		return result, err
	}

	_, parseErrors, scanErrors := parser.ParseSource(path, source)
	actual := collectActual(parseErrors, scanErrors)

	result.Failures = append(result.Failures, checkDirectives(directives, actual)...)

	if hasEntry && entry.Clean && len(actual) > 0 {
		result.Failures = append(result.Failures,
			fmt.Sprintf("expected a clean parse, got %d diagnostic(s), first: %s",
				len(actual), actual[0].describe()))
	}
	if hasEntry && !entry.Clean && len(actual) == 0 {
		result.Failures = append(result.Failures, "expected diagnostics, parse was clean")
	}
	if !hasEntry && len(directives) == 0 && len(actual) > 0 {
		result.Failures = append(result.Failures,
			fmt.Sprintf("undeclared diagnostic: %s", actual[0].describe()))
	}

	return result, nil
}

func hasFixtureExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

type actualDiagnostic struct {
	kind    string
	message string
	line    int
	column  int
}

func (a actualDiagnostic) describe() string {
	return fmt.Sprintf("%s at %d:%d: %s", a.kind, a.line, a.column, a.message)
}

func collectActual(parseErrors []parser.ParseError, scanErrors []parser.ScanError) []actualDiagnostic {
	var actual []actualDiagnostic
	for _, err := range scanErrors {
		actual = append(actual, actualDiagnostic{
			kind:    err.Kind.String(),
			message: err.Message,
			line:    err.Position.Line,
			column:  err.Position.Column,
		})
	}
	for _, err := range parseErrors {
		actual = append(actual, actualDiagnostic{
			kind:    err.Kind.String(),
			message: err.Message,
			line:    err.Position.Line,
			column:  err.Position.Column,
		})
	}
	return actual
}

// checkDirectives matches each directive against the actual diagnostics.
// A directive consumes the first unclaimed diagnostic with the same kind
// and location, so duplicated expectations need duplicated diagnostics.
func checkDirectives(directives []Directive, actual []actualDiagnostic) []string {
	var failures []string
	claimed := make([]bool, len(actual))

	for _, directive := range directives {
		found := false
		for i, diag := range actual {
			if claimed[i] {
				continue
			}
			if diag.kind != directive.Kind || diag.line != directive.Line || diag.column != directive.Column {
				continue
			}
			if directive.Message != "" && !strings.Contains(diag.message, directive.Message) {
				continue
			}
			claimed[i] = true
			found = true
			break
		}
		if !found {
			failures = append(failures,
				fmt.Sprintf("missing expected %s at %d:%d", directive.Kind, directive.Line, directive.Column))
		}
	}

	return failures
}
