// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"simplang/internal/errors"
	"simplang/internal/parser"
)

const (
	Prompt             = ">> "
	ContinuationPrompt = ".. "
)

// Start runs the interactive loop. Input is accumulated across physical
// lines until every brace is balanced and the text ends in ';' or '}',
// then the whole snippet is parsed and its AST printed. Diagnostics stop
// at the first fault; everything after it in the snippet is noise until
// that fault is fixed.
func Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	var pending []string

	for {
		prompt := Prompt
		if len(pending) > 0 {
			prompt = ContinuationPrompt
		}

		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			pending = nil
			fmt.Fprintln(out)
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}

		if len(pending) == 0 && strings.TrimSpace(input) == "" {
			continue
		}

		pending = append(pending, input)
		snippet := strings.Join(pending, "\n")
		if !snippetComplete(snippet) {
			continue
		}
		pending = nil
		line.AppendHistory(strings.Join(strings.Fields(snippet), " "))

		evalSnippet(out, snippet)
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}
}

func evalSnippet(out io.Writer, snippet string) {
	const replFile = "<repl>"

	program, parseErrors, scanErrors := parser.ParseSource(replFile, snippet)

	reporter := errors.NewErrorReporter(replFile, snippet)
	if len(scanErrors) > 0 {
		fmt.Fprint(out, reporter.FormatDiagnostic(errors.FromScanError(replFile, scanErrors[0])))
		return
	}
	if len(parseErrors) > 0 {
		fmt.Fprint(out, reporter.FormatDiagnostic(errors.FromParseError(replFile, parseErrors[0])))
		return
	}

	fmt.Fprintln(out, program.String())
}

// snippetComplete reports whether an accumulated snippet forms a whole
// statement. Braces must balance and the text must end in ';' or '}';
// quote state is tracked so braces inside string literals do not count.
func snippetComplete(snippet string) bool {
	depth := 0
	inString := false
	inChar := false
	escaped := false

	for _, r := range snippet {
		if escaped {
			escaped = false
			continue
		}
		switch {
		case (inString || inChar) && r == '\\':
			escaped = true
		case inString:
			if r == '"' || r == '\n' {
				inString = false
			}
		case inChar:
			if r == '\'' || r == '\n' {
				inChar = false
			}
		case r == '"':
			inString = true
		case r == '\'':
			inChar = true
		case r == '{':
			depth++
		case r == '}':
			depth--
		}
	}

	if depth > 0 {
		return false
	}

	trimmed := strings.TrimSpace(snippet)
	return strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}")
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simplang_history")
}
