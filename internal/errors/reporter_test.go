package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"simplang/internal/ast"
	"simplang/internal/parser"
)

func TestFormatDiagnosticShowsCodeAndCaret(t *testing.T) {
	color.NoColor = true

	source := "int x = 1;\nint y = @;\nint z = 3;"
	reporter := NewErrorReporter("test.sl", source)

	output := reporter.FormatDiagnostic(Diagnostic{
		Level:    Error,
		Code:     ErrorUnknownCharacter,
		Message:  "Unexpected character: '@'",
		Position: ast.Position{Filename: "test.sl", Line: 2, Column: 9},
		Length:   1,
	})

	assert.Contains(t, output, "error[L0001]: Unexpected character: '@'")
	assert.Contains(t, output, "test.sl:2:9")
	assert.Contains(t, output, "int y = @;")
	assert.Contains(t, output, "int x = 1;", "Line before should be shown as context")
	assert.Contains(t, output, "int z = 3;", "Line after should be shown as context")

	// Caret sits under column 9.
	assert.Contains(t, output, strings.Repeat(" ", 8)+"^")
}

func TestFormatDiagnosticWidensMarker(t *testing.T) {
	color.NoColor = true

	reporter := NewErrorReporter("test.sl", "x = 1.2.3;")
	output := reporter.FormatDiagnostic(Diagnostic{
		Level:    Error,
		Code:     ErrorInvalidNumber,
		Message:  "Invalid number literal",
		Position: ast.Position{Line: 1, Column: 5},
		Length:   5,
	})

	assert.Contains(t, output, "^^^^^")
}

func TestFromScanError(t *testing.T) {
	scanner := parser.NewScanner(`dikhao("abc);`)
	scanner.ScanTokens()
	scanErrors := scanner.Errors()
	assert.Len(t, scanErrors, 1)

	diag := FromScanError("test.sl", scanErrors[0])
	assert.Equal(t, Error, diag.Level)
	assert.Equal(t, ErrorUnterminatedString, diag.Code)
	assert.Equal(t, 1, diag.Position.Line)
	assert.Equal(t, 8, diag.Position.Column)
	assert.Equal(t, "test.sl", diag.Position.Filename)
}

func TestFromParseError(t *testing.T) {
	_, parseErrors, _ := parser.ParseSource("test.sl", "int x = 1")
	assert.NotEmpty(t, parseErrors)

	diag := FromParseError("test.sl", parseErrors[0])
	assert.Equal(t, ErrorUnexpectedEOF, diag.Code)
	assert.Equal(t, Error, diag.Level)
}

func TestErrorCodeCategories(t *testing.T) {
	assert.Equal(t, "Lexical", GetErrorCategory(ErrorUnterminatedString))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorMissingToken))
	assert.True(t, IsLexical(ErrorInvalidEscape))
	assert.False(t, IsLexical(ErrorUnexpectedToken))
}

func TestFormatAllKeepsOrder(t *testing.T) {
	color.NoColor = true

	source := "@ $"
	scanner := parser.NewScanner(source)
	scanner.ScanTokens()

	reporter := NewErrorReporter("test.sl", source)
	output := reporter.FormatAll(FromScanErrors("test.sl", scanner.Errors()))

	first := strings.Index(output, "test.sl:1:1")
	second := strings.Index(output, "test.sl:1:3")
	assert.True(t, first >= 0 && second > first, "Diagnostics should render in source order")
}

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]Diagnostic{{Level: Note, Message: "style note"}}))
	assert.True(t, HasErrors([]Diagnostic{
		{Level: Note, Message: "style note"},
		{Level: Error, Code: ErrorUnexpectedToken},
	}))
}
