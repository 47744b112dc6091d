package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSnippetComplete(t *testing.T) {
	tests := []struct {
		snippet  string
		complete bool
	}{
		{"int x = 1;", true},
		{"int x = 1", false},
		{"jabtak (x < 10) {", false},
		{"jabtak (x < 10) {\n  x += 1;\n}", true},
		{"agr (a) {\n  dikhao(1);", false},
		{`dikhao("no { brace");`, true},
		{"dikhao('{');", true},
		{"{}", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.complete, snippetComplete(tt.snippet), "snippet: %q", tt.snippet)
	}
}

func TestEvalSnippetPrintsAST(t *testing.T) {
	var out bytes.Buffer
	evalSnippet(&out, "int x = 1 + 2;")

	assert.Equal(t, "int x = (1 + 2);\n", out.String())
}

func TestEvalSnippetStopsAtFirstDiagnostic(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	evalSnippet(&out, "int x = @; int y = #;")

	output := out.String()
	assert.Contains(t, output, "'@'")
	assert.NotContains(t, output, "'#'", "Rendering should halt at the first fault")
}

func TestEvalSnippetPrefersScanErrors(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	evalSnippet(&out, `dikhao("abc);`)

	output := out.String()
	assert.True(t, strings.Contains(output, "Unterminated string"), "got: %s", output)
}
