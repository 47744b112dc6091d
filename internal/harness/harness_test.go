package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDirectives(t *testing.T) {
	source := `int x = 1
//~ error MissingToken 1:11
int y = 2;
//~ error UnterminatedString 5:9 "Unterminated string literal"`

	directives, err := ExtractDirectives("fixture.sl", source)
	require.NoError(t, err)
	require.Len(t, directives, 2)

	assert.Equal(t, "error", directives[0].Severity)
	assert.Equal(t, "MissingToken", directives[0].Kind)
	assert.Equal(t, 1, directives[0].Line)
	assert.Equal(t, 11, directives[0].Column)
	assert.Empty(t, directives[0].Message)

	assert.Equal(t, "UnterminatedString", directives[1].Kind)
	assert.Equal(t, "Unterminated string literal", directives[1].Message)
}

func TestExtractDirectivesRejectsMalformed(t *testing.T) {
	_, err := ExtractDirectives("fixture.sl", "//~ error NoPosition")
	require.Error(t, err)

	var dirErr *DirectiveError
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, 1, dirErr.Line)
}

func TestNoDirectivesInPlainComments(t *testing.T) {
	source := `// a normal comment
int x = 1; // another one`

	directives, err := ExtractDirectives("fixture.sl", source)
	require.NoError(t, err)
	assert.Empty(t, directives)
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunCleanFixture(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "valid.sl", "int x = 1;\ndikhao(x);\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed(), "failures: %v", results[0].Failures)
}

func TestRunFixtureWithExpectedError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "missing_semi.sl",
		"int x = 1\n//~ error MissingToken 3:1\nint y = 2;\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed(), "failures: %v", results[0].Failures)
}

func TestRunFixtureMissingExpectedError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "fine.sl",
		"//~ error MissingToken 2:1\nint x = 1;\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.Contains(t, results[0].Failures[0], "missing expected MissingToken")
}

func TestRunFixtureUndeclaredDiagnostic(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken.sl", "int x = ;\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.Contains(t, results[0].Failures[0], "undeclared diagnostic")
}

func TestRunWithManifest(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "manifest.yaml", `fixtures:
  - file: good.sl
    clean: true
  - file: bad.sl
    clean: false
  - file: todo.sl
    skip: true
`)
	writeFixture(t, dir, "good.sl", "int x = 1;\n")
	writeFixture(t, dir, "bad.sl", "int x = ;\n")
	writeFixture(t, dir, "todo.sl", "not even close\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byFile := map[string]Result{}
	for _, r := range results {
		byFile[r.File] = r
	}

	assert.True(t, byFile["good.sl"].Passed(), "failures: %v", byFile["good.sl"].Failures)
	assert.True(t, byFile["bad.sl"].Passed(), "failures: %v", byFile["bad.sl"].Failures)
	assert.True(t, byFile["todo.sl"].Skipped)
}

func TestRunManifestCleanMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "manifest.yaml", `fixtures:
  - file: claimed_clean.sl
    clean: true
`)
	writeFixture(t, dir, "claimed_clean.sl", "int x = ;\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.Contains(t, results[0].Failures[0], "expected a clean parse")
}

func TestRunIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt", "not a fixture")
	writeFixture(t, dir, "sub/prog.sl", "int x = 1;\n")

	results, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join("sub", "prog.sl"), results[0].File)
}
