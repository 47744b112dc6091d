package harness

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expectation directives are comments of the form
//
//	//~ error UnterminatedString 3:9
//	//~ error MissingToken 5:12 "expected ';' after expression"
//
// They may appear on any line of a fixture file and state one diagnostic
// the file must produce. A fixture without directives must parse clean.

var directiveLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	},
})

// Directive is one expected diagnostic attached to a fixture.
type Directive struct {
	Pos      lexer.Position
	Severity string `parser:"@('error' | 'warning')"`
	Kind     string `parser:"@Ident"`
	Line     int    `parser:"@Int Colon"`
	Column   int    `parser:"@Int"`
	Message  string `parser:"@String?"`
}

var directiveParser = participle.MustBuild[Directive](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

const directiveMarker = "//~"

// ExtractDirectives parses every //~ comment in a fixture source. A
// malformed directive is itself an error: silently skipping it would let
// a typo turn a failing fixture into a passing one.
func ExtractDirectives(filename, source string) ([]Directive, error) {
	var directives []Directive

	for i, line := range strings.Split(source, "\n") {
		idx := strings.Index(line, directiveMarker)
		if idx < 0 {
			continue
		}

		body := strings.TrimSpace(line[idx+len(directiveMarker):])
		directive, err := directiveParser.ParseString(filename, body)
		if err != nil {
			return nil, &DirectiveError{File: filename, Line: i + 1, Err: err}
		}
		directives = append(directives, *directive)
	}

	return directives, nil
}

// DirectiveError wraps a malformed //~ comment with its location.
type DirectiveError struct {
	File string
	Line int
	Err  error
}

func (e *DirectiveError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.File)
	sb.WriteString(": bad expectation directive on line ")
	sb.WriteString(strconv.Itoa(e.Line))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}
