package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "agr varna jabtak tabtak do break continue return dikhao likho int float bool string char true false customIdent"
	expected := []TokenType{
		AGR, VARNA, JABTAK, TABTAK, DO, BREAK, CONTINUE,
		RETURN, DIKHAO, LIKHO, INT, FLOAT, BOOL, STRING, CHAR,
		TRUE, FALSE, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	input := "Agr AGR jabTak"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i := 0; i < 3; i++ {
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("expected IDENTIFIER for %q, got %s", tokens[i].Lexeme, tokens[i].Type)
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	input := "++ += + -- -= - *= * /= / == = != ! && || <= < >= > % ? :"
	expected := []TokenType{
		INCREMENT, PLUS_EQUAL, PLUS,
		DECREMENT, MINUS_EQUAL, MINUS,
		STAR_EQUAL, STAR,
		SLASH_EQUAL, SLASH,
		EQUAL_EQUAL, EQUAL,
		BANG_EQUAL, BANG,
		AND, OR,
		LESS_EQUAL, LESS, GREATER_EQUAL, GREATER,
		PERCENT, QUESTION, COLON,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens plus EOF, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestAdjacentOperatorsSplitGreedily(t *testing.T) {
	input := "a+++b"
	expected := []TokenType{IDENTIFIER, INCREMENT, PLUS, IDENTIFIER, EOF}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 3.14 .5 1e10 2.5e-3 0.25"
	expected := []TokenType{
		INT_LITERAL, INT_LITERAL, INT_LITERAL,
		FLOAT_LITERAL, FLOAT_LITERAL, FLOAT_LITERAL, FLOAT_LITERAL, FLOAT_LITERAL,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) != 0 {
		t.Fatalf("expected no scan errors, got %v", scanner.Errors())
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d (%q): expected %s, got %s", i, tokens[i].Lexeme, exp, tokens[i].Type)
		}
	}
}

func TestInvalidNumbers(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"007"},
		{"1.2.3"},
		{"1e"},
		{"1e+"},
		{"123abc"},
		{"1."},
		{"12."},
		{"1.e5"},
	}

	for _, tt := range tests {
		scanner := NewScanner(tt.input)
		tokens := scanner.ScanTokens()

		if len(scanner.Errors()) != 1 {
			t.Errorf("%q: expected exactly 1 scan error, got %d", tt.input, len(scanner.Errors()))
			continue
		}
		if scanner.Errors()[0].Kind != InvalidNumberFormat {
			t.Errorf("%q: expected InvalidNumberFormat, got %s", tt.input, scanner.Errors()[0].Kind)
		}
		if len(tokens) != 1 || tokens[0].Type != EOF {
			t.Errorf("%q: malformed number should yield no token, got %v", tt.input, tokens)
		}
	}
}

func TestInvalidNumberBetweenValidTokens(t *testing.T) {
	scanner := NewScanner("x = 1.2.3;")
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) != 1 {
		t.Fatalf("expected exactly 1 scan error, got %d", len(scanner.Errors()))
	}

	expected := []TokenType{IDENTIFIER, EQUAL, SEMICOLON, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "wor ld"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING_LITERAL || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING_LITERAL 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING_LITERAL || tokens[1].Lexeme != "wor ld" {
		t.Errorf("expected STRING_LITERAL 'wor ld', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestStringEscapes(t *testing.T) {
	input := `"a\nb\t\"q\"\\x" "\x41"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) != 0 {
		t.Fatalf("expected no scan errors, got %v", scanner.Errors())
	}
	if tokens[0].Lexeme != "a\nb\t\"q\"\\x" {
		t.Errorf("bad decoded value: %q", tokens[0].Lexeme)
	}
	if tokens[1].Lexeme != "A" {
		t.Errorf("expected \\x41 to decode to A, got %q", tokens[1].Lexeme)
	}
}

func TestInvalidEscapePosition(t *testing.T) {
	scanner := NewScanner(`"ab\qcd"`)
	scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(errs))
	}
	if errs[0].Kind != InvalidEscapeSequence {
		t.Errorf("expected InvalidEscapeSequence, got %s", errs[0].Kind)
	}
	if errs[0].Position.Column != 4 {
		t.Errorf("expected error at the backslash (column 4), got column %d", errs[0].Position.Column)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner(`dikhao("abc);`)
	scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 scan error, got %d", len(errs))
	}
	if errs[0].Kind != UnterminatedString {
		t.Errorf("expected UnterminatedString, got %s", errs[0].Kind)
	}
	if errs[0].Position.Line != 1 || errs[0].Position.Column != 8 {
		t.Errorf("expected error at the opening quote 1:8, got %d:%d",
			errs[0].Position.Line, errs[0].Position.Column)
	}
}

func TestStringDoesNotSpanLines(t *testing.T) {
	scanner := NewScanner("\"abc\nint x;")
	tokens := scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 || errs[0].Kind != UnterminatedString {
		t.Fatalf("expected 1 UnterminatedString, got %v", errs)
	}

	// Scanning resumes on the next line.
	if tokens[0].Type != INT || tokens[1].Type != IDENTIFIER {
		t.Errorf("expected INT IDENTIFIER after recovery, got %s %s", tokens[0].Type, tokens[1].Type)
	}
}

func TestCharLiterals(t *testing.T) {
	scanner := NewScanner(`'a' '\n' '\x41'`)
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) != 0 {
		t.Fatalf("expected no scan errors, got %v", scanner.Errors())
	}
	expected := []string{"a", "\n", "A"}
	for i, exp := range expected {
		if tokens[i].Type != CHAR_LITERAL || tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected CHAR_LITERAL %q, got %s %q", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestBadCharLiterals(t *testing.T) {
	tests := []string{"''", "'ab'"}
	for _, input := range tests {
		scanner := NewScanner(input)
		scanner.ScanTokens()
		errs := scanner.Errors()
		if len(errs) != 1 || errs[0].Kind != UnterminatedChar {
			t.Errorf("%q: expected 1 UnterminatedChar, got %v", input, errs)
		}
	}
}

func TestComments(t *testing.T) {
	input := "int x; // trailing comment\n// full line\ny"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{INT, IDENTIFIER, SEMICOLON, IDENTIFIER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	if tokens[3].Position.Line != 3 {
		t.Errorf("expected y on line 3, got line %d", tokens[3].Position.Line)
	}
}

func TestUnknownCharacter(t *testing.T) {
	scanner := NewScanner("int x @ y;")
	scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 || errs[0].Kind != UnknownCharacter {
		t.Fatalf("expected 1 UnknownCharacter, got %v", errs)
	}
	if errs[0].Position.Column != 7 {
		t.Errorf("expected error at column 7, got %d", errs[0].Position.Column)
	}
}

func TestLoneAmpersandAndPipe(t *testing.T) {
	for _, input := range []string{"a & b", "a | b"} {
		scanner := NewScanner(input)
		scanner.ScanTokens()
		errs := scanner.Errors()
		if len(errs) != 1 || errs[0].Kind != UnknownCharacter {
			t.Errorf("%q: expected 1 UnknownCharacter, got %v", input, errs)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "int x;\n  x = 5;"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	checks := []struct {
		idx    int
		line   int
		column int
	}{
		{0, 1, 1}, // int
		{1, 1, 5}, // x
		{2, 1, 6}, // ;
		{3, 2, 3}, // x
		{4, 2, 5}, // =
		{5, 2, 7}, // 5
	}
	for _, c := range checks {
		tok := tokens[c.idx]
		if tok.Position.Line != c.line || tok.Position.Column != c.column {
			t.Errorf("token %d (%q): expected %d:%d, got %d:%d",
				c.idx, tok.Lexeme, c.line, c.column, tok.Position.Line, tok.Position.Column)
		}
	}
}

func TestEOFTokenAlwaysPresent(t *testing.T) {
	scanner := NewScanner("")
	tokens := scanner.ScanTokens()

	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestTokenRawLength(t *testing.T) {
	scanner := NewScanner(`"a\tb" name`)
	tokens := scanner.ScanTokens()

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Lexeme != "a\tb" {
		t.Errorf("expected decoded lexeme, got %q", tokens[0].Lexeme)
	}
	if tokens[0].Length != 6 {
		t.Errorf("expected raw length 6 for the quoted literal, got %d", tokens[0].Length)
	}
	if tokens[1].Length != 4 {
		t.Errorf("expected raw length 4 for the identifier, got %d", tokens[1].Length)
	}
}
