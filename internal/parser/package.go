package parser

import "simplang/internal/ast"

func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()

	return program, parser.errors, scanner.errors
}
