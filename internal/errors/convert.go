package errors

import (
	"simplang/internal/ast"
	"simplang/internal/parser"
)

// FromScanError converts a scanner fault into a renderable diagnostic.
func FromScanError(filename string, err parser.ScanError) Diagnostic {
	return Diagnostic{
		Level:    Error,
		Code:     scanErrorCode(err.Kind),
		Message:  err.Message,
		Position: toASTPosition(filename, err.Position),
		Length:   err.Length,
	}
}

// FromParseError converts a parser fault into a renderable diagnostic.
func FromParseError(filename string, err parser.ParseError) Diagnostic {
	d := Diagnostic{
		Level:    Error,
		Code:     parseErrorCode(err.Kind),
		Message:  err.Message,
		Position: toASTPosition(filename, err.Position),
		Length:   len(err.Found.String()),
	}
	if err.Found != parser.EOF && err.Found.String() != "" {
		d.Notes = append(d.Notes, "found '"+err.Found.String()+"'")
	}
	return d
}

// FromScanErrors converts a scanner error list in order.
func FromScanErrors(filename string, errs []parser.ScanError) []Diagnostic {
	diags := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		diags = append(diags, FromScanError(filename, err))
	}
	return diags
}

// FromParseErrors converts a parser error list in order.
func FromParseErrors(filename string, errs []parser.ParseError) []Diagnostic {
	diags := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		diags = append(diags, FromParseError(filename, err))
	}
	return diags
}

func scanErrorCode(kind parser.LexErrorKind) string {
	switch kind {
	case parser.UnknownCharacter:
		return ErrorUnknownCharacter
	case parser.UnterminatedString:
		return ErrorUnterminatedString
	case parser.UnterminatedChar:
		return ErrorUnterminatedChar
	case parser.InvalidEscapeSequence:
		return ErrorInvalidEscape
	case parser.InvalidNumberFormat:
		return ErrorInvalidNumber
	default:
		return ""
	}
}

func parseErrorCode(kind parser.SyntaxErrorKind) string {
	switch kind {
	case parser.UnexpectedToken:
		return ErrorUnexpectedToken
	case parser.MissingToken:
		return ErrorMissingToken
	case parser.UnexpectedEOF:
		return ErrorUnexpectedEOF
	case parser.NestingTooDeep:
		return ErrorNestingTooDeep
	default:
		return ""
	}
}

func toASTPosition(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
