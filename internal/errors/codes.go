package errors

// Error codes used in diagnostics and documentation to identify faults
// consistently across the toolchain.
//
// Error code ranges:
// L0001-L0099: Lexical errors
// E0100-E0199: Parser errors
// E0800-E0899: Warning codes

const (
	// L0001: Character outside the language alphabet
	ErrorUnknownCharacter = "L0001"

	// L0002: String literal left open at end of line or file
	ErrorUnterminatedString = "L0002"

	// L0003: Character literal left open or holding the wrong number
	// of characters
	ErrorUnterminatedChar = "L0003"

	// L0004: Backslash escape with no defined meaning
	ErrorInvalidEscape = "L0004"

	// L0005: Number literal that does not scan as int or float
	ErrorInvalidNumber = "L0005"

	// E0101: Token that cannot start or continue the current production
	ErrorUnexpectedToken = "E0101"

	// E0102: Required token absent at the current position
	ErrorMissingToken = "E0102"

	// E0103: Input ended inside an open production
	ErrorUnexpectedEOF = "E0103"

	// E0104: Statement or expression nesting past the parser limit
	ErrorNestingTooDeep = "E0104"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnknownCharacter:
		return "Character is not part of the language alphabet"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnterminatedChar:
		return "Character literal is missing its closing quote or holds the wrong number of characters"
	case ErrorInvalidEscape:
		return "Escape sequence has no defined meaning"
	case ErrorInvalidNumber:
		return "Number literal does not scan as an integer or float"
	case ErrorUnexpectedToken:
		return "Token cannot appear at this position"
	case ErrorMissingToken:
		return "A required token is missing"
	case ErrorUnexpectedEOF:
		return "Input ended before the construct was complete"
	case ErrorNestingTooDeep:
		return "Nesting exceeds the parser depth limit"
	default:
		return "Unknown error code"
	}
}

// IsLexical returns true if the code identifies a scanner-stage fault.
func IsLexical(code string) bool {
	return len(code) > 0 && code[0] == 'L'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsLexical(code):
		return "Lexical"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	default:
		return "Unknown"
	}
}
