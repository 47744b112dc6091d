package parser

// The frontend reports two families of recoverable faults. Both are plain
// values accumulated during a run, never Go errors: a malformed input is an
// expected outcome of a parse, not a failure of the parser.

type LexErrorKind int

const (
	UnknownCharacter LexErrorKind = iota
	UnterminatedString
	UnterminatedChar
	InvalidEscapeSequence
	InvalidNumberFormat
)

func (k LexErrorKind) String() string {
	switch k {
	case UnknownCharacter:
		return "UnknownCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedChar:
		return "UnterminatedChar"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	case InvalidNumberFormat:
		return "InvalidNumberFormat"
	default:
		return "LexErrorKind(?)"
	}
}

type SyntaxErrorKind int

const (
	UnexpectedToken SyntaxErrorKind = iota
	MissingToken
	UnexpectedEOF
	NestingTooDeep
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingToken:
		return "MissingToken"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "SyntaxErrorKind(?)"
	}
}

type ScanError struct {
	Kind     LexErrorKind
	Message  string
	Position Position // line, column, offset of the offending start
	Length   int      // how many characters it covers
}

type ParseError struct {
	Kind     SyntaxErrorKind
	Message  string
	Position Position
	Expected []TokenType // for UnexpectedToken / MissingToken
	Found    TokenType   // for UnexpectedToken
}
