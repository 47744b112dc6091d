package parser

import "sort"

// KEYWORDS maps reserved spellings to their token types. The Urdu-mapped
// control keywords are part of the external contract: agr=if, varna=else,
// jabtak=while, tabtak=for, dikhao=print, likho=input. Matching is exact
// and case-sensitive; the map is never mutated after initialization.
var KEYWORDS = map[string]TokenType{
	"agr":      AGR,
	"varna":    VARNA,
	"jabtak":   JABTAK,
	"tabtak":   TABTAK,
	"do":       DO,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"dikhao":   DIKHAO,
	"likho":    LIKHO,
	"int":      INT,
	"float":    FLOAT,
	"bool":     BOOL,
	"string":   STRING,
	"char":     CHAR,
	"true":     TRUE,
	"false":    FALSE,
}

// KeywordSpellings returns every reserved spelling in sorted order.
func KeywordSpellings() []string {
	spellings := make([]string, 0, len(KEYWORDS))
	for spelling := range KEYWORDS {
		spellings = append(spellings, spelling)
	}
	sort.Strings(spellings)
	return spellings
}
