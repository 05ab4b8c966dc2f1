// Package token defines the lexical tokens of the date expression language.
//
// The vocabulary is deliberately tiny: numbers, bare words, the punctuation
// set used by date and time forms, and an explicit EOF so the parser can
// always test for stream exhaustion without a separate "has more" query.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// EOF marks stream exhaustion. Bytes outside the vocabulary act as
	// separators in the lexer, so there is no error token.
	EOF Type = iota

	// Literals
	NUMBER // 2018, 8, 0400 (digit count is significant)
	IDENT  // friday, apr, ago (lowercased by the lexer)
	AMPM   // am, pm

	// Punctuation
	DASH  // -
	SLASH // /
	COLON // :
	DOT   // .
	COMMA // ,
	PLUS  // +
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[Type]string{
	EOF: "EOF",

	NUMBER: "NUMBER",
	IDENT:  "IDENT",
	AMPM:   "AMPM",

	DASH:  "-",
	SLASH: "/",
	COLON: ":",
	DOT:   ".",
	COMMA: ",",
	PLUS:  "+",
}

// Token is a single lexical token with its source position.
type Token struct {
	Type    Type
	Literal string // lowercased for IDENT/AMPM, raw digit run for NUMBER
	Pos     Position
}

// Digits returns the number of digits in a NUMBER literal. The digit count
// distinguishes 2-digit years ("17") from 4-digit years ("2017") and scales
// fractional seconds.
func (t Token) Digits() int {
	return len(t.Literal)
}

// Span returns the source range covered by the token.
func (t Token) Span() Span {
	end := t.Pos
	end.Column += len(t.Literal)
	end.Offset += len(t.Literal)
	return Span{Start: t.Pos, End: end}
}
