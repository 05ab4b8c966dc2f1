package parser

import (
	"strings"

	"github.com/conradludgate/interim/pkg/token"
)

// Lexer tokenizes a date expression. It is lazy (one token per Next call),
// finite, and non-restartable. Words are lowercased; digit runs become a
// single NUMBER token retaining the literal so the digit count survives.
// Characters outside the recognized set act as separators and are skipped.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Next returns the next token. After the input is exhausted it returns EOF
// tokens forever, so the parser can always look ahead safely.
func (l *Lexer) Next() token.Token {
	l.skipSeparators()

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Pos: pos}
	case l.ch == '-':
		return l.punct(token.DASH, "-", pos)
	case l.ch == '/':
		return l.punct(token.SLASH, "/", pos)
	case l.ch == ':':
		return l.punct(token.COLON, ":", pos)
	case l.ch == '.':
		return l.punct(token.DOT, ".", pos)
	case l.ch == ',':
		return l.punct(token.COMMA, ",", pos)
	case l.ch == '+':
		return l.punct(token.PLUS, "+", pos)
	case isDigit(l.ch):
		return token.Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}
	default: // isLetter, guaranteed by skipSeparators
		word := strings.ToLower(l.readWord())
		typ := token.IDENT
		if word == "am" || word == "pm" {
			typ = token.AMPM
		}
		return token.Token{Type: typ, Literal: word, Pos: pos}
	}
}

// punct emits a single-character punctuation token.
func (l *Lexer) punct(t token.Type, lit string, pos token.Position) token.Token {
	l.readChar()
	return token.Token{Type: t, Literal: lit, Pos: pos}
}

// skipSeparators skips whitespace and any character that is not a digit,
// letter, or recognized punctuation.
func (l *Lexer) skipSeparators() {
	for l.ch != 0 && !isDigit(l.ch) && !isLetter(l.ch) && !isPunct(l.ch) {
		l.readChar()
	}
}

// readNumber reads a contiguous digit run.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readWord reads a contiguous letter run.
func (l *Lexer) readWord() string {
	start := l.pos
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isPunct(ch byte) bool {
	switch ch {
	case '-', '/', ':', '.', ',', '+':
		return true
	}
	return false
}

// Tokenize returns all tokens from the input, including the final EOF.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}
