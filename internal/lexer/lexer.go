// Package lexer scans arithmetic expression text and produces a stream of tokens.
package lexer

import (
	"fmt"
	"unicode"

	"github.com/cloudcmds/calc/token"
)

// Lexer scans an input string and returns one token at a time via Next.
// The minus sign is always emitted as an operator token; whether it acts
// as unary or binary minus is decided later, during recognition.
type Lexer struct {
	// input is the text being scanned
	input []rune

	// position is the rune offset of the next rune to read
	position int

	// line is the 0-indexed line of the next rune to read
	line int

	// column is the 0-indexed column of the next rune to read
	column int

	// lineStart is the rune offset of the start of the current line
	lineStart int

	// filename of the input, used in positions and error messages
	filename string
}

// New returns a Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// SetFilename sets the file name associated with the input.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the file name associated with the input.
func (l *Lexer) Filename() string {
	return l.filename
}

// Error indicates the input contained text that is not a valid token.
type Error struct {
	Message  string
	Position token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (column %d)", e.Message, e.Position.ColumnNumber())
}

// Next returns the next token from the input. At the end of the input an EOF
// token is returned, indefinitely. If the input contains text that is not a
// valid token, an ILLEGAL token and a non-nil error are returned.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	start := l.pos()
	r, ok := l.peek()
	if !ok {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}
	switch {
	case isDigit(r):
		lit, err := l.scanNumber()
		if err != nil {
			return l.illegal(start, lit), err
		}
		return l.emit(token.NUMBER, lit, start), nil
	case isIdentStart(r):
		return l.emit(token.IDENT, l.scanIdent(), start), nil
	}
	l.read()
	switch r {
	case '+':
		return l.emit(token.PLUS, "+", start), nil
	case '-':
		return l.emit(token.MINUS, "-", start), nil
	case '*':
		return l.emit(token.ASTERISK, "*", start), nil
	case '/':
		return l.emit(token.SLASH, "/", start), nil
	case '%':
		return l.emit(token.MOD, "%", start), nil
	case '^':
		return l.emit(token.CARET, "^", start), nil
	case '(':
		return l.emit(token.LPAREN, "(", start), nil
	case ')':
		return l.emit(token.RPAREN, ")", start), nil
	case ',':
		return l.emit(token.COMMA, ",", start), nil
	}
	tok := l.illegal(start, string(r))
	return tok, &Error{
		Message:  fmt.Sprintf("invalid character %q", r),
		Position: start,
	}
}

// GetLineText returns the full line of input text containing the given token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start >= len(l.input) {
		return ""
	}
	end := start
	for end < len(l.input) && l.input[end] != '\n' {
		end++
	}
	return string(l.input[start:end])
}

// scanNumber scans a numeric literal: digits with an optional fractional
// part. A decimal point must be followed by at least one digit.
func (l *Lexer) scanNumber() (string, error) {
	start := l.position
	for {
		r, ok := l.peek()
		if !ok || !isDigit(r) {
			break
		}
		l.read()
	}
	if r, ok := l.peek(); ok && r == '.' {
		dotPos := l.pos()
		l.read()
		r, ok := l.peek()
		if !ok || !isDigit(r) {
			lit := string(l.input[start:l.position])
			return lit, &Error{
				Message:  fmt.Sprintf("invalid number literal %q", lit),
				Position: dotPos,
			}
		}
		for {
			r, ok := l.peek()
			if !ok || !isDigit(r) {
				break
			}
			l.read()
		}
	}
	return string(l.input[start:l.position]), nil
}

// scanIdent scans an identifier: a letter or underscore followed by any
// number of letters, digits, or underscores.
func (l *Lexer) scanIdent() string {
	start := l.position
	for {
		r, ok := l.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		l.read()
	}
	return string(l.input[start:l.position])
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.read()
	}
}

// peek returns the next rune without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.position >= len(l.input) {
		return 0, false
	}
	return l.input[l.position], true
}

// read consumes the next rune, updating line and column tracking.
func (l *Lexer) read() rune {
	r := l.input[l.position]
	l.position++
	if r == '\n' {
		l.line++
		l.column = 0
		l.lineStart = l.position
	} else {
		l.column++
	}
	return r
}

// pos returns the position of the next rune to read.
func (l *Lexer) pos() token.Position {
	return token.Position{
		Char:      l.position,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.filename,
	}
}

func (l *Lexer) emit(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   start.Advance(len([]rune(literal)) - 1),
	}
}

// illegal builds an ILLEGAL token. Like emit, EndPosition is the position
// of the last rune of the literal.
func (l *Lexer) illegal(start token.Position, literal string) token.Token {
	return token.Token{
		Type:          token.ILLEGAL,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   start.Advance(len([]rune(literal)) - 1),
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
