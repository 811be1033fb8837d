package lexer

import (
	"testing"

	"github.com/cloudcmds/calc/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "3.14 + foo(2, -1) * 10 % 2 ^ 5 / 4"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.NUMBER, "3.14"},
		{token.PLUS, "+"},
		{token.IDENT, "foo"},
		{token.LPAREN, "("},
		{token.NUMBER, "2"},
		{token.COMMA, ","},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.RPAREN, ")"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "10"},
		{token.MOD, "%"},
		{token.NUMBER, "2"},
		{token.CARET, "^"},
		{token.NUMBER, "5"},
		{token.SLASH, "/"},
		{token.NUMBER, "4"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestEOFForever(t *testing.T) {
	l := New("1")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.NUMBER, tok.Type)
	for i := 0; i < 3; i++ {
		tok, err = l.Next()
		require.Nil(t, err)
		require.Equal(t, token.EOF, tok.Type)
	}
}

func TestWhitespace(t *testing.T) {
	l := New("  1\t+\n2  ")
	var types []token.Type
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	require.Equal(t, []token.Type{
		token.NUMBER, token.PLUS, token.NUMBER, token.EOF,
	}, types)
}

func TestTokenPositions(t *testing.T) {
	l := New("12 + 345")

	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, 0, tok.StartPosition.Char)
	require.Equal(t, 1, tok.EndPosition.Char)
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, 3, tok.StartPosition.Char)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, 5, tok.StartPosition.Char)
	require.Equal(t, 7, tok.EndPosition.Char)
	require.Equal(t, "345", tok.Literal)
}

func TestLineTracking(t *testing.T) {
	l := New("1 +\n22")

	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, 1, tok.StartPosition.LineNumber())

	_, err = l.Next()
	require.Nil(t, err)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, "22", tok.Literal)
	require.Equal(t, 2, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
	require.Equal(t, "22", l.GetLineText(tok))
}

func TestNumberLiterals(t *testing.T) {
	for _, input := range []string{"0", "7", "123", "0.5", "47.94", "3.1415"} {
		l := New(input)
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, token.NUMBER, tok.Type)
		require.Equal(t, input, tok.Literal)
	}
}

func TestBadNumberLiteral(t *testing.T) {
	l := New("1.")
	tok, err := l.Next()
	require.NotNil(t, err)
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.Equal(t, `invalid number literal "1." (column 2)`, err.Error())

	// End position points at the last rune of the literal, as with
	// valid tokens
	require.Equal(t, 0, tok.StartPosition.Char)
	require.Equal(t, 1, tok.EndPosition.Char)

	// A decimal point must be followed by a digit
	l = New("1.x")
	_, err = l.Next()
	require.NotNil(t, err)
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sin", "sin"},
		{"max_value", "max_value"},
		{"_private", "_private"},
		{"log10", "log10"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.Next()
		require.Nil(t, err)
		require.Equal(t, token.IDENT, tok.Type)
		require.Equal(t, tt.want, tok.Literal)
	}
}

func TestInvalidCharacter(t *testing.T) {
	l := New("2 $ 3")
	_, err := l.Next()
	require.Nil(t, err)

	tok, err := l.Next()
	require.NotNil(t, err)
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.Equal(t, `invalid character '$' (column 3)`, err.Error())

	// Single rune token: end position equals start position
	require.Equal(t, tok.StartPosition, tok.EndPosition)
}

func TestGetLineText(t *testing.T) {
	l := New("1 + 2")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "1 + 2", l.GetLineText(tok))
}

func TestFilename(t *testing.T) {
	l := New("1")
	require.Equal(t, "", l.Filename())
	l.SetFilename("input.txt")
	require.Equal(t, "input.txt", l.Filename())
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, "input.txt", tok.StartPosition.File)
}
