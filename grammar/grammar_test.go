package grammar

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecognizeTreeShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2", "equation(expr(number:2))"},
		{"2 + 5", "equation(expr(number:2 add:+ number:5))"},
		{"2+5", "equation(expr(number:2 add:+ number:5))"},
		{"1 - 2 * 3", "equation(expr(number:1 subtract:- number:2 multiply:* number:3))"},
		{"6 / 3 % 2", "equation(expr(number:6 divide:/ number:3 modulo:% number:2))"},
		{"2 ^ 10", "equation(expr(number:2 power:^ number:10))"},
		{"-2", "equation(expr(unary_minus:- number:2))"},
		{"-2 + -5", "equation(expr(unary_minus:- number:2 add:+ unary_minus:- number:5))"},
		{"3 - -7", "equation(expr(number:3 subtract:- unary_minus:- number:7))"},
		{"(2 + 5) * 3", "equation(expr(expr(number:2 add:+ number:5) multiply:* number:3))"},
		{"((2))", "equation(expr(expr(expr(number:2))))"},
		{"pi()", "equation(expr(function(function_name:pi function_args)))"},
		{"sqrt(4)", "equation(expr(function(function_name:sqrt function_args(expr(number:4)))))"},
		{"max(1, 2)", "equation(expr(function(function_name:max function_args(expr(number:1) expr(number:2)))))"},
		{"max(1+2, 3)", "equation(expr(function(function_name:max function_args(expr(number:1 add:+ number:2) expr(number:3)))))"},
		{"2 * sin(0.5)", "equation(expr(number:2 multiply:* function(function_name:sin function_args(expr(number:0.5)))))"},
		{"-sqrt(4)", "equation(expr(unary_minus:- function(function_name:sqrt function_args(expr(number:4)))))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			require.Nil(t, err)
			require.NotNil(t, node)
			require.Equal(t, tt.want, node.String())
		})
	}
}

func TestRecognizeWhitespaceInsensitive(t *testing.T) {
	a, err := Parse("1+2*3")
	require.Nil(t, err)
	b, err := Parse("  1 +\t2   * 3\n")
	require.Nil(t, err)
	require.Equal(t, a.String(), b.String())
}

func TestRecognizeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `syntax error: unexpected end of input while parsing expression`},
		{"   ", `syntax error: unexpected end of input while parsing expression`},
		{"2 +", `syntax error: unexpected end of input while parsing expression`},
		{"* 3", `syntax error: unexpected "*" while parsing expression`},
		{"(2 + 3", `syntax error: unexpected end of input while parsing group (expected ")")`},
		{"2 + 3)", `syntax error: unexpected ")" after expression`},
		{"2 5", `syntax error: unexpected "5" after expression`},
		{"foo", `syntax error: unexpected end of input after function name "foo" (expected "(")`},
		{"foo + 1", `syntax error: unexpected "+" after function name "foo" (expected "(")`},
		{"max(1,)", `syntax error: unexpected ")" while parsing expression`},
		{"max(1 2)", `syntax error: unexpected "2" while parsing arguments of "max" (expected ")")`},
		{"max(1", `syntax error: unexpected end of input while parsing arguments of "max" (expected ")")`},
		{"2 $ 3", `syntax error: invalid character '$' (column 3)`},
		{"1.", `syntax error: invalid number literal "1." (column 2)`},
		{"1. + 2", `syntax error: invalid number literal "1." (column 2)`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			require.Nil(t, node)
			require.NotNil(t, err)
			require.Equal(t, tt.want, err.Error())
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestRecognizeErrorPositions(t *testing.T) {
	_, err := Parse("2 + * 3", WithFilename("input.txt"))
	require.NotNil(t, err)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, "input.txt", syntaxErr.File())
	require.Equal(t, 1, syntaxErr.StartPosition().LineNumber())
	require.Equal(t, 5, syntaxErr.StartPosition().ColumnNumber())
	require.Equal(t, "2 + * 3", syntaxErr.SourceCode())
}

func TestRecognizeFriendlyErrorMessage(t *testing.T) {
	_, err := Parse("2 + * 3", WithFilename("input.txt"))
	require.NotNil(t, err)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	msg := syntaxErr.FriendlyErrorMessage()
	require.Contains(t, msg, `syntax error: unexpected "*" while parsing expression`)
	require.Contains(t, msg, "--> input.txt:1:5")
	require.Contains(t, msg, "2 + * 3")
	require.Contains(t, msg, "^")
}

func TestRecognizeMaxDepth(t *testing.T) {
	input := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)

	node, err := Parse(input)
	require.Nil(t, err)
	require.NotNil(t, node)

	node, err = Parse(input, WithMaxDepth(5))
	require.Nil(t, node)
	require.NotNil(t, err)
	require.Equal(t, "syntax error: maximum nesting depth exceeded", err.Error())
}

func TestNodeFirst(t *testing.T) {
	node, err := Parse("max(1, 2)")
	require.Nil(t, err)
	expr := node.First(Expr)
	require.NotNil(t, expr)
	fn := expr.First(Function)
	require.NotNil(t, fn)
	name := fn.First(FunctionName)
	require.NotNil(t, name)
	require.Equal(t, "max", name.Literal)
	require.Nil(t, fn.First(Number))
}

func TestRecognizeNoPartialTree(t *testing.T) {
	for _, input := range []string{"2 +", "(1", "max(", "1 2 3"} {
		node, err := Parse(input)
		require.Nil(t, node, fmt.Sprintf("expected no tree for %q", input))
		require.NotNil(t, err)
	}
}
