package eval

import (
	"math"
	"testing"

	"github.com/cloudcmds/calc/parser"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2", 2},
		{"2 + 5", 7},
		{"10 - 4 - 3", 3},
		{"2 * 3 + 1", 7},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"7 % 4", 3},
		{"2 ^ 10", 1024},
		{"2 ^ 3 ^ 2", 512},
		{"-2", -2},
		{"-2 + -5", -7},
		{"-2 ^ 2", 4},
		{"8 / 4 / 2", 1},
		{"sqrt(9)", 3},
		{"abs(-3.5)", 3.5},
		{"floor(2.7)", 2},
		{"ceil(2.1)", 3},
		{"round(2.5)", 3},
		{"trunc(22.54)", 22},
		{"min(4, 2, 8)", 2},
		{"max(1, 2)", 2},
		{"pow(2, 5)", 32},
		{"log(1000)", 3},
		{"7 + max(2, min(47.94, trunc(22.54)))", 29},
		{"3 + 4 * 2 / (1 - 5) ^ 2 ^ 3", 3.0001220703125},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := Evaluate(tt.input)
			require.Nil(t, err)
			require.InDelta(t, tt.want, value, 1e-9)
		})
	}
}

func TestEvaluateConstants(t *testing.T) {
	value, err := Evaluate("pi()")
	require.Nil(t, err)
	require.Equal(t, math.Pi, value)

	value, err = Evaluate("e()")
	require.Nil(t, err)
	require.Equal(t, math.E, value)

	value, err = Evaluate("sin(pi() / 2)")
	require.Nil(t, err)
	require.InDelta(t, 1.0, value, 1e-9)
}

func TestEvaluateFloatSemantics(t *testing.T) {
	value, err := Evaluate("1 / 0")
	require.Nil(t, err)
	require.True(t, math.IsInf(value, 1))

	value, err = Evaluate("-1 / 0")
	require.Nil(t, err)
	require.True(t, math.IsInf(value, -1))

	value, err = Evaluate("5 % 0")
	require.Nil(t, err)
	require.True(t, math.IsNaN(value))

	value, err = Evaluate("sqrt(-1)")
	require.Nil(t, err)
	require.True(t, math.IsNaN(value))
}

func TestEvaluateUnknownFunction(t *testing.T) {
	_, err := Evaluate("nope(1)")
	require.NotNil(t, err)
	require.Equal(t, `unknown function "nope"`, err.Error())

	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
}

func TestEvaluateArity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sqrt()", "sqrt: expected 1 argument (0 given)"},
		{"sqrt(1, 2)", "sqrt: expected 1 argument (2 given)"},
		{"pow(2)", "pow: expected 2 arguments (1 given)"},
		{"min()", "min: expected at least 1 argument (0 given)"},
		{"pi(1)", "pi: expected no arguments (1 given)"},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.input)
		require.NotNil(t, err, tt.input)
		require.Equal(t, tt.want, err.Error())
	}
}

func TestEvaluateSyntaxErrorPassthrough(t *testing.T) {
	_, err := Evaluate("2 +")
	require.NotNil(t, err)
	require.True(t, parser.IsSyntaxError(err))
}

func TestEvaluatorOptions(t *testing.T) {
	double := func(args ...float64) (float64, error) {
		return args[0] * 2, nil
	}

	expr, err := parser.Parse("double(21)")
	require.Nil(t, err)

	// Not registered by default
	_, err2 := New().Evaluate(expr)
	require.NotNil(t, err2)

	value, err2 := New(WithFunc("double", double)).Evaluate(expr)
	require.Nil(t, err2)
	require.Equal(t, 42.0, value)

	// WithoutDefaults drops the built ins
	sqrtExpr, err := parser.Parse("sqrt(4)")
	require.Nil(t, err)
	_, err2 = New(WithoutDefaults()).Evaluate(sqrtExpr)
	require.NotNil(t, err2)
	require.Equal(t, `unknown function "sqrt"`, err2.Error())
}
