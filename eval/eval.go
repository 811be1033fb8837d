// Package eval computes the numeric value of parsed expressions. All
// arithmetic follows IEEE 754 float64 semantics: division by zero yields
// an infinity and modulo by zero yields NaN, neither is an error.
package eval

import (
	"fmt"
	"math"

	"github.com/cloudcmds/calc/ast"
	"github.com/cloudcmds/calc/parser"
	"github.com/cloudcmds/calc/token"
)

// Error indicates that an expression could not be evaluated.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return e.Message
}

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithFunc registers a function under the given name, replacing any
// default with that name.
func WithFunc(name string, fn Func) Option {
	return func(e *Evaluator) {
		e.funcs[name] = fn
	}
}

// WithoutDefaults removes the default function registry. Only functions
// registered with WithFunc are then callable.
func WithoutDefaults() Option {
	return func(e *Evaluator) {
		e.funcs = map[string]Func{}
	}
}

// Evaluator computes the value of expression syntax trees.
type Evaluator struct {
	funcs map[string]Func
}

// New returns an Evaluator with the default functions and the given
// options applied.
func New(options ...Option) *Evaluator {
	e := &Evaluator{funcs: DefaultFuncs()}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Evaluate parses and evaluates the input text using the default functions.
func Evaluate(input string) (float64, error) {
	expr, err := parser.Parse(input)
	if err != nil {
		return 0, err
	}
	return New().Evaluate(expr)
}

// Evaluate computes the value of the given expression.
func (e *Evaluator) Evaluate(expr ast.Expr) (float64, error) {
	switch n := expr.(type) {
	case *ast.Number:
		return n.Value, nil
	case *ast.UnaryMinus:
		value, err := e.Evaluate(n.X)
		if err != nil {
			return 0, err
		}
		return -value, nil
	case *ast.BinOp:
		return e.evaluateBinOp(n)
	case *ast.FunctionCall:
		return e.evaluateCall(n)
	}
	return 0, e.errorf(expr.Pos(), "unsupported expression type %T", expr)
}

func (e *Evaluator) evaluateBinOp(n *ast.BinOp) (float64, error) {
	left, err := e.Evaluate(n.X)
	if err != nil {
		return 0, err
	}
	right, err := e.Evaluate(n.Y)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSubtract:
		return left - right, nil
	case ast.OpMultiply:
		return left * right, nil
	case ast.OpDivide:
		return left / right, nil
	case ast.OpModulo:
		return math.Mod(left, right), nil
	case ast.OpPower:
		return math.Pow(left, right), nil
	}
	return 0, e.errorf(n.OpPos, "unsupported operator %q", n.Op)
}

func (e *Evaluator) evaluateCall(n *ast.FunctionCall) (float64, error) {
	fn, ok := e.funcs[n.Name]
	if !ok {
		return 0, e.errorf(n.Pos(), "unknown function %q", n.Name)
	}
	args := make([]float64, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg, err := e.Evaluate(argExpr)
		if err != nil {
			return 0, err
		}
		args = append(args, arg)
	}
	value, err := fn(args...)
	if err != nil {
		return 0, e.errorf(n.Pos(), "%s: %s", n.Name, err)
	}
	return value, nil
}

func (e *Evaluator) errorf(pos token.Position, format string, args ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: pos}
}
