// Package calc parses and evaluates arithmetic expressions.
//
// Expressions support the binary operators + - * / % ^, unary minus,
// grouping parentheses, and calls to named functions such as sqrt(2) or
// max(1, 2). All values are float64.
//
// Parse returns the expression syntax tree and Eval computes its value:
//
//	value, err := calc.Eval("3 + 4 * 2 / (1 - 5) ^ 2 ^ 3")
package calc

import (
	"github.com/cloudcmds/calc/ast"
	"github.com/cloudcmds/calc/eval"
	"github.com/cloudcmds/calc/parser"
)

// Option configures a parse or an evaluation.
type Option func(*options)

type options struct {
	filename string
	maxDepth int
	funcs    map[string]eval.Func
}

func collectOptions(opts ...Option) *options {
	o := &options{funcs: map[string]eval.Func{}}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

func (o *options) evalOpts() []eval.Option {
	var opts []eval.Option
	for name, fn := range o.funcs {
		opts = append(opts, eval.WithFunc(name, fn))
	}
	return opts
}

// WithFilename sets the filename for the expression being parsed.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for parsing.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithFunc makes a function available to evaluations under the given
// name. This option is additive, so multiple WithFunc options may be
// supplied. Supplying the name of a built in function replaces it.
func WithFunc(name string, fn eval.Func) Option {
	return func(o *options) {
		o.funcs[name] = fn
	}
}

// Parse returns the syntax tree for the given expression. If the input
// is not a valid expression a *grammar.SyntaxError is returned.
func Parse(input string, opts ...Option) (ast.Expr, error) {
	o := collectOptions(opts...)
	return parser.Parse(input, o.parserOpts()...)
}

// Eval parses the given expression and computes its value.
func Eval(input string, opts ...Option) (float64, error) {
	o := collectOptions(opts...)
	expr, err := parser.Parse(input, o.parserOpts()...)
	if err != nil {
		return 0, err
	}
	return eval.New(o.evalOpts()...).Evaluate(expr)
}
