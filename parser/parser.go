// Package parser builds expression syntax trees from the token trees
// produced by the grammar package.
//
// Operator grouping is resolved here, using precedence climbing over the
// flat operand/operator sequences in the token tree. Addition and
// subtraction bind loosest, then multiplication, division, and modulo,
// then exponentiation, which groups to the right, then unary minus.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cloudcmds/calc/ast"
	"github.com/cloudcmds/calc/grammar"
	"github.com/cloudcmds/calc/token"
)

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in positions and error messages.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for recognition.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser converts token trees to expression syntax trees.
type Parser struct {
	filename string
	maxDepth int
}

// New returns a Parser with the given options applied.
func New(options ...Option) *Parser {
	p := &Parser{}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse parses the given input text and returns the corresponding
// expression syntax tree. The input must contain exactly one expression.
// If the input is not a valid expression, a *grammar.SyntaxError is
// returned and the tree is nil.
func Parse(input string, options ...Option) (ast.Expr, error) {
	p := New(options...)
	var gopts []grammar.Option
	if p.filename != "" {
		gopts = append(gopts, grammar.WithFilename(p.filename))
	}
	if p.maxDepth > 0 {
		gopts = append(gopts, grammar.WithMaxDepth(p.maxDepth))
	}
	tree, err := grammar.Parse(input, gopts...)
	if err != nil {
		return nil, err
	}
	return p.Build(tree)
}

// Build converts a recognized token tree to its expression syntax tree.
// The node must be an equation or expr node. A malformed tree results in
// an *InternalError; trees produced by the grammar package are always
// well formed.
func (p *Parser) Build(node *grammar.Node) (ast.Expr, error) {
	switch node.Kind {
	case grammar.Equation:
		expr := node.First(grammar.Expr)
		if expr == nil {
			return nil, p.internalf(node, "equation node has no expression")
		}
		return p.buildExpr(expr)
	case grammar.Expr:
		return p.buildExpr(node)
	}
	return nil, p.internalf(node, "cannot build %q node", node.Kind)
}

// buildExpr converts one expr node, consuming its entire child sequence.
func (p *Parser) buildExpr(node *grammar.Node) (ast.Expr, error) {
	c := &cursor{children: node.Children}
	expr, err := p.buildExpression(c, LOWEST)
	if err != nil {
		return nil, err
	}
	if rest := c.peek(); rest != nil {
		return nil, p.internalf(rest, "unexpected %q node after expression", rest.Kind)
	}
	return expr, nil
}

// buildExpression climbs the operand/operator sequence, grouping operators
// with precedence at least minPrecedence.
func (p *Parser) buildExpression(c *cursor, minPrecedence int) (ast.Expr, error) {
	left, err := p.buildOperand(c)
	if err != nil {
		return nil, err
	}
	for {
		op := c.peek()
		if op == nil {
			break
		}
		precedence, ok := precedences[op.Kind]
		if !ok {
			return nil, p.internalf(op, "unexpected %q node in operator position", op.Kind)
		}
		if precedence < minPrecedence {
			break
		}
		c.next()

		// A right associative operator admits itself in its own right
		// operand; a left associative one does not.
		minRight := precedence + 1
		if rightAssociative[op.Kind] {
			minRight = precedence
		}
		right, err := p.buildExpression(c, minRight)
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{
			X:     left,
			OpPos: op.StartPosition,
			Op:    operators[op.Kind],
			Y:     right,
		}
	}
	return left, nil
}

// buildOperand converts the next operand in the sequence: a number, a
// negation, a grouped expression, or a function call.
func (p *Parser) buildOperand(c *cursor) (ast.Expr, error) {
	node := c.next()
	if node == nil {
		return nil, p.internalf(nil, "expression ended without an operand")
	}
	switch node.Kind {
	case grammar.Number:
		value, err := strconv.ParseFloat(node.Literal, 64)
		if err != nil {
			return nil, p.internalf(node, "invalid number literal %q", node.Literal)
		}
		return &ast.Number{
			ValuePos: node.StartPosition,
			Literal:  node.Literal,
			Value:    value,
		}, nil
	case grammar.UnaryMinus:
		x, err := p.buildExpression(c, PREFIX)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryMinus{OpPos: node.StartPosition, X: x}, nil
	case grammar.Expr:
		return p.buildExpr(node)
	case grammar.Function:
		return p.buildFunction(node)
	}
	return nil, p.internalf(node, "unexpected %q node in operand position", node.Kind)
}

// buildFunction converts a function node to a FunctionCall expression.
func (p *Parser) buildFunction(node *grammar.Node) (ast.Expr, error) {
	name := node.First(grammar.FunctionName)
	if name == nil {
		return nil, p.internalf(node, "function node has no name")
	}
	args := node.First(grammar.FunctionArgs)
	if args == nil {
		return nil, p.internalf(node, "function node has no argument list")
	}
	call := &ast.FunctionCall{
		NamePos: name.StartPosition,
		Name:    name.Literal,
		Lparen:  args.StartPosition,
		Rparen:  args.EndPosition,
	}
	for _, argNode := range args.Children {
		if argNode.Kind != grammar.Expr {
			return nil, p.internalf(argNode, "unexpected %q node in argument list", argNode.Kind)
		}
		arg, err := p.buildExpr(argNode)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
	}
	return call, nil
}

func (p *Parser) internalf(node *grammar.Node, format string, args ...interface{}) error {
	e := &InternalError{
		message: fmt.Sprintf(format, args...),
		file:    p.filename,
	}
	if node != nil {
		e.startPosition = node.StartPosition
		e.endPosition = node.EndPosition
	} else {
		e.startPosition = token.NoPos
		e.endPosition = token.NoPos
	}
	return e
}

// cursor tracks the read position within the child sequence of one expr node.
type cursor struct {
	children []*grammar.Node
	pos      int
}

func (c *cursor) peek() *grammar.Node {
	if c.pos < len(c.children) {
		return c.children[c.pos]
	}
	return nil
}

func (c *cursor) next() *grammar.Node {
	n := c.peek()
	if n != nil {
		c.pos++
	}
	return n
}
