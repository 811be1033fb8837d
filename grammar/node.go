// Package grammar recognizes the textual syntax of arithmetic expressions
// and produces a typed token tree for the parser to consume.
package grammar

import (
	"strings"

	"github.com/cloudcmds/calc/token"
)

// Kind identifies the grammatical role of a node in the token tree.
type Kind string

// Node kinds
const (
	Equation     Kind = "equation"
	Expr         Kind = "expr"
	Number       Kind = "number"
	Add          Kind = "add"
	Subtract     Kind = "subtract"
	Multiply     Kind = "multiply"
	Divide       Kind = "divide"
	Modulo       Kind = "modulo"
	Power        Kind = "power"
	UnaryMinus   Kind = "unary_minus"
	Function     Kind = "function"
	FunctionName Kind = "function_name"
	FunctionArgs Kind = "function_args"
)

// Node is one node in the token tree. Leaf nodes (numbers, operators,
// function names) carry the literal text they matched. Interior nodes own
// an ordered sequence of children.
//
// An Expr node holds a flat sequence of operand and operator children:
// zero or more unary_minus markers, an operand, then optionally an infix
// operator and the pattern repeats. Grouping parentheses leave no node of
// their own; the grouped Expr appears directly as an operand.
type Node struct {
	Kind          Kind
	Literal       string
	StartPosition token.Position
	EndPosition   token.Position
	Children      []*Node
}

// First returns the first child with the given kind, or nil.
func (n *Node) First(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// String returns a compact debug rendering of the node and its children,
// e.g. "expr(number:2 add:+ number:5)". Leaf nodes print as kind:literal.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString(string(n.Kind))
	if len(n.Children) == 0 {
		if n.Literal != "" {
			b.WriteString(":")
			b.WriteString(n.Literal)
		}
		return
	}
	b.WriteString("(")
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(" ")
		}
		c.write(b)
	}
	b.WriteString(")")
}
