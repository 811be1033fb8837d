// Package ast defines the abstract syntax tree representation of arithmetic
// expressions.
package ast

import "github.com/cloudcmds/calc/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a fully parenthesized rendering of the node that makes
	// the parsed operator grouping explicit.
	String() string
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}
