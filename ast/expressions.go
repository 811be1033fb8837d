package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cloudcmds/calc/token"
)

// Op identifies a binary arithmetic operator. The value of an Op is its
// source text.
type Op string

// Binary operators
const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
	OpModulo   Op = "%"
	OpPower    Op = "^"
)

// Number is an expression node that holds a numeric literal. All numbers
// are represented as float64 values.
type Number struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "3.1415")
	Value    float64        // the parsed value
}

func (x *Number) exprNode() {}

func (x *Number) Pos() token.Position { return x.ValuePos }
func (x *Number) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Number) String() string { return strconv.FormatFloat(x.Value, 'g', -1, 64) }

// BinOp is an operator expression where the operator is between the two
// operands. Examples include "x + y" and "5 - 1".
type BinOp struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    Op             // operator: "+", "-", "*", "/", "%", "^"
	Y     Expr           // right operand
}

func (x *BinOp) exprNode() {}

func (x *BinOp) Pos() token.Position { return x.X.Pos() }
func (x *BinOp) End() token.Position { return x.Y.End() }

func (x *BinOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(string(x.Op))
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// UnaryMinus is an expression node that negates its operand.
type UnaryMinus struct {
	OpPos token.Position // position of "-"
	X     Expr           // operand
}

func (x *UnaryMinus) exprNode() {}

func (x *UnaryMinus) Pos() token.Position { return x.OpPos }
func (x *UnaryMinus) End() token.Position { return x.X.End() }

func (x *UnaryMinus) String() string {
	var out bytes.Buffer
	out.WriteString("-(")
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// FunctionCall is an expression node that applies a named function to zero
// or more argument expressions.
type FunctionCall struct {
	NamePos token.Position // position of the function name
	Name    string         // function name (e.g., "sin", "max")
	Lparen  token.Position // position of "("
	Args    []Expr         // argument expressions, in source order
	Rparen  token.Position // position of ")"
}

func (x *FunctionCall) exprNode() {}

func (x *FunctionCall) Pos() token.Position { return x.NamePos }
func (x *FunctionCall) End() token.Position { return x.Rparen.Advance(1) }

func (x *FunctionCall) String() string {
	args := make([]string, 0, len(x.Args))
	for _, arg := range x.Args {
		args = append(args, arg.String())
	}
	var out bytes.Buffer
	out.WriteString(x.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
