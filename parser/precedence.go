package parser

import (
	"github.com/cloudcmds/calc/ast"
	"github.com/cloudcmds/calc/grammar"
)

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	SUM     // + or -
	PRODUCT // *, / or %
	POWER   // ^
	PREFIX  // -X
)

// Precedences for each operator node kind
var precedences = map[grammar.Kind]int{
	grammar.Add:      SUM,
	grammar.Subtract: SUM,
	grammar.Multiply: PRODUCT,
	grammar.Divide:   PRODUCT,
	grammar.Modulo:   PRODUCT,
	grammar.Power:    POWER,
}

// rightAssociative operators group to the right: 2^3^4 means 2^(3^4).
var rightAssociative = map[grammar.Kind]bool{
	grammar.Power: true,
}

// operators maps operator node kinds to their AST operators.
var operators = map[grammar.Kind]ast.Op{
	grammar.Add:      ast.OpAdd,
	grammar.Subtract: ast.OpSubtract,
	grammar.Multiply: ast.OpMultiply,
	grammar.Divide:   ast.OpDivide,
	grammar.Modulo:   ast.OpModulo,
	grammar.Power:    ast.OpPower,
}
