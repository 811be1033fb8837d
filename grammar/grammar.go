package grammar

import (
	"fmt"

	"github.com/cloudcmds/calc/internal/lexer"
	"github.com/cloudcmds/calc/token"
)

// DefaultMaxDepth is the default maximum nesting depth for recognition.
// This prevents stack overflow on deeply nested input.
const DefaultMaxDepth = 500

// Option is a configuration function for a Recognizer.
type Option func(*Recognizer)

// WithFilename sets the file name used in positions and error messages.
func WithFilename(filename string) Option {
	return func(r *Recognizer) {
		r.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for recognition.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(r *Recognizer) {
		r.maxDepth = depth
	}
}

// Recognizer builds the token tree for one expression. A recognizer is
// created by calling New with a lexer as input and should be used only
// once, by calling Parse to produce the tree.
type Recognizer struct {
	// l is our lexer
	l *lexer.Lexer

	// curToken is the token currently under examination
	curToken token.Token

	// peekToken is the next token from the lexer
	peekToken token.Token

	// filename of the input
	filename string

	// current recursion depth
	depth int

	// maximum allowed recursion depth
	maxDepth int
}

// Parse recognizes the provided input text and returns its token tree,
// rooted at an equation node containing exactly one expr. The entire input
// must match the grammar: trailing text is a syntax error, not a partial
// parse. This is a shorthand way to create a Lexer and Recognizer and then
// call Parse on that.
func Parse(input string, options ...Option) (*Node, error) {
	return New(lexer.New(input), options...).Parse()
}

// New returns a Recognizer reading tokens from the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Recognizer {
	r := &Recognizer{l: l, maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(r)
	}
	if r.filename != "" {
		l.SetFilename(r.filename)
	} else {
		r.filename = l.Filename()
	}
	return r
}

// Parse consumes the entire input and returns the equation node.
func (r *Recognizer) Parse() (*Node, error) {
	// Prime the token pump
	if err := r.nextToken(); err != nil { // curToken=<empty>, peekToken=token[0]
		return nil, err
	}
	if err := r.nextToken(); err != nil { // curToken=token[0], peekToken=token[1]
		return nil, err
	}
	start := r.curToken.StartPosition
	expr, err := r.parseExpr()
	if err != nil {
		return nil, err
	}
	if !r.curTokenIs(token.EOF) {
		return nil, r.errorf(r.curToken, "unexpected %s after expression", tokenDescription(r.curToken))
	}
	return &Node{
		Kind:          Equation,
		StartPosition: start,
		EndPosition:   expr.EndPosition,
		Children:      []*Node{expr},
	}, nil
}

// infixKinds maps operator token types to their node kinds.
var infixKinds = map[token.Type]Kind{
	token.PLUS:     Add,
	token.MINUS:    Subtract,
	token.ASTERISK: Multiply,
	token.SLASH:    Divide,
	token.MOD:      Modulo,
	token.CARET:    Power,
}

// parseExpr recognizes one expression and returns an expr node whose
// children are the flat operand/operator sequence. On return, curToken is
// the first token after the expression.
func (r *Recognizer) parseExpr() (*Node, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	node := &Node{Kind: Expr, StartPosition: r.curToken.StartPosition}
	for {
		// Leading minus signs are unary minus markers
		for r.curTokenIs(token.MINUS) {
			node.Children = append(node.Children, r.leaf(UnaryMinus))
			if err := r.nextToken(); err != nil {
				return nil, err
			}
		}
		operand, err := r.parseOperand()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, operand)

		// A following operator continues the sequence
		kind, ok := infixKinds[r.curToken.Type]
		if !ok {
			break
		}
		node.Children = append(node.Children, r.leaf(kind))
		if err := r.nextToken(); err != nil {
			return nil, err
		}
	}
	node.EndPosition = node.Children[len(node.Children)-1].EndPosition
	return node, nil
}

// parseOperand recognizes a single operand: a number literal, a
// parenthesized group, or a function call. The grouping parentheses leave
// no node of their own; the inner expr is returned directly.
func (r *Recognizer) parseOperand() (*Node, error) {
	switch r.curToken.Type {
	case token.NUMBER:
		n := r.leaf(Number)
		return n, r.nextToken()
	case token.LPAREN:
		if err := r.nextToken(); err != nil { // move past "("
			return nil, err
		}
		inner, err := r.parseExpr()
		if err != nil {
			return nil, err
		}
		if !r.curTokenIs(token.RPAREN) {
			return nil, r.errorf(r.curToken, "unexpected %s while parsing group (expected %q)",
				tokenDescription(r.curToken), ")")
		}
		return inner, r.nextToken()
	case token.IDENT:
		return r.parseFunction()
	}
	return nil, r.errorf(r.curToken, "unexpected %s while parsing expression", tokenDescription(r.curToken))
}

// parseFunction recognizes a function call: an identifier followed by a
// parenthesized, comma-separated, possibly empty argument list. The result
// is a function node with a function_name leaf and a function_args node
// whose children are the argument expr nodes, in source order.
func (r *Recognizer) parseFunction() (*Node, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	name := r.leaf(FunctionName)
	if !r.peekTokenIs(token.LPAREN) {
		return nil, r.errorf(r.peekToken, "unexpected %s after function name %q (expected %q)",
			tokenDescription(r.peekToken), name.Literal, "(")
	}
	if err := r.nextToken(); err != nil { // move to "("
		return nil, err
	}
	args := &Node{Kind: FunctionArgs, StartPosition: r.curToken.StartPosition}
	if err := r.nextToken(); err != nil { // move past "("
		return nil, err
	}
	if !r.curTokenIs(token.RPAREN) {
		for {
			arg, err := r.parseExpr()
			if err != nil {
				return nil, err
			}
			args.Children = append(args.Children, arg)
			if !r.curTokenIs(token.COMMA) {
				break
			}
			if err := r.nextToken(); err != nil { // move past ","
				return nil, err
			}
		}
	}
	if !r.curTokenIs(token.RPAREN) {
		return nil, r.errorf(r.curToken, "unexpected %s while parsing arguments of %q (expected %q)",
			tokenDescription(r.curToken), name.Literal, ")")
	}
	args.EndPosition = r.curToken.EndPosition
	node := &Node{
		Kind:          Function,
		StartPosition: name.StartPosition,
		EndPosition:   r.curToken.EndPosition,
		Children:      []*Node{name, args},
	}
	return node, r.nextToken()
}

// leaf creates a leaf node of the given kind from the current token.
func (r *Recognizer) leaf(kind Kind) *Node {
	return &Node{
		Kind:          kind,
		Literal:       r.curToken.Literal,
		StartPosition: r.curToken.StartPosition,
		EndPosition:   r.curToken.EndPosition,
	}
}

// nextToken moves to the next token from the lexer. Lexer errors are
// considered syntax errors and abort recognition.
func (r *Recognizer) nextToken() error {
	r.curToken = r.peekToken
	tok, err := r.l.Next()
	if err != nil {
		return NewSyntaxError(ErrorOpts{
			Cause:         err,
			File:          r.filename,
			StartPosition: tok.StartPosition,
			EndPosition:   tok.EndPosition,
			SourceCode:    r.l.GetLineText(tok),
		})
	}
	r.peekToken = tok
	return nil
}

// curTokenIs returns true if the current token has the given type.
func (r *Recognizer) curTokenIs(t token.Type) bool {
	return r.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (r *Recognizer) peekTokenIs(t token.Type) bool {
	return r.peekToken.Type == t
}

func (r *Recognizer) enter() error {
	r.depth++
	if r.depth > r.maxDepth {
		r.depth--
		return r.errorf(r.curToken, "maximum nesting depth exceeded")
	}
	return nil
}

func (r *Recognizer) leave() {
	r.depth--
}

func (r *Recognizer) errorf(tok token.Token, format string, args ...interface{}) error {
	return NewSyntaxError(ErrorOpts{
		Message:       fmt.Sprintf(format, args...),
		File:          r.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    r.l.GetLineText(tok),
	})
}
