package parser

import (
	"errors"
	"fmt"

	ferrors "github.com/cloudcmds/calc/errors"
	"github.com/cloudcmds/calc/grammar"
	"github.com/cloudcmds/calc/token"
)

// InternalError indicates a defect in the recognizer or the tree builder
// rather than a problem with the input text. A correctly recognized token
// tree never produces one.
type InternalError struct {
	message       string
	file          string
	startPosition token.Position
	endPosition   token.Position
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.message)
}

// Message returns the error message without the "internal error" prefix.
func (e *InternalError) Message() string {
	return e.message
}

// File returns the file in which the error occurred.
func (e *InternalError) File() string {
	return e.file
}

// StartPosition returns the start position of the offending tree node.
func (e *InternalError) StartPosition() token.Position {
	return e.startPosition
}

// EndPosition returns the end position of the offending tree node.
func (e *InternalError) EndPosition() token.Position {
	return e.endPosition
}

// FriendlyErrorMessage returns a formatted, human friendly message.
func (e *InternalError) FriendlyErrorMessage() string {
	formatter := ferrors.NewFormatter(false)
	return formatter.Format(&ferrors.FormattedError{
		Kind:     "internal error",
		Message:  e.message,
		Filename: e.file,
		Line:     e.startPosition.LineNumber(),
		Column:   e.startPosition.ColumnNumber(),
		Note:     "this is a bug in the parser, not a problem with the input",
	})
}

// IsSyntaxError returns true if the error indicates that the input text is
// not a valid expression.
func IsSyntaxError(err error) bool {
	var syntaxErr *grammar.SyntaxError
	return errors.As(err, &syntaxErr)
}

// IsInternalError returns true if the error indicates a parser defect
// rather than invalid input.
func IsInternalError(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}
