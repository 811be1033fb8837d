package grammar

import (
	"fmt"

	"github.com/cloudcmds/calc/errors"
	"github.com/cloudcmds/calc/token"
)

// ErrorOpts holds the data used to build a SyntaxError. All fields are
// optional, although one of Cause or Message is recommended. If Cause is
// set, Message is ignored.
type ErrorOpts struct {
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
}

// SyntaxError indicates that the input text does not match the expression
// grammar. No token tree is produced when a SyntaxError is returned.
type SyntaxError struct {
	message       string
	cause         error
	file          string
	startPosition token.Position
	endPosition   token.Position
	sourceCode    string
}

// NewSyntaxError returns a SyntaxError populated with the given error data.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	return &SyntaxError{
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Message())
}

// Message returns the error message without the "syntax error" prefix.
func (e *SyntaxError) Message() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

// Cause returns the wrapped error, if any.
func (e *SyntaxError) Cause() error {
	return e.cause
}

func (e *SyntaxError) Unwrap() error {
	return e.cause
}

// File returns the file in which the error occurred.
func (e *SyntaxError) File() string {
	return e.file
}

// StartPosition returns the start position of the offending text.
func (e *SyntaxError) StartPosition() token.Position {
	return e.startPosition
}

// EndPosition returns the end position of the offending text.
func (e *SyntaxError) EndPosition() token.Position {
	return e.endPosition
}

// SourceCode returns the line of input text containing the error.
func (e *SyntaxError) SourceCode() string {
	return e.sourceCode
}

// FriendlyErrorMessage returns a formatted, human friendly message.
func (e *SyntaxError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the error to a FormattedError for display.
func (e *SyntaxError) ToFormatted() *errors.FormattedError {
	start := e.startPosition
	end := e.endPosition
	return &errors.FormattedError{
		Kind:      "syntax error",
		Message:   e.Message(),
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: end.ColumnNumber(),
		SourceLines: []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		},
	}
}

func tokenDescription(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	default:
		if t.Literal == "" {
			return string(t.Type)
		}
		return fmt.Sprintf("%q", t.Literal)
	}
}
