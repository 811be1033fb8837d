// Package errors provides display formatting for expression parsing errors.
package errors

// FriendlyError is an interface for errors that have a human friendly
// message available, in addition to the default error message.
type FriendlyError interface {
	error
	FriendlyErrorMessage() string
}

// FormattedError represents an error ready for display.
type FormattedError struct {
	Kind        string // "syntax error", "internal error", etc.
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int // for multi-character underlines
	SourceLines []SourceLineEntry
	Note        string
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // true if this is the line with the error
}
