package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors with colors and consistent styling.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting
var (
	colorErrorBold = color.New(color.FgHiRed, color.Bold)
	colorError     = color.New(color.FgRed)
	colorLocation  = color.New(color.FgCyan)
	colorLineNum   = color.New(color.FgHiBlack)
	colorPipe      = color.New(color.FgHiBlack)
	colorCaret     = color.New(color.FgHiRed)
	colorNote      = color.New(color.FgHiBlue)
)

// Format formats the error as a string, with the location, the offending
// source line, and a caret underline.
func (f *Formatter) Format(err *FormattedError) string {
	var b strings.Builder

	// Line number width for consistent alignment
	lineNumWidth := 2
	if err.Line >= 100 {
		lineNumWidth = len(fmt.Sprintf("%d", err.Line))
	}

	// Header: "syntax error: message"
	f.writeHeader(&b, err)

	// Location arrow: "  --> file.txt:1:5"
	f.writeLocation(&b, err, lineNumWidth)

	// Source context with line numbers and caret
	f.writeSource(&b, err, lineNumWidth)

	if err.Note != "" {
		f.writeNote(&b, err.Note, lineNumWidth)
	}

	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError) {
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	if f.UseColor {
		b.WriteString(colorErrorBold.Sprint(label))
		b.WriteString(colorError.Sprint(": "))
	} else {
		b.WriteString(label)
		b.WriteString(": ")
	}
	b.WriteString(err.Message)
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	padding := strings.Repeat(" ", lineNumWidth)
	loc := ""
	if err.Filename != "" {
		loc = err.Filename
		if err.Line > 0 {
			loc += fmt.Sprintf(":%d:%d", err.Line, err.Column)
		}
	} else if err.Line > 0 {
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	if f.UseColor {
		b.WriteString(padding)
		b.WriteString(colorLocation.Sprint("--> "))
		b.WriteString(colorLocation.Sprint(loc))
	} else {
		b.WriteString(padding)
		b.WriteString("--> ")
		b.WriteString(loc)
	}
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}
	padding := strings.Repeat(" ", lineNumWidth)

	// Empty pipe line for visual separation
	f.writePipe(b, padding)

	for _, line := range err.SourceLines {
		lineNumStr := fmt.Sprintf("%*d", lineNumWidth, line.Number)
		if f.UseColor {
			b.WriteString(colorLineNum.Sprint(lineNumStr))
			b.WriteString(colorPipe.Sprint(" | "))
		} else {
			b.WriteString(lineNumStr)
			b.WriteString(" | ")
		}
		b.WriteString(line.Text)
		b.WriteString("\n")

		// Caret line under the main error line
		if line.IsMain && err.Column > 0 {
			if f.UseColor {
				b.WriteString(padding)
				b.WriteString(colorPipe.Sprint(" | "))
			} else {
				b.WriteString(padding)
				b.WriteString(" | ")
			}
			b.WriteString(strings.Repeat(" ", err.Column-1))
			caretLen := 1
			if err.EndColumn > err.Column {
				caretLen = err.EndColumn - err.Column + 1
			}
			carets := strings.Repeat("^", caretLen)
			if f.UseColor {
				b.WriteString(colorCaret.Sprint(carets))
			} else {
				b.WriteString(carets)
			}
			b.WriteString("\n")
		}
	}
}

func (f *Formatter) writePipe(b *strings.Builder, padding string) {
	if f.UseColor {
		b.WriteString(padding)
		b.WriteString(colorPipe.Sprint(" |"))
	} else {
		b.WriteString(padding)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func (f *Formatter) writeNote(b *strings.Builder, note string, lineNumWidth int) {
	padding := strings.Repeat(" ", lineNumWidth)
	if f.UseColor {
		b.WriteString(padding)
		b.WriteString(colorPipe.Sprint(" = "))
		b.WriteString(colorNote.Sprint("note: "))
	} else {
		b.WriteString(padding)
		b.WriteString(" = ")
		b.WriteString("note: ")
	}
	b.WriteString(note)
	b.WriteString("\n")
}
