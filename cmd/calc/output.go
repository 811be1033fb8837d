package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cloudcmds/calc/ast"
	ferrors "github.com/cloudcmds/calc/errors"
	"github.com/cloudcmds/calc/eval"
	"github.com/cloudcmds/calc/grammar"
	"github.com/cloudcmds/calc/parser"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

func useColor() bool {
	if viper.GetBool("no-color") {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// evaluate parses and evaluates one expression.
func evaluate(evaluator *eval.Evaluator, input string) (float64, error) {
	expr, err := parser.Parse(input)
	if err != nil {
		return 0, err
	}
	if names := functionNames(expr); len(names) > 0 {
		log.Debug().Strs("functions", names).Msg("expression calls functions")
	}
	return evaluator.Evaluate(expr)
}

// functionNames returns the names of all functions called by the
// expression, in traversal order.
func functionNames(expr ast.Expr) []string {
	var names []string
	ast.Inspect(expr, func(n ast.Node) bool {
		if call, ok := n.(*ast.FunctionCall); ok {
			names = append(names, call.Name)
		}
		return true
	})
	return names
}

// formatValue renders a float64 result. By default this is the shortest
// representation that round trips; the precision setting switches to a
// fixed number of digits after the decimal point.
func formatValue(value float64) string {
	if p := precisionSetting(); p >= 0 {
		return strconv.FormatFloat(value, 'f', p, 64)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func precisionSetting() int {
	if viper.Get("precision") == nil {
		return -1
	}
	return viper.GetInt("precision")
}

// printError writes an error to stderr. Syntax errors are shown in the
// multi-line form with source context and a caret under the offending text.
func printError(err error) {
	var syntaxErr *grammar.SyntaxError
	if errors.As(err, &syntaxErr) {
		formatter := ferrors.NewFormatter(useColor())
		fmt.Fprintln(os.Stderr, formatter.Format(syntaxErr.ToFormatted()))
		return
	}
	var friendly ferrors.FriendlyError
	if errors.As(err, &friendly) {
		fmt.Fprintln(os.Stderr, friendly.FriendlyErrorMessage())
		return
	}
	fmt.Fprintln(os.Stderr, red(err.Error()))
}
