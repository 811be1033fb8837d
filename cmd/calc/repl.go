package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudcmds/calc/eval"
	"github.com/cloudcmds/calc/parser"
	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
)

const historyFileName = ".calc_history"

// runRepl reads expressions from stdin one line at a time and prints
// their values until EOF or an exit command.
func runRepl() error {
	evaluator := eval.New()
	history, historyPath := loadHistory()

	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("calc %s\n", version)
	fmt.Println("Type an expression, or :help for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(bold(">>> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if done := replCommand(line); done {
				break
			}
			continue
		}
		history = append(history, line)
		value, err := evaluate(evaluator, line)
		if err != nil {
			printError(err)
			continue
		}
		fmt.Println(formatValue(value))
	}
	saveHistory(history, historyPath)
	return scanner.Err()
}

// replCommand handles one colon command. It returns true when the
// session should end.
func replCommand(line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case ":quit", ":exit", ":q":
		return true
	case ":help", ":h":
		fmt.Println("Commands:")
		fmt.Println("  :ast <expression>   print the syntax tree")
		fmt.Println("  :help               show this help")
		fmt.Println("  :quit               exit")
	case ":ast":
		expr, err := parser.Parse(rest)
		if err != nil {
			printError(err)
			return false
		}
		printAST(expr)
	default:
		fmt.Printf("unknown command %q (try :help)\n", cmd)
	}
	return false
}

func loadHistory() ([]string, string) {
	home, err := homedir.Dir()
	if err != nil {
		log.Debug().Err(err).Msg("cannot locate home directory")
		return nil, ""
	}
	path := filepath.Join(home, historyFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path
	}
	var history []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			history = append(history, line)
		}
	}
	return history, path
}

const maxHistoryEntries = 1000

func saveHistory(history []string, path string) {
	if path == "" {
		return
	}
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}
	data := strings.Join(history, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cannot save history")
	}
}
