package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cloudcmds/calc/ast"
	"github.com/cloudcmds/calc/parser"
	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [expression]",
	Short: "Print the syntax tree for an expression",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := parser.Parse(args[0])
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "json":
			if err := printASTJSON(expr); err != nil {
				fatal(err)
			}
		default:
			printAST(expr)
		}
	},
}

func init() {
	astCmd.Flags().StringP("output", "o", "text", "Output format (json, text)")
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func printASTJSON(expr ast.Expr) error {
	root := nodeToJSON(expr)
	if useColor() {
		data, err := prettyjson.Marshal(root)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *ast.Number:
		return &ASTNode{Type: "Number", Value: n.Value}
	case *ast.UnaryMinus:
		return &ASTNode{
			Type:     "UnaryMinus",
			Children: []*ASTNode{nodeToJSON(n.X)},
		}
	case *ast.BinOp:
		return &ASTNode{
			Type:     "BinOp",
			Value:    string(n.Op),
			Children: []*ASTNode{nodeToJSON(n.X), nodeToJSON(n.Y)},
		}
	case *ast.FunctionCall:
		result := &ASTNode{Type: "FunctionCall", Value: n.Name}
		for _, arg := range n.Args {
			result.Children = append(result.Children, nodeToJSON(arg))
		}
		return result
	}
	return &ASTNode{Type: fmt.Sprintf("%T", node)}
}

// printAST writes an indented text rendering of the tree to stdout.
func printAST(expr ast.Expr) {
	var write func(node ast.Node, depth int)
	write = func(node ast.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch n := node.(type) {
		case *ast.Number:
			fmt.Printf("%sNumber %s\n", indent, n.String())
		case *ast.UnaryMinus:
			fmt.Printf("%sUnaryMinus\n", indent)
			write(n.X, depth+1)
		case *ast.BinOp:
			fmt.Printf("%sBinOp %s\n", indent, n.Op)
			write(n.X, depth+1)
			write(n.Y, depth+1)
		case *ast.FunctionCall:
			fmt.Printf("%sFunctionCall %s\n", indent, n.Name)
			for _, arg := range n.Args {
				write(arg, depth+1)
			}
		}
	}
	write(expr, 0)
}
