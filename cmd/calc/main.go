// Command calc parses and evaluates arithmetic expressions. With no
// arguments and a terminal attached it starts an interactive session.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudcmds/calc/eval"
	"github.com/hashicorp/go-multierror"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `calc parses and evaluates arithmetic expressions.

Expressions support the operators + - * / % ^, unary minus, grouping
parentheses, and function calls such as sqrt(2) or max(1, 2).

Expressions may be passed as arguments, read from a file, or read from
stdin, one expression per line. With no input and a terminal attached,
an interactive session is started.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := gatherExpressions(cmd, args)
		if err != nil {
			fatal(err)
		}
		if len(exprs) == 0 {
			if isTerminalIO() {
				if err := runRepl(); err != nil {
					fatal(err)
				}
				return
			}
			// Piped stdin with no other input source
			exprs, err = readExpressions(os.Stdin)
			if err != nil {
				fatal(err)
			}
		}
		if err := evaluateAll(exprs); err != nil {
			fatal(err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calc %s (commit %s, built %s)\n", version, commit, date)
	},
}

// gatherExpressions collects the expressions to evaluate from positional
// arguments, the --file flag, and the --stdin flag, in that order.
func gatherExpressions(cmd *cobra.Command, args []string) ([]string, error) {
	var exprs []string
	exprs = append(exprs, args...)
	if path := viper.GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		fromFile, err := readExpressions(f)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, fromFile...)
	}
	if viper.GetBool("stdin") {
		fromStdin, err := readExpressions(os.Stdin)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, fromStdin...)
	}
	return exprs, nil
}

// readExpressions reads one expression per line, skipping blank lines.
func readExpressions(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var exprs []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			exprs = append(exprs, line)
		}
	}
	return exprs, nil
}

// evaluateAll evaluates each expression and prints its value. All
// expressions are attempted; the failures are aggregated.
func evaluateAll(exprs []string) error {
	evaluator := eval.New()
	var result *multierror.Error
	for _, input := range exprs {
		log.Debug().Str("input", input).Msg("evaluating expression")
		value, err := evaluate(evaluator, input)
		if err != nil {
			printError(err)
			result = multierror.Append(result, err)
			continue
		}
		fmt.Println(formatValue(value))
	}
	if result.ErrorOrNil() != nil {
		return fmt.Errorf("%d of %d expressions failed", result.Len(), len(exprs))
	}
	return nil
}

// bindFlags exposes the command's flags through viper.
func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.PersistentFlags())
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".calc")
		}
	}
	viper.SetEnvPrefix("calc")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("path", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func initLogger() {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func main() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.Flags().StringP("file", "f", "", "Read expressions from a file, one per line")
	rootCmd.Flags().Bool("stdin", false, "Read expressions from stdin, one per line")
	rootCmd.Flags().IntP("precision", "p", -1, "Digits after the decimal point (-1 for shortest)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.calc.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	if err := bindFlags(rootCmd); err != nil {
		fatal(err)
	}

	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
