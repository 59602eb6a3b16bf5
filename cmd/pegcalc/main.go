package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/codeaudit/parboiled/peg"
)

const logLevelEnv = "PEGCALC_LOG_LEVEL"

func configureLogger(level string) *logrus.Logger {
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	switch strings.ToLower(level) {
	case "trace":
		logger.SetLevel(logrus.TraceLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func reportParseErrors(result *peg.ParsingResult) {
	for _, perr := range result.ParseErrors {
		fmt.Fprint(os.Stderr, peg.FormatParseError(perr, result.Buffer))
	}
}

func main() {
	var logLevel string
	var recoverErrors bool

	rootCmd := &cobra.Command{
		Use:   "pegcalc",
		Short: "Arithmetic calculator built on the peg matching engine",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&recoverErrors, "recover", false, "recover from parse errors instead of failing")

	evalCmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := newCalculator(recoverErrors, configureLogger(logLevel))
			value, result, err := calc.Eval(args[0])
			if result != nil {
				reportParseErrors(result)
			}
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}

	treeCmd := &cobra.Command{
		Use:   "tree <expression>",
		Short: "Print the parse tree of an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := newCalculator(recoverErrors, configureLogger(logLevel))
			result, err := calc.Tree(args[0])
			if result != nil {
				reportParseErrors(result)
			}
			if err != nil {
				return err
			}
			fmt.Print(peg.DumpTree(result.Root, result.Buffer))
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(treeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
