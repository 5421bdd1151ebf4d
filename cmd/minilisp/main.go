// ==============================================================================================
// FILE: cmd/minilisp/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The CLI entry point (§6): zero positional args starts the REPL, one evaluates a
//          file, two or more is a usage error.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"minilisp/eval"
	"minilisp/replio"
)

func main() {
	var trace bool

	rootCmd := &cobra.Command{
		Use:   "minilisp [file]",
		Short: "minilisp — a small Lisp-family interpreter",
		Long:  "minilisp evaluates Lisp source. With no arguments it starts an interactive REPL; with one argument it evaluates that file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				eval.SetLogger(logger)
			}

			env := eval.Prelude()

			if len(args) == 0 {
				replio.Start(os.Stdin, os.Stdout, env)
				return nil
			}

			result, err := eval.EvalFile(args[0], env)
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&trace, "trace", false, "log evaluator activity (define/application) to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
