// ==============================================================================================
// FILE: replio/repl.go
// ==============================================================================================
// PACKAGE: replio
// PURPOSE: The read-eval-print loop: connects a line-oriented input stream to the
//          Lexer -> Reader -> Eval pipeline and keeps one Environment alive for the session.
// ==============================================================================================

package replio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"minilisp/eval"
	"minilisp/reader"
	"minilisp/value"
)

const (
	prompt = "lisp> "
	logo   = `
minilisp — a small Lisp-family interpreter
type .help for session commands
`
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	numColor  = color.New(color.FgYellow)
	boolColor = color.New(color.FgGreen)
	strColor  = color.New(color.FgGreen)
	funColor  = color.New(color.FgMagenta)
	aggColor  = color.New(color.FgBlue)
	infoColor = color.New(color.FgHiBlack)
)

// Start launches the loop, reading lines from in and writing prompts/results to out. It
// returns when in reaches EOF. env persists across the whole session, the way the spec's
// REPL contract (§6) requires: define/set! in one line are visible to the next.
func Start(in io.Reader, out io.Writer, env *value.Env) {
	scanner := bufio.NewScanner(in)
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	fmt.Fprint(out, logo)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleCommand(out, line, &env) {
				return
			}
			continue
		}

		evalLine(out, line, env)
	}
}

// handleCommand processes a leading-dot session command, returning true if the loop should
// exit.
func handleCommand(out io.Writer, line string, env **value.Env) bool {
	switch line {
	case ".exit":
		infoColor.Fprintln(out, "goodbye")
		return true
	case ".clear":
		*env = eval.Prelude()
		infoColor.Fprintln(out, "environment reset")
	case ".help":
		printHelp(out)
	default:
		errColor.Fprintf(out, "unknown command: %s (try .help)\n", line)
	}
	return false
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  .exit   quit the REPL")
	fmt.Fprintln(out, "  .clear  reset the environment to a fresh prelude")
	fmt.Fprintln(out, "  .help   show this message")
}

func evalLine(out io.Writer, line string, env *value.Env) {
	form, err := reader.Parse(line)
	if err != nil {
		errColor.Fprintf(out, "error: %s\n", err)
		return
	}
	result, err := eval.Eval(form, env)
	if err != nil {
		errColor.Fprintf(out, "error: %s\n", err)
		return
	}
	printResult(out, result)
}

// printResult renders one evaluated Value, colored by variant, mirroring the teacher's
// per-type REPL coloring.
func printResult(out io.Writer, v value.Value) {
	switch t := v.(type) {
	case *value.Null:
		infoColor.Fprintln(out, t.String())
	case *value.Int, *value.Double:
		numColor.Fprintln(out, v.String())
	case *value.Bool:
		if t.Value {
			boolColor.Fprintln(out, v.String())
		} else {
			errColor.Fprintln(out, v.String())
		}
	case *value.Str:
		strColor.Fprintln(out, v.String())
	case *value.Fun:
		funColor.Fprintln(out, v.String())
	case *value.List, *value.Table:
		aggColor.Fprintln(out, v.String())
	default:
		fmt.Fprintln(out, v.String())
	}
}
