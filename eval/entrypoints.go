// ==============================================================================================
// FILE: eval/entrypoints.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The two top-level entry points from §6: evaluating a blob of source text, and
//          evaluating the contents of a file. Both parse exactly one form and delegate to Eval.
// ==============================================================================================

package eval

import (
	"fmt"
	"os"

	"minilisp/reader"
	"minilisp/value"
)

// EvalSource parses sourceText as one form and evaluates it against env, mutating env through
// any define/set! the form performs.
func EvalSource(sourceText string, env *value.Env) (value.Value, error) {
	form, err := reader.Parse(sourceText)
	if err != nil {
		return nil, err
	}
	return Eval(form, env)
}

// EvalFile reads path fully into memory and delegates to EvalSource. A missing or unreadable
// file is fatal, per §6.
func EvalFile(path string, env *value.Env) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return EvalSource(string(data), env)
}
