// ==============================================================================================
// FILE: eval/eval.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The tree-walking evaluator (§4.4), structured as an explicit trampoline so that the
//          tail positions of `if`, `begin`, and user-lambda application run in constant host
//          stack depth — the evaluator's one hard correctness requirement (§8's tail-call
//          invariant, scenario 6).
// ==============================================================================================

package eval

import (
	"go.uber.org/zap"

	"minilisp/value"
)

// Eval reduces expr to a Value in env, per §4.4. The for/continue loop below IS the trampoline:
// a tail-positional reduction reassigns expr/env and loops instead of recursing, so a
// self-tail-recursive lambda runs in O(1) Go stack frames regardless of how many times it
// "calls" itself.
func Eval(expr value.Value, env *value.Env) (value.Value, error) {
	for {
		switch node := expr.(type) {

		case *value.Null, *value.Bool, *value.Double, *value.Int, *value.Str, *value.Table:
			// Self-evaluating, per §4.4: a Table read from source is not re-evaluated.
			return expr, nil

		case *value.Sym:
			v, ok := env.Get(node.Value)
			if !ok {
				return nil, resolveErrorf("undefined identifier: %s", node.Value)
			}
			return v, nil

		case *value.List:
			if len(node.Elements) == 0 {
				return node, nil // () evaluates to itself
			}

			if head, ok := node.Elements[0].(*value.Sym); ok {
				switch head.Value {
				case "quote":
					if len(node.Elements) != 2 {
						return nil, arityErrorf("quote expects 1 argument, got %d", len(node.Elements)-1)
					}
					return node.Elements[1], nil

				case "if":
					if len(node.Elements) != 4 {
						return nil, arityErrorf("if expects 3 arguments, got %d", len(node.Elements)-1)
					}
					cond, err := Eval(node.Elements[1], env)
					if err != nil {
						return nil, err
					}
					if value.Truthy(cond) {
						expr = node.Elements[2] // tail position: loop
					} else {
						expr = node.Elements[3] // tail position: loop
					}
					continue

				case "define":
					if len(node.Elements) != 3 {
						return nil, arityErrorf("define expects 2 arguments, got %d", len(node.Elements)-1)
					}
					name, ok := node.Elements[1].(*value.Sym)
					if !ok {
						return nil, typeErrorf("define: first argument must be a symbol, got %s", node.Elements[1].Type())
					}
					v, err := Eval(node.Elements[2], env)
					if err != nil {
						return nil, err
					}
					logger.Debug("define", zap.String("name", name.Value))
					return env.Set(name.Value, v), nil

				case "lambda":
					if len(node.Elements) != 3 {
						return nil, arityErrorf("lambda expects 2 arguments, got %d", len(node.Elements)-1)
					}
					paramList, ok := node.Elements[1].(*value.List)
					if !ok {
						return nil, typeErrorf("lambda: parameter list must be a list, got %s", node.Elements[1].Type())
					}
					params := make([]*value.Sym, len(paramList.Elements))
					for i, p := range paramList.Elements {
						sym, ok := p.(*value.Sym)
						if !ok {
							return nil, typeErrorf("lambda: parameter %d must be a symbol, got %s", i, p.Type())
						}
						params[i] = sym
					}
					return &value.Fun{Params: params, Body: node.Elements[2], Env: env}, nil

				case "begin":
					if len(node.Elements) < 2 {
						return nil, arityErrorf("begin expects at least 1 argument, got %d", len(node.Elements)-1)
					}
					for _, form := range node.Elements[1 : len(node.Elements)-1] {
						if _, err := Eval(form, env); err != nil {
							return nil, err
						}
					}
					expr = node.Elements[len(node.Elements)-1] // tail position: loop
					continue
				}
			}

			// Application: evaluate the head, then every argument, then dispatch.
			fnVal, err := Eval(node.Elements[0], env)
			if err != nil {
				return nil, err
			}
			fn, ok := fnVal.(*value.Fun)
			if !ok {
				return nil, typeErrorf("cannot apply non-function: %s", fnVal.Type())
			}

			args := make([]value.Value, len(node.Elements)-1)
			for i, a := range node.Elements[1:] {
				av, err := Eval(a, env)
				if err != nil {
					return nil, err
				}
				args[i] = av
			}

			if fn.IsBuiltin() {
				return fn.Builtin(args)
			}

			if len(args) != len(fn.Params) {
				return nil, arityErrorf("%s expects %d arguments, got %d", fn.String(), len(fn.Params), len(args))
			}
			callEnv := value.NewEnclosedEnv(fn.Env)
			for i, p := range fn.Params {
				callEnv.Set(p.Value, args[i])
			}
			logger.Debug("tail-apply lambda", zap.Int("argc", len(args)))
			expr = fn.Body // tail position: loop, no Go stack growth
			env = callEnv
			continue

		case *value.Fun:
			return node, nil

		default:
			return expr, nil
		}
	}
}

// Apply invokes fn with already-evaluated args — the shared entry point the `apply`, `map`,
// and `filter` built-ins use to call back into the evaluator (§4.5 "Functional").
func Apply(fn *value.Fun, args []value.Value) (value.Value, error) {
	if fn.IsBuiltin() {
		return fn.Builtin(args)
	}
	if len(args) != len(fn.Params) {
		return nil, arityErrorf("%s expects %d arguments, got %d", fn.String(), len(fn.Params), len(args))
	}
	callEnv := value.NewEnclosedEnv(fn.Env)
	for i, p := range fn.Params {
		callEnv.Set(p.Value, args[i])
	}
	return Eval(fn.Body, callEnv)
}
