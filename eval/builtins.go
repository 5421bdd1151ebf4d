// ==============================================================================================
// FILE: eval/builtins.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The built-in registry (§4.5): every name Prelude() seeds, grouped the way the spec
//          groups them — arithmetic/logic, structure, coercion, functional, I/O.
// ==============================================================================================

package eval

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"minilisp/value"
)

// builtinDef mirrors the name+callable pairing the teacher's registry uses, so Prelude can
// seed the environment by iterating a flat table instead of hand-writing N env.Set calls.
type builtinDef struct {
	Name string
	Fn   value.BuiltinFn
}

var builtins = []builtinDef{
	{"=", builtinEquals},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"<", builtinLess},
	{">", builtinGreater},
	{"and", builtinAnd},
	{"or", builtinOr},
	{"not", builtinNot},
	{"min", builtinMin},
	{"max", builtinMax},

	{"list", builtinList},
	{"table", builtinTable},
	{"length", builtinLength},
	{"append", builtinAppend},
	{"cons", builtinCons},
	{"car", builtinCar},
	{"cdr", builtinCdr},
	{"get", builtinGet},
	{"set!", builtinSetBang},
	{"keys", builtinKeys},
	{"values", builtinValues},

	{"bool", builtinBoolCoerce},
	{"double", builtinDoubleCoerce},
	{"int", builtinIntCoerce},
	{"string", builtinStringCoerce},
	{"cat", builtinCat},

	{"apply", builtinApply},
	{"map", builtinMap},
	{"filter", builtinFilter},

	{"print", builtinPrint},
	{"getenv", builtinGetenv},
	{"rand", builtinRand},
}

// Prelude constructs a fresh root environment prepopulated with every built-in (§4.5), with
// no outer frame — the conventional ancestor of every user environment.
func Prelude() *value.Env {
	env := value.NewEnv()
	for _, b := range builtins {
		name, fn := b.Name, b.Fn
		env.Set(name, &value.Fun{Name: name, Builtin: fn})
	}
	return env
}

// ---- arithmetic and logic -------------------------------------------------------------------

func builtinEquals(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("= expects 2 arguments, got %d", len(args))
	}
	return value.NativeBool(value.Equals(args[0], args[1])), nil
}

func asNum(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case *value.Int:
		return float64(n.Value), true
	case *value.Double:
		return n.Value, true
	}
	return 0, false
}

// numericResult returns Int if f is mathematically integral, else Double, per §4.5.
func numericResult(f float64) value.Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return &value.Int{Value: int64(f)}
	}
	return &value.Double{Value: f}
}

// foldNumeric left-folds op over args, starting from args[0] — per §4.5, + and - and * all
// require at least 2 arguments, so there is never a need for a standalone identity element.
func foldNumeric(name string, args []value.Value, op func(acc, x float64) float64) (value.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorf("%s expects at least 2 arguments, got %d", name, len(args))
	}
	acc, ok := asNum(args[0])
	if !ok {
		return nil, typeErrorf("%s: non-numeric operand %s", name, args[0].Type())
	}
	for _, a := range args[1:] {
		n, ok := asNum(a)
		if !ok {
			return nil, typeErrorf("%s: non-numeric operand %s", name, a.Type())
		}
		acc = op(acc, n)
	}
	return numericResult(acc), nil
}

func builtinAdd(args []value.Value) (value.Value, error) {
	return foldNumeric("+", args, func(acc, x float64) float64 { return acc + x })
}

func builtinSub(args []value.Value) (value.Value, error) {
	return foldNumeric("-", args, func(acc, x float64) float64 { return acc - x })
}

func builtinMul(args []value.Value) (value.Value, error) {
	return foldNumeric("*", args, func(acc, x float64) float64 { return acc * x })
}

func builtinDiv(args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorf("/ expects at least 2 arguments, got %d", len(args))
	}
	acc, ok := asNum(args[0])
	if !ok {
		return nil, typeErrorf("/: non-numeric operand %s", args[0].Type())
	}
	for _, a := range args[1:] {
		n, ok := asNum(a)
		if !ok {
			return nil, typeErrorf("/: non-numeric operand %s", a.Type())
		}
		if n == 0 {
			return nil, argumentErrorf("/: division by zero")
		}
		acc /= n
	}
	return numericResult(acc), nil
}

func builtinLess(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("< expects 2 arguments, got %d", len(args))
	}
	lt, ok := value.NumericLess(args[0], args[1])
	if !ok {
		return nil, typeErrorf("<: non-numeric operand")
	}
	return value.NativeBool(lt), nil
}

func builtinGreater(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("> expects 2 arguments, got %d", len(args))
	}
	gt, ok := value.NumericGreater(args[0], args[1])
	if !ok {
		return nil, typeErrorf(">: non-numeric operand")
	}
	return value.NativeBool(gt), nil
}

func builtinAnd(args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorf("and expects at least 2 arguments, got %d", len(args))
	}
	for _, a := range args {
		if !value.Truthy(a) {
			return value.False, nil
		}
	}
	return value.True, nil
}

func builtinOr(args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, arityErrorf("or expects at least 2 arguments, got %d", len(args))
	}
	for _, a := range args {
		if value.Truthy(a) {
			return value.True, nil
		}
	}
	return value.False, nil
}

func builtinNot(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("not expects 1 argument, got %d", len(args))
	}
	b, ok := args[0].(*value.Bool)
	if !ok {
		return nil, typeErrorf("not: expected a bool, got %s", args[0].Type())
	}
	return value.NativeBool(!b.Value), nil
}

func numericListArg(name string, args []value.Value) ([]float64, error) {
	if len(args) != 1 {
		return nil, arityErrorf("%s expects 1 argument, got %d", name, len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErrorf("%s: expected a list, got %s", name, args[0].Type())
	}
	if len(l.Elements) == 0 {
		return nil, argumentErrorf("%s: list must not be empty", name)
	}
	nums := make([]float64, len(l.Elements))
	for i, e := range l.Elements {
		n, ok := asNum(e)
		if !ok {
			return nil, typeErrorf("%s: non-numeric element %s", name, e.Type())
		}
		nums[i] = n
	}
	return nums, nil
}

func builtinMin(args []value.Value) (value.Value, error) {
	nums, err := numericListArg("min", args)
	if err != nil {
		return nil, err
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return numericResult(m), nil
}

func builtinMax(args []value.Value) (value.Value, error) {
	nums, err := numericListArg("max", args)
	if err != nil {
		return nil, err
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n > m {
			m = n
		}
	}
	return numericResult(m), nil
}

// ---- structure -------------------------------------------------------------------------------

func builtinList(args []value.Value) (value.Value, error) {
	elems := make([]value.Value, len(args))
	copy(elems, args)
	return value.NewList(elems...), nil
}

func builtinTable(args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return nil, arityErrorf("table expects an even number of arguments, got %d", len(args))
	}
	t := value.NewTable()
	for i := 0; i < len(args); i += 2 {
		if err := t.Set(args[i], args[i+1]); err != nil {
			return nil, typeErrorf("%s", err)
		}
	}
	return t, nil
}

func builtinLength(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("length expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *value.List:
		return &value.Int{Value: int64(len(v.Elements))}, nil
	case *value.Table:
		return &value.Int{Value: int64(v.Len())}, nil
	default:
		return nil, typeErrorf("length: expected a list or table, got %s", args[0].Type())
	}
}

func builtinAppend(args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, arityErrorf("append expects at least 1 argument, got %d", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErrorf("append: first argument must be a list, got %s", args[0].Type())
	}
	elems := make([]value.Value, 0, len(l.Elements)+len(args)-1)
	elems = append(elems, l.Elements...)
	elems = append(elems, args[1:]...)
	return value.NewList(elems...), nil
}

func builtinCons(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("cons expects 2 arguments, got %d", len(args))
	}
	return value.NewList(args[0], args[1]), nil
}

func builtinCar(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("car expects 1 argument, got %d", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErrorf("car: expected a list, got %s", args[0].Type())
	}
	if len(l.Elements) == 0 {
		return nil, argumentErrorf("car: empty list")
	}
	return l.Elements[0], nil
}

func builtinCdr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("cdr expects 1 argument, got %d", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErrorf("cdr: expected a list, got %s", args[0].Type())
	}
	if len(l.Elements) == 0 {
		return value.NewList(), nil
	}
	rest := make([]value.Value, len(l.Elements)-1)
	copy(rest, l.Elements[1:])
	return value.NewList(rest...), nil
}

func builtinGet(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("get expects 2 arguments, got %d", len(args))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, typeErrorf("get: expected a table, got %s", args[0].Type())
	}
	v, found, err := t.Get(args[1])
	if err != nil {
		return nil, typeErrorf("%s", err)
	}
	if !found {
		return &value.Null{}, nil
	}
	return v, nil
}

func builtinSetBang(args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityErrorf("set! expects 3 arguments, got %d", len(args))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, typeErrorf("set!: expected a table, got %s", args[0].Type())
	}
	if err := t.Set(args[1], args[2]); err != nil {
		return nil, typeErrorf("%s", err)
	}
	return args[2], nil
}

func builtinKeys(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("keys expects 1 argument, got %d", len(args))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, typeErrorf("keys: expected a table, got %s", args[0].Type())
	}
	pairs := t.Pairs()
	keys := make([]value.Value, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	return value.NewList(keys...), nil
}

func builtinValues(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("values expects 1 argument, got %d", len(args))
	}
	t, ok := args[0].(*value.Table)
	if !ok {
		return nil, typeErrorf("values: expected a table, got %s", args[0].Type())
	}
	pairs := t.Pairs()
	vals := make([]value.Value, len(pairs))
	for i, p := range pairs {
		vals[i] = p.Value
	}
	return value.NewList(vals...), nil
}

// ---- coercion --------------------------------------------------------------------------------

func builtinBoolCoerce(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("bool expects 1 argument, got %d", len(args))
	}
	return value.NativeBool(value.Truthy(args[0])), nil
}

func builtinDoubleCoerce(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("double expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *value.Int:
		return &value.Double{Value: float64(v.Value)}, nil
	case *value.Double:
		return v, nil
	case *value.Str:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, argumentErrorf("double: cannot parse %q as a number", v.Value)
		}
		return &value.Double{Value: f}, nil
	default:
		return nil, typeErrorf("double: expected a number or string, got %s", args[0].Type())
	}
}

func builtinIntCoerce(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("int expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *value.Int:
		return v, nil
	case *value.Double:
		return &value.Int{Value: int64(v.Value)}, nil
	case *value.Str:
		i, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return nil, argumentErrorf("int: cannot parse %q as a number", v.Value)
		}
		return &value.Int{Value: i}, nil
	default:
		return nil, typeErrorf("int: expected a number or string, got %s", args[0].Type())
	}
}

func builtinStringCoerce(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("string expects 1 argument, got %d", len(args))
	}
	return &value.Str{Value: args[0].String()}, nil
}

func builtinCat(args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, arityErrorf("cat expects at least 1 argument, got %d", len(args))
	}
	var sb strings.Builder
	for _, a := range args {
		s, ok := a.(*value.Str)
		if !ok {
			return nil, typeErrorf("cat: expected a string, got %s", a.Type())
		}
		sb.WriteString(s.Value)
	}
	return &value.Str{Value: sb.String()}, nil
}

// ---- functional ------------------------------------------------------------------------------

func asFun(name string, v value.Value) (*value.Fun, error) {
	f, ok := v.(*value.Fun)
	if !ok {
		return nil, typeErrorf("%s: expected a function, got %s", name, v.Type())
	}
	return f, nil
}

func asList(name string, v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, typeErrorf("%s: expected a list, got %s", name, v.Type())
	}
	return l, nil
}

func builtinApply(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("apply expects 2 arguments, got %d", len(args))
	}
	fn, err := asFun("apply", args[0])
	if err != nil {
		return nil, err
	}
	l, err := asList("apply", args[1])
	if err != nil {
		return nil, err
	}
	return Apply(fn, l.Elements)
}

func builtinMap(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("map expects 2 arguments, got %d", len(args))
	}
	fn, err := asFun("map", args[0])
	if err != nil {
		return nil, err
	}
	l, err := asList("map", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(l.Elements))
	for i, x := range l.Elements {
		v, err := Apply(fn, []value.Value{x})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewList(out...), nil
}

func builtinFilter(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("filter expects 2 arguments, got %d", len(args))
	}
	fn, err := asFun("filter", args[0])
	if err != nil {
		return nil, err
	}
	l, err := asList("filter", args[1])
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, x := range l.Elements {
		keep, err := Apply(fn, []value.Value{x})
		if err != nil {
			return nil, err
		}
		if value.Truthy(keep) {
			out = append(out, x)
		}
	}
	return value.NewList(out...), nil
}

// ---- I/O ---------------------------------------------------------------------------------------

func builtinPrint(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("print expects 1 argument, got %d", len(args))
	}
	if s, ok := args[0].(*value.Str); ok {
		fmt.Println(s.Value)
	} else {
		fmt.Println(args[0].String())
	}
	return &value.Null{}, nil
}

func builtinGetenv(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErrorf("getenv expects 1 argument, got %d", len(args))
	}
	name, ok := args[0].(*value.Str)
	if !ok {
		return nil, typeErrorf("getenv: expected a string, got %s", args[0].Type())
	}
	return &value.Str{Value: os.Getenv(name.Value)}, nil
}

func builtinRand(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErrorf("rand expects 2 arguments, got %d", len(args))
	}
	lo, ok1 := args[0].(*value.Int)
	hi, ok2 := args[1].(*value.Int)
	if !ok1 || !ok2 {
		return nil, typeErrorf("rand: expected two integers")
	}
	if hi.Value < lo.Value {
		return nil, argumentErrorf("rand: lo must be <= hi")
	}
	span := hi.Value - lo.Value + 1
	return &value.Int{Value: lo.Value + rand.Int63n(span)}, nil
}
