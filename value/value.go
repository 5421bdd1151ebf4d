// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Defines the runtime type system of the interpreter: a tagged sum of Null, Bool,
//          Double, Int, Str, Sym, Fun, List, and Table. Because this is a Lisp, a Value tree
//          read from source IS the program — there is no separate AST package. This file also
//          carries the cross-cutting operations the evaluator needs on every Value: equality,
//          truthiness, and the printed-form renderer used by `print`, `string`, and the REPL.
// ==============================================================================================

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies which variant of the tagged sum a Value is.
type Type string

const (
	NullType  Type = "NULL"
	BoolType  Type = "BOOL"
	DoubleType Type = "DOUBLE"
	IntType   Type = "INT"
	StrType   Type = "STR"
	SymType   Type = "SYM"
	FunType   Type = "FUN"
	ListType  Type = "LIST"
	TableType Type = "TABLE"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
	String() string // printed form, per the renderer in spec §6
}

// ==============================================================================================
// ATOMS
// ==============================================================================================

type Null struct{}

func (n *Null) Type() Type     { return NullType }
func (n *Null) String() string { return "null" }

type Bool struct{ Value bool }

func (b *Bool) Type() Type { return BoolType }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type Double struct{ Value float64 }

func (d *Double) Type() Type     { return DoubleType }
func (d *Double) String() string { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

type Int struct{ Value int64 }

func (i *Int) Type() Type     { return IntType }
func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Str is an immutable UTF-8 string, the payload of literal strings.
type Str struct{ Value string }

func (s *Str) Type() Type     { return StrType }
func (s *Str) String() string { return `"` + s.Value + `"` }

// Sym is an identifier: a variable name, special-form head, or builtin name.
// Distinct from Str — it prints without quotes.
type Sym struct{ Value string }

func (s *Sym) Type() Type     { return SymType }
func (s *Sym) String() string { return s.Value }

// Singletons, mirroring the evaluator's need to avoid reallocating true/false/null
// on every self-evaluating form.
var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
	NullV = &Null{}
)

func NativeBool(b bool) *Bool {
	if b {
		return True
	}
	return False
}

// ==============================================================================================
// FUN — builtin or user lambda
// ==============================================================================================

// BuiltinFn is the signature every prelude built-in implements: it receives the already
// evaluated argument list and returns a Value or an error.
type BuiltinFn func(args []Value) (Value, error)

// Fun is the callable variant. Exactly one of Builtin (built-in) or Body (user lambda) is
// populated. Equality is by identity: prelude builtins are seeded once as singletons bound
// under their name, and user lambdas are fresh *Fun values created at each `lambda`
// evaluation, so pointer identity is exactly the equality spec §3 asks for.
type Fun struct {
	Name    string     // builtin name, empty for user lambdas
	Builtin BuiltinFn  // non-nil for a built-in
	Params  []*Sym     // parameter list, for a user lambda
	Body    Value      // body expression, for a user lambda
	Env     *Env       // captured environment, for a user lambda
}

func (f *Fun) Type() Type { return FunType }
func (f *Fun) String() string {
	if f.Builtin != nil {
		return "<function " + f.Name + ">"
	}
	return "<function lambda>"
}

func (f *Fun) IsBuiltin() bool { return f.Builtin != nil }

// ==============================================================================================
// LIST — ordered, shared by reference
// ==============================================================================================

// List is a mutable-by-reference sequence: two Values that alias the same *List observe each
// other's structural content, though no built-in destructively links cells together, which is
// what keeps user code from constructing cycles through List.
type List struct {
	Elements []Value
}

func NewList(elements ...Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() Type { return ListType }

func (l *List) String() string {
	if len(l.Elements) == 0 {
		return "()"
	}
	if head, ok := l.Elements[0].(*Sym); ok && (head.Value == "quote" || head.Value == "'") && len(l.Elements) >= 2 {
		return "'" + l.Elements[1].String()
	}
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// ==============================================================================================
// TABLE — unordered mapping, shared by reference, mutable through set!
// ==============================================================================================

// Pair holds the original key Value alongside its stored value, so iteration and rendering
// can recover the un-hashed key.
type Pair struct {
	Key   Value
	Value Value
}

// Table is an unordered Value->Value map. Only Bool, Double, Int, Str, and Sym are legal keys
// (invariant 1); hashing any other variant is a fatal evaluation error, surfaced by HashKeyOf.
type Table struct {
	pairs map[HashKey]Pair
}

func NewTable() *Table {
	return &Table{pairs: make(map[HashKey]Pair)}
}

func (t *Table) Type() Type { return TableType }

func (t *Table) String() string {
	if len(t.pairs) == 0 {
		return "#()"
	}
	parts := make([]string, 0, len(t.pairs)*2)
	for _, p := range t.pairs {
		parts = append(parts, p.Key.String()+" "+p.Value.String())
	}
	return "#(" + strings.Join(parts, " ") + ")"
}

// Set stores value under key, replacing any prior entry — this is the sole mutator, used by
// both the `table`/`#(...)` constructors and the `set!` built-in.
func (t *Table) Set(key, val Value) error {
	hk, err := HashKeyOf(key)
	if err != nil {
		return err
	}
	t.pairs[hk] = Pair{Key: key, Value: val}
	return nil
}

// Get returns the value bound to key, or (nil, false) if absent.
func (t *Table) Get(key Value) (Value, bool, error) {
	hk, err := HashKeyOf(key)
	if err != nil {
		return nil, false, err
	}
	p, ok := t.pairs[hk]
	if !ok {
		return nil, false, nil
	}
	return p.Value, true, nil
}

func (t *Table) Len() int { return len(t.pairs) }

// Pairs returns a snapshot of the table's entries. Order is unspecified, per spec §6.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, 0, len(t.pairs))
	for _, p := range t.pairs {
		out = append(out, p)
	}
	return out
}

// ==============================================================================================
// EQUALITY & TRUTHINESS
// ==============================================================================================

// Equals implements spec §4.4: numeric equality crosses Int/Double, List/Table compare
// structurally (deep), Fun compares by identity, Null equals only Null, everything else
// compares by variant and value.
func Equals(a, b Value) bool {
	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an == bn
		}
	}
	switch av := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Sym:
		bv, ok := b.(*Sym)
		return ok && av.Value == bv.Value
	case *Fun:
		bv, ok := b.(*Fun)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Table:
		bv, ok := b.(*Table)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, p := range av.Pairs() {
			other, found, err := bv.Get(p.Key)
			if err != nil || !found || !Equals(p.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

func asNumber(v Value) (float64, bool) {
	switch n := v.(type) {
	case *Int:
		return float64(n.Value), true
	case *Double:
		return n.Value, true
	}
	return 0, false
}

// NumericLess and NumericGreater back the `<` and `>` builtins; both operands must be
// numeric (Int or Double, in any combination).
func NumericLess(a, b Value) (bool, bool) {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if !aok || !bok {
		return false, false
	}
	return an < bn, true
}

func NumericGreater(a, b Value) (bool, bool) {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if !aok || !bok {
		return false, false
	}
	return an > bn, true
}

// Truthy implements the boundary in spec §4.4: Null and Bool(false) are false; Int(0),
// Double(0.0), Str(""), Sym(""), and the empty List/Table are false; every other value,
// including every Fun, is true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case *Null:
		return false
	case *Bool:
		return t.Value
	case *Int:
		return t.Value != 0
	case *Double:
		return t.Value != 0
	case *Str:
		return t.Value != ""
	case *Sym:
		return t.Value != ""
	case *List:
		return len(t.Elements) != 0
	case *Table:
		return t.Len() != 0
	default:
		return true
	}
}

// IsHashable reports whether v may be used as a Table key (invariant 1).
func IsHashable(v Value) bool {
	switch v.(type) {
	case *Bool, *Double, *Int, *Str, *Sym:
		return true
	default:
		return false
	}
}

// TypeError is a convenience constructor for the common "wrong variant" failure. The eval
// package's built-ins do not use it; they build *eval.Error values of their own.
func TypeError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
