// ==============================================================================================
// FILE: value/builder.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: An embedder-facing incremental-construction API for a Value tree, for hosts that
// want to build an expression without writing Lisp source text. Mirrors value.Query as the
// other "needs no design" embedder helper spec.md §1 gestures at.
// ==============================================================================================

package value

// Builder constructs a Value tree one token at a time via a stack of in-progress List/Table
// aggregates, the way a streaming JSON builder would. Values pushed while the top of the stack
// is a List are appended to it; values pushed while the top is a Table are paired with whatever
// key was last set via one of the *Key methods. Starting a nested List or Table pushes it as
// the new top, so subsequent pushes land inside it until the matching End call pops it back off.
type Builder struct {
	stack []Value
	root  Value
	key   Value
}

// NewBuilder returns an empty Builder, ready to accept exactly one top-level value.
func NewBuilder() *Builder {
	return &Builder{}
}

// push is the sole mutator every *Value method funnels through. It reports false if there is
// nowhere sensible to put expr: the stack top is neither a List nor a Table (i.e. a second
// top-level value was attempted), or it is a Table with no pending key.
func (b *Builder) push(expr Value) bool {
	if len(b.stack) == 0 {
		if b.root != nil {
			return false
		}
		b.root = expr
		b.stack = append(b.stack, expr)
		return true
	}

	switch top := b.stack[len(b.stack)-1].(type) {
	case *List:
		top.Elements = append(top.Elements, expr)
	case *Table:
		if b.key == nil {
			return false
		}
		if err := top.Set(b.key, expr); err != nil {
			return false
		}
		b.key = nil
	default:
		return false
	}

	if isAggregate(expr) {
		b.stack = append(b.stack, expr)
	}
	return true
}

func isAggregate(v Value) bool {
	switch v.(type) {
	case *List, *Table:
		return true
	default:
		return false
	}
}

// NullValue pushes a Null.
func (b *Builder) NullValue() bool { return b.push(&Null{}) }

// BoolValue pushes a Bool.
func (b *Builder) BoolValue(v bool) bool { return b.push(NativeBool(v)) }

// DoubleValue pushes a Double.
func (b *Builder) DoubleValue(v float64) bool { return b.push(&Double{Value: v}) }

// IntValue pushes an Int.
func (b *Builder) IntValue(v int64) bool { return b.push(&Int{Value: v}) }

// StringValue pushes a Str.
func (b *Builder) StringValue(v string) bool { return b.push(&Str{Value: v}) }

// NameValue pushes a Sym — the builder's name for an identifier, matching the reader's own
// vocabulary split between quoted Str and bare Sym.
func (b *Builder) NameValue(v string) bool { return b.push(&Sym{Value: v}) }

// ExprValue pushes an already-constructed Value wholesale — e.g. the result of reader.Parse —
// without opening it up for further nested building. If v is itself a List or Table, push would
// otherwise leave it as the new stack top expecting more elements; immediately closing it back
// off keeps a pasted-in subtree atomic from the builder's point of view.
func (b *Builder) ExprValue(v Value) bool {
	_, isList := v.(*List)
	_, isTable := v.(*Table)

	ok := b.push(v)

	if ok && isList {
		b.EndList()
	}
	if ok && isTable {
		b.EndTable()
	}
	return ok
}

// BoolKey stages a Bool as the key for the next value pushed into the current Table.
func (b *Builder) BoolKey(v bool) { b.key = NativeBool(v) }

// DoubleKey stages a Double as the key for the next value pushed into the current Table.
func (b *Builder) DoubleKey(v float64) { b.key = &Double{Value: v} }

// IntKey stages an Int as the key for the next value pushed into the current Table.
func (b *Builder) IntKey(v int64) { b.key = &Int{Value: v} }

// StringKey stages a Str as the key for the next value pushed into the current Table.
func (b *Builder) StringKey(v string) { b.key = &Str{Value: v} }

// NameKey stages a Sym as the key for the next value pushed into the current Table.
func (b *Builder) NameKey(v string) { b.key = &Sym{Value: v} }

// ExprKey stages an arbitrary already-constructed Value as the next Table key. It is the
// caller's responsibility to stage something hashable (invariant 1) — an unhashable key simply
// makes the paired push fail.
func (b *Builder) ExprKey(v Value) { b.key = v }

// StartList opens a new List and descends into it: subsequent pushes append to it until the
// matching EndList.
func (b *Builder) StartList() bool { return b.push(NewList()) }

// EndList closes the List at the top of the stack, returning control to its parent aggregate.
// It reports false if the stack is empty or its top is not a List.
func (b *Builder) EndList() bool {
	if len(b.stack) == 0 {
		return false
	}
	if _, ok := b.stack[len(b.stack)-1].(*List); !ok {
		return false
	}
	b.stack = b.stack[:len(b.stack)-1]
	return true
}

// StartTable opens a new Table and descends into it: subsequent key/value pairs populate it
// until the matching EndTable.
func (b *Builder) StartTable() bool { return b.push(NewTable()) }

// EndTable closes the Table at the top of the stack, returning control to its parent aggregate.
// It reports false if the stack is empty or its top is not a Table.
func (b *Builder) EndTable() bool {
	if len(b.stack) == 0 {
		return false
	}
	if _, ok := b.stack[len(b.stack)-1].(*Table); !ok {
		return false
	}
	b.stack = b.stack[:len(b.stack)-1]
	return true
}

// GetExpr returns the finished top-level Value. It is Null if nothing was ever pushed.
func (b *Builder) GetExpr() Value {
	if b.root == nil {
		return &Null{}
	}
	return b.root
}

// GetString renders the finished top-level Value via the standard renderer (§6).
func (b *Builder) GetString() string {
	return b.GetExpr().String()
}
