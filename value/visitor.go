// ==============================================================================================
// FILE: value/visitor.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: A generic double-dispatch traversal over a Value tree, for embedders that need a
// different walk than the one String() hardcodes (e.g. an alternate serialization format). This
// is the traversal hook itself, not a concrete renderer — String() is left as the evaluator's
// own fixed walk and does not route through Visit.
// ==============================================================================================

package value

// Visitor receives one callback per node as Visit walks a Value tree depth-first. List and
// Table callbacks bracket their children with a Start/End pair carrying the aggregate's size, so
// a visitor can pre-size a buffer or emit an opening delimiter without buffering the whole walk.
type Visitor interface {
	NullValue()
	BoolValue(v bool)
	DoubleValue(v float64)
	IntValue(v int64)
	StringValue(v string)
	NameValue(v string)
	FunValue(v *Fun)
	StartList(size int)
	EndList()
	StartTable(size int)
	StartKey()
	EndKey()
	EndTable()
}

// Visit dispatches on expr's variant and drives visitor through it, recursing into every
// element of a List and every key/value pair of a Table. Table iteration order follows
// Pairs(), which is unspecified per §6 — a visitor that needs a stable order must sort itself.
func Visit(expr Value, visitor Visitor) {
	switch v := expr.(type) {
	case *Null:
		visitor.NullValue()
	case *Bool:
		visitor.BoolValue(v.Value)
	case *Double:
		visitor.DoubleValue(v.Value)
	case *Int:
		visitor.IntValue(v.Value)
	case *Str:
		visitor.StringValue(v.Value)
	case *Sym:
		visitor.NameValue(v.Value)
	case *Fun:
		visitor.FunValue(v)
	case *List:
		visitor.StartList(len(v.Elements))
		for _, elem := range v.Elements {
			Visit(elem, visitor)
		}
		visitor.EndList()
	case *Table:
		pairs := v.Pairs()
		visitor.StartTable(len(pairs))
		for _, p := range pairs {
			visitor.StartKey()
			Visit(p.Key, visitor)
			visitor.EndKey()
			Visit(p.Value, visitor)
		}
		visitor.EndTable()
	}
}
