// ==============================================================================================
// FILE: value/visitor_unit_test.go
// ==============================================================================================

package value

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// traceVisitor records one line per callback, mirroring the reference visitor's ostringstream
// trace closely enough to assert the exact callback sequence Visit produces.
type traceVisitor struct {
	lines []string
}

func (v *traceVisitor) NullValue()          { v.lines = append(v.lines, "null") }
func (v *traceVisitor) BoolValue(b bool)    { v.lines = append(v.lines, "bool "+strconv.FormatBool(b)) }
func (v *traceVisitor) DoubleValue(d float64) {
	v.lines = append(v.lines, fmt.Sprintf("double %g", d))
}
func (v *traceVisitor) IntValue(i int64)      { v.lines = append(v.lines, fmt.Sprintf("int %d", i)) }
func (v *traceVisitor) StringValue(s string)  { v.lines = append(v.lines, "string "+s) }
func (v *traceVisitor) NameValue(s string)    { v.lines = append(v.lines, "name "+s) }
func (v *traceVisitor) FunValue(f *Fun)       { v.lines = append(v.lines, "function "+f.String()) }
func (v *traceVisitor) StartList(size int)    { v.lines = append(v.lines, fmt.Sprintf("start list size %d", size)) }
func (v *traceVisitor) EndList()              { v.lines = append(v.lines, "end list") }
func (v *traceVisitor) StartTable(size int)   { v.lines = append(v.lines, fmt.Sprintf("start table size %d", size)) }
func (v *traceVisitor) StartKey()             { v.lines = append(v.lines, "start key") }
func (v *traceVisitor) EndKey()               { v.lines = append(v.lines, "end key") }
func (v *traceVisitor) EndTable()             { v.lines = append(v.lines, "end table") }

func TestVisitWalksEveryAtomType(t *testing.T) {
	inner := NewTable()
	_ = inner.Set(&Int{Value: 1}, &Int{Value: 2})

	expr := NewList(
		&Null{},
		&Bool{Value: true},
		&Bool{Value: false},
		&Double{Value: 2.7},
		&Int{Value: 27},
		&Str{Value: "hello"},
		&Sym{Value: "lambda"},
		&Fun{Name: "double-it", Builtin: func([]Value) (Value, error) { return nil, nil }},
		NewList(&Int{Value: 1}, &Int{Value: 2}),
		inner,
	)

	v := &traceVisitor{}
	Visit(expr, v)

	want := []string{
		"start list size 10",
		"null",
		"bool true",
		"bool false",
		"double 2.7",
		"int 27",
		"string hello",
		"name lambda",
		"function <function double-it>",
		"start list size 2",
		"int 1",
		"int 2",
		"end list",
		"start table size 1",
		"start key",
		"int 1",
		"end key",
		"int 2",
		"end table",
		"end list",
	}

	got := strings.Join(v.lines, "|")
	wantJoined := strings.Join(want, "|")
	if got != wantJoined {
		t.Fatalf("Visit trace mismatch:\n got:  %s\n want: %s", got, wantJoined)
	}
}

func TestVisitEmptyAggregates(t *testing.T) {
	v := &traceVisitor{}
	Visit(NewList(), v)
	if strings.Join(v.lines, "|") != "start list size 0|end list" {
		t.Fatalf("unexpected trace for empty list: %v", v.lines)
	}

	v2 := &traceVisitor{}
	Visit(NewTable(), v2)
	if strings.Join(v2.lines, "|") != "start table size 0|end table" {
		t.Fatalf("unexpected trace for empty table: %v", v2.lines)
	}
}
