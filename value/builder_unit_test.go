// ==============================================================================================
// FILE: value/builder_unit_test.go
// ==============================================================================================

package value

import "testing"

func TestBuilderFlatListOfEveryAtomType(t *testing.T) {
	b := NewBuilder()
	b.StartList()
	b.NullValue()
	b.BoolValue(true)
	b.BoolValue(false)
	b.DoubleValue(2.7)
	b.IntValue(2)
	b.StringValue("hello")
	b.NameValue("lambda")
	b.ExprValue(NewList(&Sym{Value: "+"}, &Int{Value: 1}, &Int{Value: 2}))
	b.EndList()

	want := `(null true false 2.7 2 "hello" lambda (+ 1 2))`
	if got := b.GetString(); got != want {
		t.Fatalf("GetString() = %q, want %q", got, want)
	}
}

func TestBuilderNestedListsWithQuoteSugar(t *testing.T) {
	b := NewBuilder()
	b.StartList()
	b.StartList()
	b.NameValue("+")
	b.IntValue(1)
	b.StartList()
	b.NameValue("quote")
	b.StartList()
	b.NameValue("+")
	b.IntValue(2)
	b.IntValue(3)
	b.EndList()
	b.EndList()
	b.IntValue(4)
	b.EndList()
	b.EndList()

	want := `((+ 1 '(+ 2 3) 4))`
	if got := b.GetString(); got != want {
		t.Fatalf("GetString() = %q, want %q", got, want)
	}
}

func TestBuilderNestedTablesSingleKeyEach(t *testing.T) {
	b := NewBuilder()
	b.StartList()
	b.StartTable()
	b.BoolKey(true)
	b.StartTable()
	b.DoubleKey(2.7)
	b.StartTable()
	b.IntKey(5)
	b.StartTable()
	b.StringKey("hello")
	b.StartTable()
	b.NameKey("lambda")
	b.BoolValue(true)
	b.EndTable()
	b.EndTable()
	b.EndTable()
	b.EndTable()
	b.EndTable()
	b.EndList()

	want := `(#(true #(2.7 #(5 #("hello" #(lambda true))))))`
	if got := b.GetString(); got != want {
		t.Fatalf("GetString() = %q, want %q", got, want)
	}
}

func TestBuilderPushingIntoScalarRootFails(t *testing.T) {
	b := NewBuilder()
	if !b.IntValue(1) {
		t.Fatal("expected the first push to succeed")
	}
	if b.IntValue(2) {
		t.Fatal("expected a second top-level value to fail")
	}
}

func TestBuilderTableValueWithoutKeyFails(t *testing.T) {
	b := NewBuilder()
	b.StartTable()
	if b.IntValue(1) {
		t.Fatal("expected a table value pushed without a staged key to fail")
	}
}

func TestBuilderEndListOnTableFails(t *testing.T) {
	b := NewBuilder()
	b.StartTable()
	if b.EndList() {
		t.Fatal("expected EndList to fail when the stack top is a Table")
	}
}

func TestBuilderEmptyBuilderGetExprIsNull(t *testing.T) {
	b := NewBuilder()
	if _, ok := b.GetExpr().(*Null); !ok {
		t.Fatalf("expected Null from an empty builder, got %s", b.GetExpr().String())
	}
}
