// ==============================================================================================
// FILE: value/environment_unit_test.go
// ==============================================================================================
// PURPOSE: Validates lexical lookup, shadowing, and the reference-sharing closures rely on.
// ==============================================================================================

package value

import "testing"

func TestSetAndGetInSameFrame(t *testing.T) {
	env := NewEnv()
	env.Set("x", &Int{Value: 10})
	got, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if i, ok := got.(*Int); !ok || i.Value != 10 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestGetWalksOuterFrames(t *testing.T) {
	outer := NewEnv()
	outer.Set("x", &Int{Value: 1})
	inner := NewEnclosedEnv(outer)

	got, ok := inner.Get("x")
	if !ok || got.(*Int).Value != 1 {
		t.Fatal("inner frame should see outer binding")
	}
}

func TestShadowingDoesNotMutateOuter(t *testing.T) {
	outer := NewEnv()
	outer.Set("x", &Int{Value: 1})
	inner := NewEnclosedEnv(outer)
	inner.Set("x", &Int{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if innerVal.(*Int).Value != 2 {
		t.Fatal("inner shadow should read back 2")
	}
	if outerVal.(*Int).Value != 1 {
		t.Fatal("outer frame should be untouched by inner shadowing")
	}
}

func TestUndefinedLookupFails(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Get("nope"); ok {
		t.Fatal("expected lookup of an unbound name to fail")
	}
}

func TestTableReferenceSemantics(t *testing.T) {
	env := NewEnv()
	t1 := NewTable()
	_ = t1.Set(&Int{Value: 1}, &Int{Value: 2})
	env.Set("t", t1)
	env.Set("u", t1) // alias, same underlying *Table

	u, _ := env.Get("u")
	_ = u.(*Table).Set(&Int{Value: 1}, &Int{Value: 99})

	tAgain, _ := env.Get("t")
	got, ok, _ := tAgain.(*Table).Get(&Int{Value: 1})
	if !ok || got.(*Int).Value != 99 {
		t.Fatal("mutation through alias u should be visible through t")
	}
}
