// ==============================================================================================
// FILE: eval/eval_unit_test.go
// ==============================================================================================
// PURPOSE: Exercises each special form and the application protocol in isolation.
// ==============================================================================================

package eval

import (
	"testing"

	"minilisp/reader"
	"minilisp/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	form, err := reader.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	v, err := Eval(form, Prelude())
	if err != nil {
		t.Fatalf("Eval(%q): unexpected error: %v", src, err)
	}
	return v
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	form, err := reader.Parse(src)
	if err != nil {
		return err
	}
	_, err = Eval(form, Prelude())
	return err
}

func TestSelfEvaluatingAtoms(t *testing.T) {
	for _, src := range []string{"null", "true", "false", "42", "3.5", `"hi"`, "#(1 2)"} {
		got := run(t, src)
		want, _ := reader.Parse(src)
		if got.String() != want.String() {
			t.Errorf("Eval(Parse(%q)) = %s, want %s", src, got.String(), want.String())
		}
	}
}

func TestEmptyListEvaluatesToItself(t *testing.T) {
	got := run(t, "()")
	if got.String() != "()" {
		t.Fatalf("expected (), got %s", got.String())
	}
}

func TestQuoteReturnsUnevaluatedForm(t *testing.T) {
	got := run(t, "(quote (+ 1 2))")
	if got.String() != "(+ 1 2)" {
		t.Fatalf("expected the raw form back, got %s", got.String())
	}
}

func TestIfBranches(t *testing.T) {
	if got := run(t, `(if true "y" "n")`); got.String() != `"y"` {
		t.Errorf("expected y, got %s", got.String())
	}
	if got := run(t, `(if false "y" "n")`); got.String() != `"n"` {
		t.Errorf("expected n, got %s", got.String())
	}
}

func TestTruthinessBoundaryScenarios(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`(if 0 "y" "n")`, `"n"`},
		{`(if "" "y" "n")`, `"n"`},
		{`(if '() "y" "n")`, `"n"`},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got.String() != tt.want {
			t.Errorf("run(%q) = %s, want %s", tt.src, got.String(), tt.want)
		}
	}
}

func TestDefineBindsInCurrentFrame(t *testing.T) {
	env := Prelude()
	form, _ := reader.Parse("(define x 10)")
	if _, err := Eval(form, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, _ := reader.Parse("x")
	got, err := Eval(ref, env)
	if err != nil || got.String() != "10" {
		t.Fatalf("expected x to be 10, got %v err=%v", got, err)
	}
}

func TestUndefinedIdentifierIsResolveError(t *testing.T) {
	err := runErr(t, "undefined-name")
	if err == nil {
		t.Fatal("expected an error")
	}
	if e, ok := err.(*Error); !ok || e.Category != ResolveError {
		t.Fatalf("expected a ResolveError, got %#v", err)
	}
}

func TestLambdaAndApplication(t *testing.T) {
	got := run(t, "((lambda (x y) (+ x y)) 3 4)")
	if got.String() != "7" {
		t.Fatalf("expected 7, got %s", got.String())
	}
}

func TestLambdaArityMismatchIsArityError(t *testing.T) {
	err := runErr(t, "((lambda (x y) x) 1)")
	if err == nil {
		t.Fatal("expected an arity error")
	}
	if e, ok := err.(*Error); !ok || e.Category != ArityError {
		t.Fatalf("expected an ArityError, got %#v", err)
	}
}

func TestLambdaParamsMustBeList(t *testing.T) {
	if err := runErr(t, "(lambda 1 1)"); err == nil {
		t.Fatal("expected an error: params not a list")
	}
}

func TestBeginEvaluatesInOrderAndReturnsLast(t *testing.T) {
	got := run(t, "(begin (define a 1) (define a 2) a)")
	if got.String() != "2" {
		t.Fatalf("expected 2, got %s", got.String())
	}
}

func TestApplyingNonFunctionIsTypeError(t *testing.T) {
	err := runErr(t, "(1 2 3)")
	if err == nil {
		t.Fatal("expected an error")
	}
	if e, ok := err.(*Error); !ok || e.Category != TypeErrorCat {
		t.Fatalf("expected a TypeError, got %#v", err)
	}
}

func TestLexicalCapture(t *testing.T) {
	got := run(t, `(begin
		(define mk (lambda () (begin (define a 1) (lambda () a))))
		(define g (mk))
		(define a 2)
		(g))`)
	if got.String() != "1" {
		t.Fatalf("closure should see captured a=1, got %s", got.String())
	}
}

func TestReferenceSemanticsThroughSetBang(t *testing.T) {
	got := run(t, `(begin (define t #(1 2)) (define u t) (set! u 1 99) (get t 1))`)
	if got.String() != "99" {
		t.Fatalf("expected mutation through alias to be visible, got %s", got.String())
	}
}
