// ==============================================================================================
// FILE: eval/entrypoints_test.go
// ==============================================================================================

package eval

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEvalSourceMutatesEnv(t *testing.T) {
	env := Prelude()
	if _, err := EvalSource("(define x 5)", env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := EvalSource("x", env)
	if err != nil || got.String() != "5" {
		t.Fatalf("expected x to be 5, got %v err=%v", got, err)
	}
}

func TestEvalFileReadsAndEvaluates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.lisp")
	if err := os.WriteFile(path, []byte("(begin (define x 2) (* x 21))"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	got, err := EvalFile(path, Prelude())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "42" {
		t.Fatalf("expected 42, got %s", got.String())
	}
}

func TestEvalFileMissingIsFatal(t *testing.T) {
	if _, err := EvalFile(filepath.Join(t.TempDir(), "nope.lisp"), Prelude()); err == nil {
		t.Fatal("expected a fatal error for a missing file")
	}
}
