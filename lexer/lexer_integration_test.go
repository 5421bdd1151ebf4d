// ==============================================================================================
// FILE: lexer/lexer_integration_test.go
// ==============================================================================================
// PURPOSE: Exercises the lexer against a multi-line program with nested forms and a table
//          literal, the shape the reader will see in practice.
// ==============================================================================================

package lexer

import (
	"testing"

	"minilisp/token"
)

func TestTokenizeMultilineProgram(t *testing.T) {
	input := `
(begin
  (define t #(1 2))
  (define u t)
  (set! u 1 99)
  (get t 1))
`
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected stream to end in EOF, got %s", toks[len(toks)-1].Type)
	}

	var opens, closes int
	for _, tk := range toks {
		switch tk.Type {
		case token.LPAREN, token.TABLE_OPEN:
			opens++
		case token.RPAREN:
			closes++
		}
	}
	if opens != closes {
		t.Fatalf("unbalanced delimiters: %d opens vs %d closes", opens, closes)
	}
}
