// ==============================================================================================
// FILE: reader/reader.go
// ==============================================================================================
// PACKAGE: reader
// PURPOSE: Recursive-descent reader: token queue -> Value tree (§4.2). Because source IS data
//          in a Lisp, there is no separate ast package the way the teacher's Pratt parser
//          needed one — a List read here is exactly the List the evaluator walks.
// ==============================================================================================

package reader

import (
	"fmt"
	"strconv"
	"strings"

	"minilisp/lexer"
	"minilisp/token"
	"minilisp/value"
)

// reader walks a flat token slice left to right.
type reader struct {
	toks []token.Token
	pos  int
}

func (r *reader) cur() token.Token {
	return r.toks[r.pos]
}

func (r *reader) advance() token.Token {
	t := r.toks[r.pos]
	if r.pos < len(r.toks)-1 {
		r.pos++
	}
	return t
}

func (r *reader) atEOF() bool {
	return r.cur().Type == token.EOF
}

// Parse reads source text as a single top-level form. Empty input reads as Null. It is a
// fatal read error ("Unexpected tokens") for more than one form to be present.
func Parse(text string) (value.Value, error) {
	toks, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks}
	if r.atEOF() {
		return &value.Null{}, nil
	}

	v, err := r.readForm()
	if err != nil {
		return nil, err
	}
	if !r.atEOF() {
		return nil, fmt.Errorf("read error: unexpected tokens after form (next is %s %q)", r.cur().Type, r.cur().Literal)
	}
	return v, nil
}

// readForm reads exactly one Value, dispatching on the current token's kind.
func (r *reader) readForm() (value.Value, error) {
	tok := r.cur()
	switch tok.Type {
	case token.QUOTE:
		r.advance()
		if r.atEOF() {
			return nil, fmt.Errorf("read error at line %d: stray quote with nothing following", tok.Line)
		}
		inner, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return value.NewList(&value.Sym{Value: "quote"}, inner), nil

	case token.TABLE_OPEN:
		r.advance()
		elems, err := r.readUntilRParen()
		if err != nil {
			return nil, err
		}
		if len(elems)%2 != 0 {
			return nil, fmt.Errorf("read error at line %d: table literal has an odd number of elements", tok.Line)
		}
		tbl := value.NewTable()
		for i := 0; i < len(elems); i += 2 {
			key := elems[i]
			if _, isList := key.(*value.List); isList {
				return nil, fmt.Errorf("read error at line %d: table literal key must not be a list", tok.Line)
			}
			if err := tbl.Set(key, elems[i+1]); err != nil {
				return nil, err
			}
		}
		return tbl, nil

	case token.LPAREN:
		r.advance()
		elems, err := r.readUntilRParen()
		if err != nil {
			return nil, err
		}
		return value.NewList(elems...), nil

	case token.RPAREN:
		return nil, fmt.Errorf("read error at line %d: unexpected ')'", tok.Line)

	case token.STRING:
		r.advance()
		// tok.Literal includes the surrounding quotes (per the lexer's contract).
		return &value.Str{Value: tok.Literal[1 : len(tok.Literal)-1]}, nil

	case token.ATOM:
		r.advance()
		return readAtom(tok.Literal)

	case token.EOF:
		return nil, fmt.Errorf("read error: unexpected end of input")

	default:
		return nil, fmt.Errorf("read error at line %d: unexpected token %s", tok.Line, tok.Type)
	}
}

// readUntilRParen reads forms until a matching ')', consuming it. It is used for both plain
// lists and table literals — #( pushes an implicit '(' worth of list-reading in spec terms,
// which here is just sharing this helper.
func (r *reader) readUntilRParen() ([]value.Value, error) {
	var elems []value.Value
	for {
		if r.atEOF() {
			return nil, fmt.Errorf("read error: unterminated list")
		}
		if r.cur().Type == token.RPAREN {
			r.advance()
			return elems, nil
		}
		v, err := r.readForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

// readAtom classifies a bare atom token per spec §4.2's dispatch order: null/true/false,
// then Double (if the token contains '.') or Int, else Sym. Quoted strings never reach here —
// the lexer already separates STRING from ATOM — so the "strip quotes" step from the spec's
// generic atom dispatch has no work left to do in this implementation.
func readAtom(lit string) (value.Value, error) {
	switch lit {
	case "null":
		return &value.Null{}, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}

	if strings.Contains(lit, ".") {
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return &value.Double{Value: f}, nil
		}
	} else if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return &value.Int{Value: i}, nil
	}

	return &value.Sym{Value: lit}, nil
}
