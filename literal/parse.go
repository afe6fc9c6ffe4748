package literal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/lazyseq/nested"
)

// ErrSyntax is returned (wrapped) for malformed literals.
var ErrSyntax = errors.New("literal: syntax error")

// Kind is the kind of an atom.
type Kind int

// Atoms may be numbers, strings or identifiers.
const (
	Number Kind = iota
	String
	Ident
)

// Atom is a leaf of a list literal. It keeps the lexeme as found in the
// input; strings are stored without their quotes.
type Atom struct {
	Kind   Kind
	Lexeme string
	Col    int // column of the atom in the input, starting at 1
}

func (a Atom) String() string {
	return a.Lexeme
}

// Int interprets a numeric atom as an integer.
func (a Atom) Int() (int, error) {
	if a.Kind != Number {
		return 0, fmt.Errorf("%w: column %d: %q is not a number", ErrSyntax, a.Col, a.Lexeme)
	}
	n, err := strconv.Atoi(a.Lexeme)
	if err != nil {
		return 0, fmt.Errorf("%w: column %d: %q is not an integer", ErrSyntax, a.Col, a.Lexeme)
	}
	return n, nil
}

// Parse reads a sequence of terms from input. A term is either an atom or
// a bracketed list. An empty input results in an empty slice of terms.
//
//     terms, _ := literal.Parse(`comb [1 2 3] 2`)
//     // terms[0] is the atom 'comb', terms[1] the list [1 2 3], terms[2] the atom 2
//
func Parse(input string) ([]nested.Element[Atom], error) {
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	var terms []nested.Element[Atom]
	open := arraystack.New() // of *builder, innermost list on top
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		var term nested.Element[Atom]
		switch tok.typ {
		case tokEOF:
			if !open.Empty() {
				top, _ := open.Peek()
				return nil, fmt.Errorf("%w: list opened at column %d is never closed",
					ErrSyntax, top.(*builder).col)
			}
			return terms, nil
		case tokOpen:
			open.Push(&builder{col: tok.col})
			continue
		case tokClose:
			top, ok := open.Pop()
			if !ok {
				return nil, fmt.Errorf("%w: column %d: unbalanced ']'", ErrSyntax, tok.col)
			}
			term = nested.List(top.(*builder).items...)
		case tokNumber:
			term = nested.Leaf(Atom{Kind: Number, Lexeme: tok.lexeme, Col: tok.col})
		case tokString:
			term = nested.Leaf(Atom{Kind: String, Lexeme: unquote(tok.lexeme), Col: tok.col})
		default:
			term = nested.Leaf(Atom{Kind: Ident, Lexeme: tok.lexeme, Col: tok.col})
		}
		if top, ok := open.Peek(); ok {
			b := top.(*builder)
			b.items = append(b.items, term)
		} else {
			terms = append(terms, term)
		}
	}
}

// ParseList reads a single list literal.
func ParseList(input string) (nested.Element[Atom], error) {
	terms, err := Parse(input)
	if err != nil {
		return nested.Element[Atom]{}, err
	}
	if len(terms) != 1 || !terms[0].IsList() {
		return nested.Element[Atom]{}, fmt.Errorf("%w: expected exactly one list, have %d terms",
			ErrSyntax, len(terms))
	}
	return terms[0], nil
}

// builder collects the items of a list under construction.
type builder struct {
	col   int
	items []nested.Element[Atom]
}

// Lexemes maps a flat list to the lexemes of its atoms. Nested lists are
// rejected.
func Lexemes(e nested.Element[Atom]) ([]string, error) {
	if !e.IsList() {
		return []string{e.Value().Lexeme}, nil
	}
	items := make([]string, e.Len())
	for i := 0; i < e.Len(); i++ {
		el := e.At(i)
		if el.IsList() {
			return nil, fmt.Errorf("%w: expected a flat list, item #%d is a list", ErrSyntax, i)
		}
		items[i] = el.Value().Lexeme
	}
	return items, nil
}
