package literal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types
const (
	tokEOF int = iota
	tokOpen
	tokClose
	tokNumber
	tokString
	tokIdent
)

func tokenName(typ int) string {
	switch typ {
	case tokEOF:
		return "end of input"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	}
	return "identifier"
}

// token is a scanned lexeme together with its (1-based) column.
type token struct {
	typ    int
	lexeme string
	col    int
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the DFA

// newLexer compiles the lexmachine DFA, once.
func newLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`\[`), makeToken(tokOpen))
		lx.Add([]byte(`\]`), makeToken(tokClose))
		lx.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), makeToken(tokNumber))
		lx.Add([]byte(`\"[^"]*\"`), makeToken(tokString))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), makeToken(tokIdent))
		lx.Add([]byte(`;[^\n]*\n?`), skip) // comments
		lx.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// scanner delivers the tokens of an input string, one at a time.
type scanner struct {
	s *lexmachine.Scanner
}

func newScanner(input string) (*scanner, error) {
	lx, err := newLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &scanner{s: s}, nil
}

// next returns the next token. Unknown input is reported as a syntax error.
func (sc *scanner) next() (token, error) {
	tok, err, eof := sc.s.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.s.TC = ui.FailTC
		}
		return token{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if eof {
		return token{typ: tokEOF}, nil
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q", tokenName(t.Type), string(t.Lexeme))
	return token{typ: t.Type, lexeme: string(t.Lexeme), col: t.StartColumn}, nil
}

// unquote strips the double quotes from a string lexeme.
func unquote(lexeme string) string {
	return strings.TrimSuffix(strings.TrimPrefix(lexeme, `"`), `"`)
}
