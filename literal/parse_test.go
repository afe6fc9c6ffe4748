package literal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/lazyseq/nested"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lexemes(t *testing.T, e nested.Element[Atom]) []string {
	t.Helper()
	var l []string
	for a := range nested.Seq(e) {
		l = append(l, a.Lexeme)
	}
	return l
}

func TestParseList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		str    string
		leaves []string
	}{
		{input: "[1 2 [3 [4] 5]]", str: "[1 2 [3 [4] 5]]", leaves: []string{"1", "2", "3", "4", "5"}},
		{input: "[1, 2, [3, [4], 5]]", str: "[1 2 [3 [4] 5]]", leaves: []string{"1", "2", "3", "4", "5"}},
		{input: "[]", str: "[]", leaves: nil},
		{input: "[[[]]]", str: "[[[]]]", leaves: nil},
		{input: `[a "b c" -7]`, str: "[a b c -7]", leaves: []string{"a", "b c", "-7"}},
		{input: "[x ; a comment\n y]", str: "[x y]", leaves: []string{"x", "y"}},
	} {
		e, err := ParseList(test.input)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if e.String() != test.str {
			t.Errorf("test %d: expected %q, got %q", i, test.str, e.String())
		}
		if diff := cmp.Diff(test.leaves, lexemes(t, e)); diff != "" {
			t.Errorf("test %d: leaves mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParseTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	terms, err := Parse(`comb [a b c] 2`)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}
	if terms[0].IsList() || terms[0].Value().Kind != Ident || terms[0].Value().Lexeme != "comb" {
		t.Errorf("expected identifier 'comb', got %v", terms[0])
	}
	if !terms[1].IsList() || terms[1].Len() != 3 {
		t.Errorf("expected list of 3 items, got %v", terms[1])
	}
	k, err := terms[2].Value().Int()
	if err != nil || k != 2 {
		t.Errorf("expected number 2, got %d (%v)", k, err)
	}
	if terms[2].Value().Col != 14 {
		t.Errorf("expected number at column 14, got %d", terms[2].Value().Col)
	}
	if _, err := terms[0].Value().Int(); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected identifier not to convert to int")
	}
	items, err := Lexemes(terms[1])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, items); diff != "" {
		t.Errorf("lexemes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	terms, err := Parse("   ")
	if err != nil || len(terms) != 0 {
		t.Errorf("expected no terms and no error, got %v, %v", terms, err)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	for i, input := range []string{
		"[1 2",
		"[1 2]]",
		"]",
		"[1 # 2]",
		"1 2",
		"[1] [2]",
	} {
		if _, err := ParseList(input); !errors.Is(err, ErrSyntax) {
			t.Errorf("test %d: expected syntax error for %q, got %v", i, input, err)
		}
	}
}

func TestLexemesRejectsNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	e, err := ParseList("[1 [2]]")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Lexemes(e); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected error for nested list, got %v", err)
	}
}

func TestParseDeepNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.literal")
	defer teardown()
	//
	const depth = 10000
	input := make([]byte, 0, 2*depth+1)
	for i := 0; i < depth; i++ {
		input = append(input, '[')
	}
	input = append(input, 'x')
	for i := 0; i < depth; i++ {
		input = append(input, ']')
	}
	e, err := ParseList(string(input))
	if err != nil {
		t.Fatal(err)
	}
	if d := nested.Depth(e); d != depth {
		t.Errorf("expected depth %d, got %d", depth, d)
	}
}
