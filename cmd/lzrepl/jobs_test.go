package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/lazyseq"
	"github.com/npillmayer/lazyseq/crosscheck"
	"github.com/npillmayer/lazyseq/literal"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func runLine(t *testing.T, line string) (job, error) {
	t.Helper()
	terms, err := literal.Parse(line)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", line, err)
	}
	cmd, args := command(terms)
	return makeJob(cmd, args)
}

func TestJobs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.repl")
	defer teardown()
	//
	for i, test := range []struct {
		line string
		out  []string
	}{
		{line: "chain [1 2 3] [4] [5]", out: []string{"1", "2", "3", "4", "5"}},
		{line: "chain [] [] []", out: nil},
		{line: "zip [1 2 3] [4 5] [6]", out: []string{"[1 4 6]"}},
		{line: "primes 8", out: []string{"1", "2", "3", "5", "7"}},
		{line: "comb [a b c] 2", out: []string{"[a b]", "[a c]", "[b c]"}},
		{line: "flatten [1 2 [3 [4] 5]]", out: []string{"1", "2", "3", "4", "5"}},
	} {
		j, err := runLine(t, test.line)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		got := lazyseq.NewCursor(j.explicit()).Collect()
		if diff := cmp.Diff(test.out, got); diff != "" {
			t.Errorf("test %d: %q mismatch (-want +got):\n%s", i, test.line, diff)
		}
		if _, err := crosscheck.Compare(j.explicit(), j.generator()); err != nil {
			t.Errorf("test %d: %q: %v", i, test.line, err)
		}
	}
}

func TestJobErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.repl")
	defer teardown()
	//
	for i, line := range []string{
		"frobnicate [1]",
		"[1 2]",
		"chain 1 2",
		"zip [1 [2]]",
		"primes x",
		"primes [1]",
		"comb [1 2 3]",
		"comb [1 2] k",
		"flatten",
	} {
		if _, err := runLine(t, line); err == nil {
			t.Errorf("test %d: expected %q to fail", i, line)
		}
	}
}

func TestTakeStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.repl")
	defer teardown()
	//
	j, err := runLine(t, "primes 1000000")
	if err != nil {
		t.Fatal(err)
	}
	c := lazyseq.NewCursor(j.explicit())
	got := c.Take(4)
	if diff := cmp.Diff([]string{"1", "2", "3", "5"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !c.HasNext() {
		t.Errorf("expected more primes to follow")
	}
	c.Break()
	if !c.Done() {
		t.Errorf("expected cursor to be done after Break")
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq.repl")
	defer teardown()
	//
	e, err := literal.ParseList("[1 [2 3]]")
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledList(e)
	var levels []int
	var texts []string
	for _, item := range ll {
		levels = append(levels, item.Level)
		texts = append(texts, item.Text)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 2, 2}, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"·", "1", "·", "2", "3"}, texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
}
