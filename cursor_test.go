package lazyseq

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// counting wraps an iterator and counts calls to Advance.
type counting[T any] struct {
	it      Iterator[T]
	calls   int
	stopped bool
}

func (c *counting[T]) Advance() (T, bool) {
	c.calls++
	return c.it.Advance()
}

func (c *counting[T]) Stop() {
	c.stopped = true
}

func TestCursorSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	c := NewCursor(Slice[int]{1, 2, 3}.Iterate())
	if diff := cmp.Diff([]int{1, 2, 3}, c.Collect()); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}
	if !c.Done() {
		t.Errorf("expected cursor to be done after draining")
	}
}

func TestCursorExhaustedIsSticky(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	c := NewCursor(Slice[string]{"a"}.Iterate())
	if v, err := c.Next(); err != nil || v != "a" {
		t.Fatalf("expected first element to be 'a', is %q (err=%v)", v, err)
	}
	for i := 0; i < 3; i++ {
		if c.HasNext() {
			t.Errorf("call #%d: cursor claims to have a next element", i)
		}
		v, err := c.Next()
		if !errors.Is(err, ErrExhausted) {
			t.Errorf("call #%d: expected ErrExhausted, got %v", i, err)
		}
		if v != "" {
			t.Errorf("call #%d: expected zero value after exhaustion, got %q", i, v)
		}
	}
}

func TestCursorHasNextIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	cnt := &counting[int]{it: Slice[int]{7, 8}.Iterate()}
	c := NewCursor[int](cnt)
	for i := 0; i < 5; i++ {
		if !c.HasNext() {
			t.Fatalf("expected cursor to have a next element")
		}
	}
	if cnt.calls != 1 {
		t.Errorf("expected HasNext to advance the iterator once, did %d times", cnt.calls)
	}
	if v, _ := c.Next(); v != 7 {
		t.Errorf("expected 7, got %d", v)
	}
}

func TestCursorIsLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	cnt := &counting[int]{it: Slice[int]{1, 2, 3, 4, 5}.Iterate()}
	c := NewCursor[int](cnt)
	if cnt.calls != 0 {
		t.Errorf("expected construction not to advance the iterator")
	}
	if got := c.Take(2); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", got)
	}
	if cnt.calls != 2 {
		t.Errorf("expected Take(2) to advance twice, did %d times", cnt.calls)
	}
}

func TestCursorBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	cnt := &counting[int]{it: Slice[int]{1, 2, 3}.Iterate()}
	c := NewCursor[int](cnt)
	c.HasNext()
	c.Break()
	if !cnt.stopped {
		t.Errorf("expected Break to stop the iterator")
	}
	if !c.Done() || c.HasNext() {
		t.Errorf("expected cursor to be done after Break")
	}
	if _, err := c.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted after Break, got %v", err)
	}
}

func TestCursorRangeAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	c := NewCursor(Slice[int]{1, 2, 3, 4}.Iterate())
	var got []int
	for v := range c.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("expected [1 2] before break, got %v", got)
	}
	if rest := c.Collect(); !slices.Equal(rest, []int{3, 4}) {
		t.Errorf("expected cursor to continue with [3 4], got %v", rest)
	}
}

func TestNilIterator(t *testing.T) {
	c := NewCursor[int](nil)
	if c.HasNext() {
		t.Errorf("cursor over nil iterator should be empty")
	}
}

func TestGeneratedSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	g := Generated[int](slices.Values([]int{4, 5, 6}))
	c := NewCursor(g.Iterate())
	if diff := cmp.Diff([]int{4, 5, 6}, c.Collect()); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}
	// every call to Iterate starts over
	if got := NewCursor(g.Iterate()).Take(1); !slices.Equal(got, []int{4}) {
		t.Errorf("expected a fresh run to start with 4, got %v", got)
	}
}

func TestGeneratedStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	finished := false
	g := Generated[int](func(yield func(int) bool) {
		defer func() { finished = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
	c := NewCursor(g.Iterate())
	c.Take(3)
	c.Break()
	if !finished {
		t.Errorf("expected Break to stop the pulled generator")
	}
}

func TestValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseq")
	defer teardown()
	//
	got := slices.Collect(Values[int](Slice[int]{1, 2, 3}))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if got := slices.Collect(Values(Empty[int]())); len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
}
