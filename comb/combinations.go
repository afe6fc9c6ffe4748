package comb

import (
	"iter"

	"github.com/npillmayer/lazyseq"
)

// Option configures an enumeration.
type Option func(*config)

type config struct {
	emptySelection bool
}

// WithEmptySelection lets k = 0 produce a single, empty combination instead
// of none at all.
func WithEmptySelection() Option {
	return func(c *config) {
		c.emptySelection = true
	}
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// resumeStack holds, for every position of the current partial selection,
// the next candidate index to try at that position.
type resumeStack []int

func (rs resumeStack) tos() int {
	return rs[len(rs)-1]
}

// Enumerator is an iterator over the k-combinations of a slice.
type Enumerator[T any] struct {
	items     []T
	k         int
	selection []int       // indices chosen so far
	resume    resumeStack // resume points; empty if exhausted
	empty     bool        // emit a single empty combination
}

// NewEnumerator creates an iterator over all k-combinations of items.
// The items are borrowed, not copied; clients must not modify them during
// enumeration.
func NewEnumerator[T any](items []T, k int, opts ...Option) *Enumerator[T] {
	conf := configure(opts)
	e := &Enumerator[T]{items: items, k: k}
	if k == 0 && conf.emptySelection {
		e.empty = true
		return e
	}
	if k <= 0 || k > len(items) {
		tracer().Debugf("no %d-combinations of %d items", k, len(items))
		return e
	}
	e.selection = make([]int, 0, k)
	e.resume = make(resumeStack, 1, k)
	return e
}

// Of returns the sequence of k-combinations of items. Each combination is
// a freshly allocated slice.
//
//     comb.Of([]string{"A", "B", "C"}, 2).Collect()   // => [[A B] [A C] [B C]]
//
func Of[T any](items []T, k int, opts ...Option) *lazyseq.Cursor[[]T] {
	return lazyseq.NewCursor[[]T](NewEnumerator(items, k, opts...))
}

// Advance is part of interface lazyseq.Iterator.
//
// The top of the resume stack refers to the position d = len(resume)-1 of
// the selection. Trying candidate i at position d fixes selection[d] = i.
// If the selection is complete, it is emitted and i+1 will be tried next at
// the same position. Otherwise a resume point for position d+1 is pushed,
// starting at i+1. A position without candidates left is popped, resuming
// the position below it.
func (e *Enumerator[T]) Advance() ([]T, bool) {
	if e.empty {
		e.empty = false
		return []T{}, true
	}
	n := len(e.items)
	for len(e.resume) > 0 {
		d := len(e.resume) - 1
		i := e.resume.tos()
		if i >= n {
			e.resume = e.resume[:d]
			continue
		}
		e.resume[d] = i + 1
		e.selection = append(e.selection[:d], i)
		if len(e.selection) == e.k {
			return e.combination(), true
		}
		e.resume = append(e.resume, i+1)
	}
	return nil, false
}

func (e *Enumerator[T]) combination() []T {
	c := make([]T, len(e.selection))
	for j, inx := range e.selection {
		c[j] = e.items[inx]
	}
	return c
}

// Seq is the generator form of Of, following the recursive definition of
// backtracking.
func Seq[T any](items []T, k int, opts ...Option) iter.Seq[[]T] {
	conf := configure(opts)
	return func(yield func([]T) bool) {
		if k == 0 && conf.emptySelection {
			yield([]T{})
			return
		}
		if k <= 0 || k > len(items) {
			return
		}
		current := make([]T, 0, k)
		var combine func(start int) bool
		combine = func(start int) bool {
			if len(current) == k {
				return yield(append([]T(nil), current...))
			}
			for i := start; i < len(items); i++ {
				current = append(current, items[i])
				if !combine(i + 1) {
					return false
				}
				current = current[:len(current)-1]
			}
			return true
		}
		combine(0)
	}
}
