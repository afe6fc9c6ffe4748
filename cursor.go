package lazyseq

import (
	"iter"
)

// Cursor is the consumer's view of a sequence. It wraps an Iterator and adds
// a look-ahead of at most one element, which makes HasNext idempotent:
//
//     c := lazyseq.NewCursor(it)
//     for c.HasNext() {
//         v, err := c.Next()   // err is nil here
//         …
//     }
//     _, err := c.Next()       // err == ErrExhausted, now and forever
//
// Cursors are single-pass and cannot be restarted.
type Cursor[T any] struct {
	it    Iterator[T]
	head  T    // pre-fetched element, valid if ready
	ready bool // head holds an element not yet handed out
	done  bool // iterator exhausted or cursor stopped
}

// NewCursor wraps an iterator into a cursor. Nothing is fetched from it
// until the first call to HasNext or Next.
func NewCursor[T any](it Iterator[T]) *Cursor[T] {
	if it == nil {
		return &Cursor[T]{done: true}
	}
	return &Cursor[T]{it: it}
}

// HasNext returns true if a call to Next will produce an element.
// It may advance the underlying iterator by one element, but never more.
func (c *Cursor[T]) HasNext() bool {
	if c.ready {
		return true
	}
	if c.done {
		return false
	}
	v, ok := c.it.Advance()
	if !ok {
		tracer().Debugf("cursor exhausted")
		c.finish()
		return false
	}
	c.head, c.ready = v, true
	return true
}

// Next returns the next element of the sequence. If the sequence is
// exhausted, it returns ErrExhausted.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, ErrExhausted
	}
	v := c.head
	c.head, c.ready = zero, false
	return v, nil
}

// Break signals a cursor to stop iterating. A pre-fetched element is dropped
// and resources of the underlying iterator are released.
func (c *Cursor[T]) Break() {
	var zero T
	c.head, c.ready = zero, false
	c.finish()
}

// Done returns true if a cursor is stopped, either by exhaustion or by
// a call to Break. Done will not advance the iterator, therefore a fresh
// cursor over an empty sequence is not yet done.
func (c *Cursor[T]) Done() bool {
	return c.done && !c.ready
}

func (c *Cursor[T]) finish() {
	if c.done {
		return
	}
	c.done = true
	if st, ok := c.it.(Stopper); ok {
		st.Stop()
	}
	c.it = nil
}

// All returns the remaining elements of c as a generator, to be used with
// range. Leaving the loop early does not stop the cursor; the element
// following the last one handed out stays available.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.HasNext() {
			v, _ := c.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Take returns up to n further elements of c. It will not advance the cursor
// beyond the n-th element.
func (c *Cursor[T]) Take(n int) []T {
	var items []T
	for ; n > 0 && c.HasNext(); n-- {
		v, _ := c.Next()
		items = append(items, v)
	}
	return items
}

// Collect drains c and returns all remaining elements.
func (c *Cursor[T]) Collect() []T {
	var items []T
	for c.HasNext() {
		v, _ := c.Next()
		items = append(items, v)
	}
	return items
}
