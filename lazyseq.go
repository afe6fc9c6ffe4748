package lazyseq

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by Cursor.Next when no elements remain.
// It is a termination signal rather than a failure: once returned, every
// further call to Next will return it again.
var ErrExhausted = errors.New("lazyseq: sequence exhausted")

// --- Iterators -------------------------------------------------------------

// Iterator is the primitive all sequences of this module are built upon.
//
// Advance either returns the next element together with true, or signals
// exhaustion by returning false. After the first false, every subsequent
// call returns false as well.
type Iterator[T any] interface {
	Advance() (T, bool)
}

// Stopper is implemented by iterators which hold on to resources (e.g. a
// pulled generator) and should be told when a consumer is no longer
// interested in further elements.
type Stopper interface {
	Stop()
}

// IteratorFunc lets ordinary functions act as iterators. The function itself
// is responsible for keeping the exhaustion state sticky.
type IteratorFunc[T any] func() (T, bool)

// Advance calls f.
func (f IteratorFunc[T]) Advance() (T, bool) {
	return f()
}

// --- Sequences -------------------------------------------------------------

// Sequence is an ordered, finite collection which may be traversed forward.
// Each call to Iterate starts a fresh traversal. Adapters borrow sequences
// and never modify them.
type Sequence[T any] interface {
	Iterate() Iterator[T]
}

// Slice is a Go slice viewed as a sequence.
type Slice[T any] []T

// Iterate returns an iterator over the elements of s.
func (s Slice[T]) Iterate() Iterator[T] {
	return &sliceIterator[T]{items: s}
}

// All returns s as a generator.
func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Advance() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos++
	return v, true
}

// Generated wraps a generator function into a sequence. Every call to
// Iterate pulls a new run of the generator.
type Generated[T any] iter.Seq[T]

// Iterate starts the generator and returns an iterator pulling from it.
// The generator is stopped as soon as it is exhausted, or when the
// iterator's Stop method is called.
func (g Generated[T]) Iterate() Iterator[T] {
	next, stop := iter.Pull(iter.Seq[T](g))
	return &pulled[T]{next: next, stop: stop}
}

type pulled[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (p *pulled[T]) Advance() (T, bool) {
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.Stop()
	}
	return v, ok
}

func (p *pulled[T]) Stop() {
	if !p.done {
		p.done = true
		p.stop()
	}
}

// Values turns a sequence into a generator. Iteration of s starts when the
// generator is ranged over; breaking out of the loop stops it.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterate()
		if st, ok := it.(Stopper); ok {
			defer st.Stop()
		}
		for v, ok := it.Advance(); ok; v, ok = it.Advance() {
			if !yield(v) {
				return
			}
		}
	}
}

// Empty is a sequence without elements.
func Empty[T any]() Sequence[T] {
	return Slice[T](nil)
}
