package nested

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/lazyseq"
)

// frame is an open list during traversal, together with the index of the
// next child to visit.
type frame[T any] struct {
	list Element[T]
	next int
}

// Flattener is an iterator over the leaves of a nested list. It keeps a
// stack of frames, the top of the stack being the most deeply nested list
// currently open.
type Flattener[T any] struct {
	stack *arraystack.Stack // of *frame[T]
}

// NewFlattener creates an iterator over the leaves of e. If e is a leaf
// itself, the iterator will yield just this single leaf.
func NewFlattener[T any](e Element[T]) *Flattener[T] {
	f := &Flattener[T]{stack: arraystack.New()}
	if !e.IsList() {
		e = List(e)
	}
	f.stack.Push(&frame[T]{list: e})
	return f
}

// Flatten returns the sequence of leaf values of e, depth-first and
// left to right.
//
//     nested.Flatten(nested.List(nested.Leaf(1), nested.Leaves(2, 3))).Collect()  // => [1 2 3]
//
func Flatten[T any](e Element[T]) *lazyseq.Cursor[T] {
	return lazyseq.NewCursor[T](NewFlattener(e))
}

// Advance is part of interface lazyseq.Iterator.
func (f *Flattener[T]) Advance() (T, bool) {
	for !f.stack.Empty() {
		top, _ := f.stack.Peek()
		fr := top.(*frame[T])
		if fr.next >= fr.list.Len() {
			f.stack.Pop()
			continue
		}
		el := fr.list.At(fr.next)
		fr.next++
		if el.IsList() {
			f.stack.Push(&frame[T]{list: el})
			continue
		}
		return el.Value(), true
	}
	var zero T
	return zero, false
}

// Depth returns the number of lists currently open.
func (f *Flattener[T]) Depth() int {
	return f.stack.Size()
}

// Seq is the generator form of Flatten. It recurses into nested lists,
// thus uses call stack space proportional to the nesting depth.
func Seq[T any](e Element[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !e.IsList() {
			yield(e.Value())
			return
		}
		visit(e, yield)
	}
}

func visit[T any](list Element[T], yield func(T) bool) bool {
	for _, el := range list.children {
		if el.IsList() {
			if !visit(el, yield) {
				return false
			}
		} else if !yield(el.Value()) {
			return false
		}
	}
	return true
}
