package nested

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Event is the kind of node a Walker has just stepped onto.
type Event int

// Walkers report leaves as Atom, and lists twice: once as Open when entering
// them and once as Close when leaving them.
const (
	Atom Event = iota
	Open
	Close
)

func (ev Event) String() string {
	switch ev {
	case Open:
		return "open"
	case Close:
		return "close"
	}
	return "atom"
}

// Walker traverses a nested list top-down, reporting every leaf and the
// entering and leaving of every list. Like Flattener it does not recurse.
//
//     w := nested.NewWalker(e)
//     for w.Step() {
//         fmt.Println(w.Level(), w.Event(), w.Element())
//     }
//
type Walker[T any] struct {
	root    Element[T]
	stack   *arraystack.Stack // of *frame[T]
	started bool
	current Element[T]
	event   Event
	level   int
	sibling bool
}

// NewWalker creates a walker for e.
func NewWalker[T any](e Element[T]) *Walker[T] {
	return &Walker[T]{root: e, stack: arraystack.New()}
}

// Step moves the walker to the next node. It returns false if the traversal
// is complete.
func (w *Walker[T]) Step() bool {
	if !w.started {
		w.started = true
		w.current, w.level, w.sibling = w.root, 0, false
		if w.root.IsList() {
			w.event = Open
			w.stack.Push(&frame[T]{list: w.root})
		} else {
			w.event = Atom
		}
		return true
	}
	if w.stack.Empty() {
		return false
	}
	top, _ := w.stack.Peek()
	fr := top.(*frame[T])
	if fr.next >= fr.list.Len() {
		w.stack.Pop()
		w.current, w.event, w.level = fr.list, Close, w.stack.Size()
		w.sibling = false
		if parent, ok := w.stack.Peek(); ok {
			pf := parent.(*frame[T])
			w.sibling = pf.next < pf.list.Len()
		}
		return true
	}
	el := fr.list.At(fr.next)
	fr.next++
	w.current, w.sibling = el, fr.next < fr.list.Len()
	if el.IsList() {
		w.event, w.level = Open, w.stack.Size()
		w.stack.Push(&frame[T]{list: el})
		tracer().Debugf("walker: open list at level %d", w.level)
	} else {
		w.event, w.level = Atom, w.stack.Size()
	}
	return true
}

// Event returns the kind of the current node.
func (w *Walker[T]) Event() Event {
	return w.event
}

// Element returns the current node.
func (w *Walker[T]) Element() Element[T] {
	return w.current
}

// Level returns the nesting level of the current node, 0 being the level of
// the root.
func (w *Walker[T]) Level() int {
	return w.level
}

// HasSibling is a predicate: does the current node have a right sibling?
func (w *Walker[T]) HasSibling() bool {
	return w.sibling
}
