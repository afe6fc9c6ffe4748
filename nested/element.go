package nested

import (
	"fmt"
	"strings"
)

// Element is a node of a nested list: either a leaf carrying a value of
// type T, or a list of elements. The zero value is a leaf carrying the zero
// value of T.
type Element[T any] struct {
	value    T
	children []Element[T]
	isList   bool
}

// Leaf creates a leaf element.
func Leaf[T any](v T) Element[T] {
	return Element[T]{value: v}
}

// List creates a list element from a number of children. List() creates
// an empty list.
func List[T any](children ...Element[T]) Element[T] {
	return Element[T]{children: children, isList: true}
}

// Leaves is a shortcut to create a flat list from a number of values.
func Leaves[T any](values ...T) Element[T] {
	children := make([]Element[T], len(values))
	for i, v := range values {
		children[i] = Leaf(v)
	}
	return List(children...)
}

// IsList is a predicate: is e a list (as opposed to a leaf)?
func (e Element[T]) IsList() bool {
	return e.isList
}

// Value returns the value of a leaf. For lists it returns the zero value of T.
func (e Element[T]) Value() T {
	return e.value
}

// Len returns the number of children of a list, and 0 for leaves.
func (e Element[T]) Len() int {
	return len(e.children)
}

// At returns child #i of a list.
func (e Element[T]) At(i int) Element[T] {
	return e.children[i]
}

// Append returns a copy of list e with children appended.
// Calling Append on a leaf panics.
func (e Element[T]) Append(children ...Element[T]) Element[T] {
	if !e.isList {
		panic("attempt to append to a leaf element")
	}
	ch := make([]Element[T], 0, len(e.children)+len(children))
	ch = append(ch, e.children...)
	ch = append(ch, children...)
	return List(ch...)
}

// String returns a literal representation of e, as in "[1 2 [3]]".
// It does not recurse, thus is safe for deeply nested lists.
func (e Element[T]) String() string {
	var b strings.Builder
	w := NewWalker(e)
	for w.Step() {
		switch w.Event() {
		case Open:
			b.WriteByte('[')
		case Close:
			b.WriteByte(']')
		case Atom:
			fmt.Fprintf(&b, "%v", w.Element().Value())
		}
		if w.Event() != Open && w.HasSibling() {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Depth returns the maximum nesting depth of e: 0 for a leaf, 1 for a flat
// list, and so on.
func Depth[T any](e Element[T]) int {
	deepest := 0
	w := NewWalker(e)
	for w.Step() {
		if w.Event() == Open && w.Level()+1 > deepest {
			deepest = w.Level() + 1
		}
	}
	return deepest
}

// Count returns the number of leaves of e.
func Count[T any](e Element[T]) int {
	count := 0
	w := NewWalker(e)
	for w.Step() {
		if w.Event() == Atom {
			count++
		}
	}
	return count
}
