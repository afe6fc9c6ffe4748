/*
Package nested implements nested lists of arbitrary depth, together with an
iterator which flattens them.

An Element is either a leaf, carrying a value, or a list of elements:

    e := nested.List(nested.Leaf(1), nested.Leaf(2),
            nested.List(nested.Leaf(3), nested.List(nested.Leaf(4)), nested.Leaf(5)))
    nested.Flatten(e).Collect()   // => [1 2 3 4 5]

Flattening yields the leaves depth-first, left to right, without building
intermediate lists. The flattening iterator keeps an explicit stack of
traversal frames, one for every list currently open. Nesting depth is
therefore limited by available memory only, not by the depth of the call
stack. Function Seq implements the same traversal recursively, as a
generator; it is mainly useful for cross-checking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nested

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.nested'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.nested")
}
