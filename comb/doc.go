/*
Package comb enumerates k-combinations of a slice.

A k-combination is a selection of k items, preserving their original order.
Combinations are produced in lexicographic order of the selected indices:

    comb.Of([]int{1, 2, 3}, 2).Collect()    // => [[1 2] [1 3] [2 3]]

The Enumerator does not recurse. It keeps the backtracking state as an
explicit stack of resume points, one per position of the selection, each
holding the next candidate index to try at that position.

For k ≤ 0 or k > len(items) the sequence is empty. Note that this includes
k = 0, for which mathematics knows exactly one (empty) combination. Clients
wanting the conventional behaviour may use option WithEmptySelection().

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.comb'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.comb")
}
