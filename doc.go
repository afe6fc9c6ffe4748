/*
Package lazyseq is a small toolbox for lazy, pull-based sequences.

Every sequence in this module is built from the same primitive: an Iterator,
which on each call to Advance either produces exactly one element or signals
exhaustion. Once an iterator is exhausted it stays exhausted. Consumers
usually do not call Advance themselves, but wrap an iterator into a Cursor:

    c := adapt.Chain(lazyseq.Slice[int]{1, 2, 3}, lazyseq.Slice[int]{4})
    for c.HasNext() {
        v, _ := c.Next()
        fmt.Println(v)
    }

Package structure is as follows:

■ adapt: chaining and zipping of sequences.

■ primes: a lazily consumed sieve of Eratosthenes.

■ comb: k-combinations of a slice, enumerated without recursion.

■ nested: nested lists and a flattening iterator with an explicit stack.

■ crosscheck: compares an explicit iterator with its generator twin.

■ literal: reads nested list literals like "[1 2 [3 4]]".

Each adapter comes in two flavours: an explicit iterator object and an
equivalent generator (iter.Seq). Both are required to produce identical
sequences; package crosscheck exists to verify exactly that.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lazyseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq")
}
