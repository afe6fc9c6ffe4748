/*
Package primes provides a lazily consumed sequence of prime numbers below a
bound, computed by a sieve of Eratosthenes.

Note that, for historical reasons, the sequence includes the number 1 as its
first element whenever the bound is at least 2:

    primes.Below(8).Collect()    // => [1 2 3 5 7]

This is not a bug, though it is certainly non-standard. Clients wanting the
primes proper may use option WithoutOne().

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package primes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.primes'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.primes")
}
