/*
Package main provides an interactive command line tool (LZREPL) to play
with the lazy sequence adapters of module lazyseq. Lists are entered as
literals, e.g.

    lzrepl> chain [1 2 3] [4] [5]
    lzrepl> flatten [1 2 [3 [4] 5]]
    lzrepl> check comb [a b c d] 2
    lzrepl> take 10 primes 1000000

Every command is backed by an explicit-state iterator and by a generator
function. "check" runs both and compares their output.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.repl'
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.repl")
}
