/*
Package literal reads nested list literals, as used by the lzrepl command
line tool and in tests:

    [1 2 [3 [4] 5]]
    ["Hello" World, [42 3.14]]

Lists are enclosed in brackets, items are separated by blanks or commas.
Items may be numbers, identifiers or double-quoted strings; the parser does
not interpret them, but keeps them as Atoms carrying their lexeme.

Scanning is done by a lexmachine DFA. Parsing does not recurse, but keeps a
stack of lists under construction, thus handles deep nesting gracefully.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package literal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.literal'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.literal")
}
