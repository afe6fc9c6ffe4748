/*
Package crosscheck validates an explicit iterator against its generator twin.

Every adapter of this module exists in two forms, an iterator object with
explicit state and a generator (iter.Seq). Compare runs both side by side and
reports the first position where they diverge. Elements are compared by their
structhash serialization, i.e. two sequences are considered equal if they are
byte-identical element by element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package crosscheck

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.crosscheck'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.crosscheck")
}
