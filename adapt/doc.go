/*
Package adapt implements sequence adapters which combine several input
sequences into one.

Chain concatenates sequences, Zip combines them element-wise and stops at the
shortest input. Both are offered as explicit iterators (wrapped into a
lazyseq.Cursor) and as generators (ChainSeq, ZipSeq), which are required to
yield identical sequences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adapt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lazyseq.adapt'.
func tracer() tracing.Trace {
	return tracing.Select("lazyseq.adapt")
}
