package adapt

import (
	"iter"

	"github.com/npillmayer/lazyseq"
)

// ChainIterator concatenates a list of sequences. It opens an iterator over
// an input sequence only when the previous one is exhausted.
type ChainIterator[T any] struct {
	seqs    []lazyseq.Sequence[T]
	inx     int                 // index of current input sequence
	current lazyseq.Iterator[T] // nil if not yet opened
}

// NewChainIterator creates an iterator yielding the elements of seqs[0],
// then those of seqs[1], and so on.
func NewChainIterator[T any](seqs ...lazyseq.Sequence[T]) *ChainIterator[T] {
	return &ChainIterator[T]{seqs: seqs}
}

// Chain concatenates sequences. An empty argument list results in an
// empty sequence.
//
//     c := adapt.Chain(lazyseq.Slice[int]{1, 2, 3}, lazyseq.Slice[int]{4})
//     c.Collect()   // => [1 2 3 4]
//
func Chain[T any](seqs ...lazyseq.Sequence[T]) *lazyseq.Cursor[T] {
	return lazyseq.NewCursor[T](NewChainIterator(seqs...))
}

// Advance is part of interface lazyseq.Iterator.
func (ch *ChainIterator[T]) Advance() (T, bool) {
	for ch.inx < len(ch.seqs) {
		if ch.current == nil {
			tracer().Debugf("chain: opening input #%d", ch.inx)
			ch.current = ch.seqs[ch.inx].Iterate()
		}
		if v, ok := ch.current.Advance(); ok {
			return v, true
		}
		ch.closeCurrent()
		ch.inx++
	}
	var zero T
	return zero, false
}

// Stop releases the currently open input iterator and exhausts ch.
func (ch *ChainIterator[T]) Stop() {
	ch.closeCurrent()
	ch.inx = len(ch.seqs)
}

func (ch *ChainIterator[T]) closeCurrent() {
	if ch.current == nil {
		return
	}
	if st, ok := ch.current.(lazyseq.Stopper); ok {
		st.Stop()
	}
	ch.current = nil
}

// ChainSeq is the generator form of Chain: it delegates to each input in turn.
func ChainSeq[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
