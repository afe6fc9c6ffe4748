package adapt

import (
	"iter"

	"github.com/npillmayer/lazyseq"
)

// ZipIterator combines a list of sequences element-wise. Each call to
// Advance advances all of the input iterators and returns their elements as
// a tuple. As soon as any input is exhausted, the zip is exhausted as well,
// regardless of elements remaining in other inputs.
type ZipIterator[T any] struct {
	iters []lazyseq.Iterator[T]
	done  bool
}

// NewZipIterator creates a zipping iterator. Input iterators are opened
// immediately, but not advanced.
func NewZipIterator[T any](seqs ...lazyseq.Sequence[T]) *ZipIterator[T] {
	z := &ZipIterator[T]{
		iters: make([]lazyseq.Iterator[T], len(seqs)),
		done:  len(seqs) == 0,
	}
	for i, seq := range seqs {
		z.iters[i] = seq.Iterate()
	}
	return z
}

// Zip combines sequences element-wise. The result has as many tuples as the
// shortest input has elements.
//
//     z := adapt.Zip(lazyseq.Slice[int]{1, 2}, lazyseq.Slice[int]{3, 4})
//     z.Collect()   // => [[1 3] [2 4]]
//
// Each tuple is a freshly allocated slice.
func Zip[T any](seqs ...lazyseq.Sequence[T]) *lazyseq.Cursor[[]T] {
	return lazyseq.NewCursor[[]T](NewZipIterator(seqs...))
}

// Advance is part of interface lazyseq.Iterator.
func (z *ZipIterator[T]) Advance() ([]T, bool) {
	if z.done {
		return nil, false
	}
	tuple := make([]T, len(z.iters))
	for i, it := range z.iters {
		v, ok := it.Advance()
		if !ok {
			tracer().Debugf("zip: input #%d exhausted", i)
			z.Stop()
			return nil, false
		}
		tuple[i] = v
	}
	return tuple, true
}

// Stop exhausts z and releases all of its inputs.
func (z *ZipIterator[T]) Stop() {
	if z.done && z.iters == nil {
		return
	}
	z.done = true
	for _, it := range z.iters {
		if st, ok := it.(lazyseq.Stopper); ok {
			st.Stop()
		}
	}
	z.iters = nil
}

// ZipSeq is the generator form of Zip.
func ZipSeq[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		for {
			tuple := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				tuple[i] = v
			}
			if !yield(tuple) {
				return
			}
		}
	}
}
