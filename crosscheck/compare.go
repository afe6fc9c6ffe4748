package crosscheck

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lazyseq"
)

// ErrMismatch is returned (wrapped) by Compare if the two forms of a sequence
// diverge.
var ErrMismatch = errors.New("crosscheck: sequences differ")

// hashVersion is the structhash version tag for serialized elements.
const hashVersion = 1

// Report summarizes a successful comparison.
type Report struct {
	Count       int    // number of elements produced by each form
	Fingerprint string // structhash fingerprint of the complete transcript
}

func (r Report) String() string {
	return fmt.Sprintf("%d elements, fingerprint %s", r.Count, r.Fingerprint)
}

// record and transcript are the units handed to structhash; fields have to be
// exported for structhash to see them.
type record[T any] struct {
	Value T
}

type transcript[T any] struct {
	Elements []T
}

// Compare drains an explicit iterator and a generator in lock-step and
// compares their elements pairwise. If both produce the same elements in the
// same order, Compare returns a report. Otherwise it returns an error wrapping
// ErrMismatch, which states the first position of divergence.
//
// Both sequences have to be finite. If the iterator implements
// lazyseq.Stopper, it will be stopped on return.
func Compare[T any](it lazyseq.Iterator[T], seq iter.Seq[T]) (Report, error) {
	if st, ok := it.(lazyseq.Stopper); ok {
		defer st.Stop()
	}
	next, stop := iter.Pull(seq)
	defer stop()
	var elems []T
	for pos := 0; ; pos++ {
		a, okA := it.Advance()
		b, okB := next()
		if !okA && !okB {
			break
		}
		if okA != okB {
			tracer().Debugf("crosscheck: length mismatch at #%d", pos)
			return Report{Count: pos}, fmt.Errorf("%w: %s ends at position %d, %s does not",
				ErrMismatch, which(okA), pos, which(!okA))
		}
		da, db := dump(a), dump(b)
		if !bytes.Equal(da, db) {
			tracer().Debugf("crosscheck: element mismatch at #%d", pos)
			return Report{Count: pos}, fmt.Errorf("%w: position %d: iterator has %v, generator has %v",
				ErrMismatch, pos, a, b)
		}
		elems = append(elems, a)
	}
	fp, err := structhash.Hash(transcript[T]{Elements: elems}, hashVersion)
	if err != nil {
		return Report{Count: len(elems)}, err
	}
	tracer().Debugf("crosscheck: %d elements identical", len(elems))
	return Report{Count: len(elems), Fingerprint: fp}, nil
}

// Fingerprint computes the structhash fingerprint of a sequence of elements,
// the same way Compare does for its report.
func Fingerprint[T any](elems []T) (string, error) {
	return structhash.Hash(transcript[T]{Elements: elems}, hashVersion)
}

func dump[T any](v T) []byte {
	return structhash.Dump(record[T]{Value: v}, hashVersion)
}

// which names the form which ended first, given the ok-flag of the iterator.
func which(iteratorOK bool) string {
	if iteratorOK {
		return "generator"
	}
	return "iterator"
}
