package main

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/lazyseq"
	"github.com/npillmayer/lazyseq/adapt"
	"github.com/npillmayer/lazyseq/comb"
	"github.com/npillmayer/lazyseq/literal"
	"github.com/npillmayer/lazyseq/nested"
	"github.com/npillmayer/lazyseq/primes"
)

// job bundles the two forms of a sequence command. Elements are rendered
// as strings, so that all commands share one output path.
type job struct {
	explicit  func() lazyseq.Iterator[string]
	generator func() iter.Seq[string]
}

// makeJob sets up the sequence for a command. Nothing is iterated yet.
func makeJob(cmd string, a []nested.Element[literal.Atom]) (job, error) {
	switch cmd {
	case "chain", "zip":
		lists, err := flatLists(cmd, a)
		if err != nil {
			return job{}, err
		}
		if cmd == "chain" {
			return chainJob(lists), nil
		}
		return zipJob(lists), nil
	case "primes":
		if len(a) != 1 || a[0].IsList() {
			return job{}, fmt.Errorf("usage: primes <n>")
		}
		n, err := a[0].Value().Int()
		if err != nil {
			return job{}, err
		}
		return job{
			explicit:  func() lazyseq.Iterator[string] { return render[int](primes.NewSieve(n)) },
			generator: func() iter.Seq[string] { return renderSeq(primes.Seq(n)) },
		}, nil
	case "comb":
		if len(a) != 2 || !a[0].IsList() || a[1].IsList() {
			return job{}, fmt.Errorf("usage: comb <list> <k>")
		}
		items, err := literal.Lexemes(a[0])
		if err != nil {
			return job{}, err
		}
		k, err := a[1].Value().Int()
		if err != nil {
			return job{}, err
		}
		return job{
			explicit:  func() lazyseq.Iterator[string] { return render[[]string](comb.NewEnumerator(items, k)) },
			generator: func() iter.Seq[string] { return renderSeq(comb.Seq(items, k)) },
		}, nil
	case "flatten":
		if len(a) != 1 {
			return job{}, fmt.Errorf("usage: flatten <list>")
		}
		e := a[0]
		return job{
			explicit:  func() lazyseq.Iterator[string] { return render[literal.Atom](nested.NewFlattener(e)) },
			generator: func() iter.Seq[string] { return renderSeq(nested.Seq(e)) },
		}, nil
	case "":
		return job{}, fmt.Errorf("command expected")
	}
	return job{}, fmt.Errorf("unknown command: %s", cmd)
}

func flatLists(cmd string, a []nested.Element[literal.Atom]) ([][]string, error) {
	lists := make([][]string, len(a))
	for i, e := range a {
		if !e.IsList() {
			return nil, fmt.Errorf("%s: argument #%d is not a list", cmd, i+1)
		}
		l, err := literal.Lexemes(e)
		if err != nil {
			return nil, err
		}
		lists[i] = l
	}
	return lists, nil
}

func chainJob(lists [][]string) job {
	return job{
		explicit: func() lazyseq.Iterator[string] {
			return adapt.NewChainIterator(sequences(lists)...)
		},
		generator: func() iter.Seq[string] {
			return adapt.ChainSeq(generators(lists)...)
		},
	}
}

func zipJob(lists [][]string) job {
	return job{
		explicit: func() lazyseq.Iterator[string] {
			return render[[]string](adapt.NewZipIterator(sequences(lists)...))
		},
		generator: func() iter.Seq[string] {
			return renderSeq(adapt.ZipSeq(generators(lists)...))
		},
	}
}

func sequences(lists [][]string) []lazyseq.Sequence[string] {
	seqs := make([]lazyseq.Sequence[string], len(lists))
	for i, l := range lists {
		seqs[i] = lazyseq.Slice[string](l)
	}
	return seqs
}

func generators(lists [][]string) []iter.Seq[string] {
	gens := make([]iter.Seq[string], len(lists))
	for i, l := range lists {
		gens[i] = slices.Values(l)
	}
	return gens
}

// --- Rendering --------------------------------------------------------------

// rendered maps the elements of an iterator to their string representation.
type rendered[T any] struct {
	it lazyseq.Iterator[T]
}

func render[T any](it lazyseq.Iterator[T]) lazyseq.Iterator[string] {
	return &rendered[T]{it: it}
}

func (r *rendered[T]) Advance() (string, bool) {
	v, ok := r.it.Advance()
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Stop forwards to the wrapped iterator, if it is stoppable.
func (r *rendered[T]) Stop() {
	if st, ok := r.it.(lazyseq.Stopper); ok {
		st.Stop()
	}
}

func renderSeq[T any](seq iter.Seq[T]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range seq {
			if !yield(fmt.Sprint(v)) {
				return
			}
		}
	}
}
