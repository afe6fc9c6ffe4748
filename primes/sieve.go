package primes

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/lazyseq"
	"golang.org/x/exp/constraints"
)

// Option configures a prime sequence.
type Option func(*config)

type config struct {
	withOne bool
}

// WithoutOne lets a prime sequence start with 2 instead of 1.
func WithoutOne() Option {
	return func(c *config) {
		c.withOne = false
	}
}

func configure(opts []Option) config {
	c := config{withOne: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Sieve is an iterator over the primes below a bound n. The sieve is
// computed once, when the iterator is created; primes are then handed out
// one at a time.
type Sieve[I constraints.Integer] struct {
	n         uint
	composite *bitset.BitSet // marked => not prime
	pos       uint           // next candidate to inspect
	one       bool           // 1 has yet to be emitted
}

// NewSieve creates an iterator over {1} ∪ {p prime | p < n}, in ascending order.
// For n ≤ 1 the sequence is empty.
func NewSieve[I constraints.Integer](n I, opts ...Option) *Sieve[I] {
	conf := configure(opts)
	if n <= 1 {
		return &Sieve[I]{}
	}
	s := &Sieve[I]{
		n:         uint(n),
		composite: strike(uint(n)),
		pos:       2,
		one:       conf.withOne,
	}
	tracer().Debugf("sieve for n=%d: %d composites struck", s.n, s.composite.Count())
	return s
}

// Below returns the ascending sequence of primes less than n, preceded by 1
// (if n ≥ 2).
//
//     primes.Below(8).Collect()    // => [1 2 3 5 7]
//     primes.Below(2).Collect()    // => [1]
//     primes.Below(1).Collect()    // => []
//
func Below[I constraints.Integer](n I, opts ...Option) *lazyseq.Cursor[I] {
	return lazyseq.NewCursor[I](NewSieve(n, opts...))
}

// Advance is part of interface lazyseq.Iterator.
func (s *Sieve[I]) Advance() (I, bool) {
	if s.one {
		s.one = false
		return 1, true
	}
	if s.pos >= s.n {
		return 0, false
	}
	next, ok := s.composite.NextClear(s.pos)
	if !ok || next >= s.n {
		s.pos = s.n
		return 0, false
	}
	s.pos = next + 1
	return I(next), true
}

// strike creates the marker set for [0,n): composites are struck from i·i
// upwards for every unmarked i with i·i < n. 0 and 1 are marked, too.
func strike(n uint) *bitset.BitSet {
	composite := bitset.New(n)
	composite.Set(0)
	if n > 1 {
		composite.Set(1)
	}
	for i := uint(2); i*i < n; i++ {
		if composite.Test(i) {
			continue
		}
		for j := i * i; j < n; j += i {
			composite.Set(j)
		}
	}
	return composite
}

// Seq is the generator form of Below.
func Seq[I constraints.Integer](n I, opts ...Option) iter.Seq[I] {
	conf := configure(opts)
	return func(yield func(I) bool) {
		if n <= 1 {
			return
		}
		if conf.withOne && !yield(1) {
			return
		}
		m := uint64(n)
		if m <= 2 {
			return
		}
		isPrime := make([]bool, m)
		for i := range isPrime[2:] {
			isPrime[i+2] = true
		}
		for i := uint64(2); i*i < m; i++ {
			if isPrime[i] {
				for j := i * i; j < m; j += i {
					isPrime[j] = false
				}
			}
		}
		for i := uint64(2); i < m; i++ {
			if isPrime[i] && !yield(I(i)) {
				return
			}
		}
	}
}
