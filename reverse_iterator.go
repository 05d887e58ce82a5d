package primesieve

import (
	"iter"
	"math/bits"

	"github.com/komrad36/PrimeSieve/internal/wheel"
)

// ReverseIterator walks decreasing primes down to 2. Unlike
// ForwardIterator it never grows the sieve itself: IterateBackwardFrom
// grows the sieve once, up front, to cover its starting bound, and the
// precondition that bound is already computed holds for the rest of
// the walk.
type ReverseIterator struct {
	sieve  *Sieve
	bitmap []uint64
	block  uint64
	iBlock uint64
	x      uint64
}

// IterateBackwardFrom returns an iterator over primes strictly less
// than x, in decreasing order, terminating after it yields 2. For
// x <= 2 the sequence is empty.
func (s *Sieve) IterateBackwardFrom(x uint64) *ReverseIterator {
	s.metrics.OnQuery("backward")
	s.logger.LogQuery("backward", x)

	it := &ReverseIterator{sieve: s}
	if x <= 2 {
		it.x = 1
		return it
	}

	native := wheel.NativeIndex(x)
	seg := wheel.SegmentOf(native)
	if seg >= s.numSegsComputed {
		s.growToInternal(seg + 1)
	}

	segBit := wheel.SegBit(native, seg)
	word, bit := wheel.WordBit(segBit)

	it.bitmap = s.bitmap
	it.iBlock = word
	it.block = ^(it.bitmap[word] | (^uint64(0) << bit))
	it.x = x
	it.advance()
	return it
}

func (it *ReverseIterator) advance() {
	for it.block == 0 {
		if it.iBlock == 0 {
			// The smallest representable prime bit is for 3; once the
			// scan empties out segment 0 the last real value yielded
			// was 3, and decrementing it yields 2 -- the one integer
			// this bitmap never stores a bit for.
			it.x--
			return
		}
		it.iBlock--
		it.block = ^it.bitmap[it.iBlock]
	}
	hi := 63 - bits.LeadingZeros64(it.block)
	it.x = wheel.PrimeFromBlockBit(it.iBlock, uint(hi))
}

// Advance moves the iterator to the next (smaller) prime.
func (it *ReverseIterator) Advance() {
	if it.block != 0 {
		hi := 63 - bits.LeadingZeros64(it.block)
		it.block &^= uint64(1) << uint(hi)
	}
	it.advance()
}

// Value returns the prime the iterator currently points at.
func (it *ReverseIterator) Value() uint64 {
	return it.x
}

// Done reports whether iteration has finished: 2 has already been
// yielded and there is nothing left to produce.
func (it *ReverseIterator) Done() bool {
	return it.x == 1
}

// Seq adapts the iterator into a range-over-func sequence, starting at
// its current value and running through 2. The iterator is consumed
// by the returned sequence.
func (it *ReverseIterator) Seq() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for !it.Done() {
			if !yield(it.Value()) {
				return
			}
			it.Advance()
		}
	}
}
