package primesieve

import (
	"iter"
	"math/bits"

	"github.com/komrad36/PrimeSieve/internal/wheel"
)

// ForwardIterator walks increasing primes from a Sieve, growing it on
// demand when the walk runs past the last computed segment. It must
// not outlive the Sieve it was obtained from, and it is not safe to
// use from more than one goroutine at a time.
type ForwardIterator struct {
	sieve     *Sieve
	bitmap    []uint64
	block     uint64
	iBlock    uint64
	iEndBlock uint64
	x         uint64
}

// IterateForwardFrom returns an iterator over primes strictly greater
// than x, in increasing order, with no upper bound; advancing past
// the last computed segment grows the sieve. If x < 2 the sequence
// begins at 2.
func (s *Sieve) IterateForwardFrom(x uint64) *ForwardIterator {
	s.metrics.OnQuery("forward")
	s.logger.LogQuery("forward", x)

	if x < 2 {
		return s.beginIterator()
	}

	native := wheel.NativeIndexAfter(x)
	seg := wheel.SegmentOf(native)
	if seg >= s.numSegsComputed {
		s.growToInternal(seg + 1)
	}

	segBit := wheel.SegBit(native, seg)
	word, bit := wheel.WordBit(segBit)

	it := &ForwardIterator{
		sieve:     s,
		bitmap:    s.bitmap,
		iBlock:    word,
		iEndBlock: wheel.BlocksPerSeg * s.numSegsComputed,
	}
	it.block = ^it.bitmap[word] & (^uint64(0) << bit)
	it.advance()
	return it
}

// beginIterator returns an iterator positioned at 2, the first prime.
// The bitmap is not scanned until the first Advance, matching the
// special handling 2 requires everywhere in this package: it is never
// represented in the bitmap.
func (s *Sieve) beginIterator() *ForwardIterator {
	return &ForwardIterator{
		sieve:     s,
		bitmap:    s.bitmap,
		iBlock:    ^uint64(0),
		iEndBlock: wheel.BlocksPerSeg * s.numSegsComputed,
		x:         2,
	}
}

// All returns every prime in increasing order, starting at 2. The
// sequence never terminates on its own; callers must break out of the
// range loop themselves.
func (s *Sieve) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.beginIterator()
		for {
			if !yield(it.Value()) {
				return
			}
			it.Advance()
		}
	}
}

func (it *ForwardIterator) advance() {
	for it.block == 0 {
		it.iBlock++
		if it.iBlock >= it.iEndBlock {
			it.sieve.growToInternal(it.sieve.numSegsComputed + 1)
			it.iEndBlock = wheel.BlocksPerSeg * it.sieve.numSegsComputed
			it.bitmap = it.sieve.bitmap
		}
		it.block = ^it.bitmap[it.iBlock]
	}
	bit := bits.TrailingZeros64(it.block)
	it.x = wheel.PrimeFromBlockBit(it.iBlock, uint(bit))
}

// Advance moves the iterator to the next prime.
func (it *ForwardIterator) Advance() {
	it.block &= it.block - 1
	it.advance()
}

// Value returns the prime the iterator currently points at.
func (it *ForwardIterator) Value() uint64 {
	return it.x
}

// Seq adapts the iterator into a range-over-func sequence, starting
// at its current value and continuing forever. The iterator is
// consumed by the returned sequence.
func (it *ForwardIterator) Seq() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(it.Value()) {
				return
			}
			it.Advance()
		}
	}
}
