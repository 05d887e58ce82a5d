// Package kernel implements the segmented sieve of Eratosthenes with
// a 17-wheel: the algorithmic heart of the sieve. Given a contiguous
// range of segments, it fills the bitmap words covering them with
// correct composite/prime bits.
package kernel

import (
	"math"

	"github.com/komrad36/PrimeSieve/internal/wheel"
)

var wheelPrimes = [...]uint64{3, 5, 7, 11, 13, 17}

// template is the per-segment wheel pattern: every bit corresponding
// to a multiple of 3, 5, 7, 11, 13, or 17 is set, every padding bit is
// set, and segment-0's own fixups (1 composite, the wheel primes
// themselves prime) are folded in. Because the wheel pattern's period
// equals BitsPerSeg, the same template applies to every segment
// regardless of its position on the number line; ComputeSegments
// undoes the segment-0 fixups in every other segment.
var template = buildTemplate()

func buildTemplate() [wheel.BlocksPerSeg]uint64 {
	var t [wheel.BlocksPerSeg]uint64

	for b := uint64(0); b < wheel.BitsPerSeg; b++ {
		x := 2*b + 1
		for _, p := range wheelPrimes {
			if x%p == 0 {
				word, bit := wheel.WordBit(b)
				t[word] |= 1 << bit
				break
			}
		}
	}

	for b := uint64(wheel.BitsPerSeg); b < wheel.BlocksPerSeg*64; b++ {
		word, bit := wheel.WordBit(b)
		t[word] |= 1 << bit
	}

	// 1 is not prime, but isn't a multiple of any wheel prime either.
	word, bit := wheel.WordBit(0)
	t[word] |= 1 << bit

	// 3, 5, 7, 11, 13, 17 are themselves prime; the loop above marked
	// them composite only because they are multiples of themselves.
	for _, p := range wheelPrimes {
		b := (p - 1) / 2
		word, bit := wheel.WordBit(b)
		t[word] &^= 1 << bit
	}

	return t
}

// ComputeSegments fills bitmap words for segments [iStart, iEnd) with
// correct sieve bits: composites and padding set, primes clear.
// smallPrimes must contain every prime in [19, sqrt(2*iEnd*BitsPerSeg)]
// in increasing order; the caller is responsible for materializing it
// up front so that concurrently-computed segment ranges never depend
// on each other's output.
func ComputeSegments(bitmap []uint64, iStart, iEnd uint64, smallPrimes []uint64) {
	for seg := iStart; seg < iEnd; seg++ {
		base := seg * wheel.BlocksPerSeg
		copy(bitmap[base:base+wheel.BlocksPerSeg], template[:])
		if seg == 0 {
			continue
		}
		// Outside segment 0, bit 0 is not the integer 1 and the wheel
		// prime bits are multiples of those primes.
		bitmap[base] &^= 1
		for _, p := range wheelPrimes {
			word, bit := wheel.WordBit((p - 1) / 2)
			bitmap[base+word] |= 1 << bit
		}
	}

	limit := iEnd * wheel.SegmentSpan
	rangeStart := iStart*wheel.SegmentSpan + 1

	for _, p := range smallPrimes {
		p2 := p * p
		if p2 > limit {
			break
		}

		low := p2
		if rangeStart > low {
			low = rangeStart
		}

		m := ceilMultiple(low, p)
		if m%2 == 0 {
			m += p
		}

		for ; m < limit; m += 2 * p {
			native := (m - 1) / 2
			seg := native / wheel.BitsPerSeg
			segBit := wheel.SegBit(native, seg)
			word, bit := wheel.WordBit(segBit)
			bitmap[word] |= 1 << bit
		}
	}
}

// SmallPrimesUpTo returns every prime in [19, limit], in increasing
// order, using a classic unpacked sieve of Eratosthenes. It
// bootstraps the main sieving loop in ComputeSegments, which needs
// primes up to sqrt(2*iEnd*BitsPerSeg) before it can strike composites
// in the segment range being built; materializing the list once,
// single-threaded, avoids every worker re-deriving it from a bitmap
// that other workers may still be writing.
func SmallPrimesUpTo(limit uint64) []uint64 {
	if limit < 19 {
		return nil
	}

	composite := make([]bool, limit+1)
	var primes []uint64
	for n := uint64(2); n <= limit; n++ {
		if composite[n] {
			continue
		}
		if n >= 19 {
			primes = append(primes, n)
		}
		for m := n * n; m <= limit && m >= n; m += n {
			composite[m] = true
		}
	}
	return primes
}

// SqrtUint64 returns floor(sqrt(x)) for a 64-bit unsigned integer,
// correcting the float64 approximation's rounding at the boundary.
func SqrtUint64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// smartRem computes a mod b, using 32-bit arithmetic when both
// operands fit in 32 bits. This is an optimization only: it must
// produce the same result as a % b.
func smartRem(a, b uint64) uint64 {
	if a <= math.MaxUint32 && b <= math.MaxUint32 {
		return uint64(uint32(a) % uint32(b))
	}
	return a % b
}

// ceilMultiple returns the smallest multiple of b that is >= a,
// computed via smartRem to avoid the overflow-prone a+b-1 rounding
// idiom.
func ceilMultiple(a, b uint64) uint64 {
	r := smartRem(a, b)
	if r == 0 {
		return a
	}
	return a + (b - r)
}
