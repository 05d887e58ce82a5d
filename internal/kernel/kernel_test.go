package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komrad36/PrimeSieve/internal/wheel"
)

// isPrimeTrial is the brute-force oracle the kernel is checked
// against: trial division up to floor(sqrt(x)).
func isPrimeTrial(x uint64) bool {
	if x < 2 {
		return false
	}
	if x < 4 {
		return true
	}
	if x%2 == 0 {
		return false
	}
	for d := uint64(3); d*d <= x; d += 2 {
		if x%d == 0 {
			return false
		}
	}
	return true
}

func isPrimeInSegments(bitmap []uint64, x uint64) bool {
	if x == 2 {
		return true
	}
	if x&1 == 0 {
		return false
	}
	native := wheel.NativeIndex(x)
	seg := wheel.SegmentOf(native)
	segBit := wheel.SegBit(native, seg)
	word, bit := wheel.WordBit(segBit)
	return bitmap[word]&(1<<bit) == 0
}

func computeFull(numSegs uint64) []uint64 {
	bitmap := make([]uint64, wheel.BlocksPerSeg*numSegs)
	limit := numSegs * wheel.SegmentSpan
	primes := SmallPrimesUpTo(SqrtUint64(limit) + 1)
	ComputeSegments(bitmap, 0, numSegs, primes)
	return bitmap
}

func TestComputeSegmentsMatchesTrialDivision(t *testing.T) {
	bitmap := computeFull(2)
	limit := uint64(2) * wheel.SegmentSpan

	for x := uint64(0); x < limit; x++ {
		require.Equal(t, isPrimeTrial(x), isPrimeInSegments(bitmap, x), "x=%d", x)
	}
}

func TestComputeSegmentsPaddingBitsSet(t *testing.T) {
	bitmap := computeFull(1)
	for seg := uint64(0); seg < 1; seg++ {
		for b := wheel.BitsPerSeg; b < wheel.BlocksPerSeg*64; b++ {
			word, bit := wheel.WordBit(uint64(b))
			word += seg * wheel.BlocksPerSeg
			assert.NotZero(t, bitmap[word]&(1<<bit), "segment %d padding bit %d should be set", seg, b)
		}
	}
}

func TestComputeSegmentsChunkedMatchesSingleShot(t *testing.T) {
	// Computing the same range in one call or in several disjoint
	// calls (as the dispatcher's workers would do) must produce the
	// same bitmap, because the kernel's segments are fully independent
	// given the shared small-prime list.
	const numSegs = 4
	full := computeFull(numSegs)

	chunked := make([]uint64, wheel.BlocksPerSeg*numSegs)
	primes := SmallPrimesUpTo(SqrtUint64(numSegs*wheel.SegmentSpan) + 1)
	ComputeSegments(chunked, 0, 1, primes)
	ComputeSegments(chunked, 1, 3, primes)
	ComputeSegments(chunked, 3, numSegs, primes)

	assert.Equal(t, full, chunked)
}

func TestSmallPrimesUpTo(t *testing.T) {
	primes := SmallPrimesUpTo(100)
	want := []uint64{19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	assert.Equal(t, want, primes)
}

func TestSmallPrimesUpToBelowFloor(t *testing.T) {
	assert.Nil(t, SmallPrimesUpTo(18))
}

func TestCeilMultiple(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 7, 0},
		{1, 7, 7},
		{7, 7, 7},
		{8, 7, 14},
		{1 << 40, 19, ((1 << 40) + 18) / 19 * 19},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ceilMultiple(tt.a, tt.b), "a=%d b=%d", tt.a, tt.b)
	}
}
