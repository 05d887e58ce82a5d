package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komrad36/PrimeSieve/internal/wheel"
)

func runFresh(numSegs, numThreads uint64) []uint64 {
	bitmap := make([]uint64, wheel.BlocksPerSeg*numSegs)
	Run(bitmap, 0, numSegs, numThreads)
	return bitmap
}

func TestRunIsDeterministicAcrossThreadCounts(t *testing.T) {
	const numSegs = 6

	single := runFresh(numSegs, 1)
	for _, threads := range []uint64{2, 3, 4, 8, wheel.MaxThreads} {
		got := runFresh(numSegs, threads)
		assert.Equal(t, single, got, "numThreads=%d", threads)
	}
}

func TestRunBelowThresholdIsSingleThreaded(t *testing.T) {
	// total < numThreads takes the single-threaded path; this must
	// still produce a fully correct bitmap, not a partial one.
	bitmap := make([]uint64, wheel.BlocksPerSeg*2)
	Run(bitmap, 0, 2, 32)

	full := runFresh(2, 1)
	assert.Equal(t, full, bitmap)
}

func TestRunIsIdempotentNoOpOnEmptyRange(t *testing.T) {
	bitmap := runFresh(2, 4)
	before := append([]uint64(nil), bitmap...)
	Run(bitmap, 2, 2, 4)
	assert.Equal(t, before, bitmap)
}
