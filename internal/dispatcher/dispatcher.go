// Package dispatcher partitions a segment range across a bounded
// worker pool backed by golang.org/x/sync/errgroup: split the range
// into near-equal contiguous chunks, run one worker per chunk via
// errgroup.Group.SetLimit, and block until every worker has joined.
package dispatcher

import (
	"golang.org/x/sync/errgroup"

	"github.com/komrad36/PrimeSieve/internal/kernel"
	"github.com/komrad36/PrimeSieve/internal/wheel"
)

// Run fills bitmap segments [numSegsComputed, newNumSegs) using up to
// numThreads workers. Below the numThreads threshold it runs
// single-threaded in the caller, since the overhead of dispatch isn't
// worth it for a small range. Segments are disjoint across workers,
// so no locking is needed inside the kernel.
func Run(bitmap []uint64, numSegsComputed, newNumSegs, numThreads uint64) {
	total := newNumSegs - numSegsComputed
	if total == 0 {
		return
	}

	limit := newNumSegs * wheel.SegmentSpan
	smallPrimes := kernel.SmallPrimesUpTo(kernel.SqrtUint64(limit) + 1)

	if total < numThreads {
		kernel.ComputeSegments(bitmap, numSegsComputed, newNumSegs, smallPrimes)
		return
	}

	chunk := (total + numThreads - 1) / numThreads

	g := new(errgroup.Group)
	g.SetLimit(int(numThreads))

	for start := numSegsComputed; start < newNumSegs; start += chunk {
		end := start + chunk
		if end > newNumSegs {
			end = newNumSegs
		}

		start, end := start, end
		g.Go(func() error {
			kernel.ComputeSegments(bitmap, start, end, smallPrimes)
			return nil
		})
	}

	_ = g.Wait()
}
