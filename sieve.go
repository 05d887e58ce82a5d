package primesieve

import (
	"runtime"
	"time"

	"github.com/komrad36/PrimeSieve/internal/dispatcher"
	"github.com/komrad36/PrimeSieve/internal/wheel"
)

// Sieve is a growable, bit-packed prime sieve. It owns its bitmap,
// grows it on demand, and answers primality and iteration queries
// against it in amortized constant time once a range is computed.
//
// A Sieve is not safe for concurrent mutation from multiple
// goroutines; concurrent read-only queries are safe only while no
// goroutine is growing it (see the package doc's Concurrency section).
type Sieve struct {
	bitmap           []uint64
	numSegsAllocated uint64
	numSegsComputed  uint64
	numThreads       uint64
	logger           *Logger
	metrics          MetricsObserver
}

// New constructs a Sieve. With no options it allocates nothing until
// the first query or growth.
func New(opts ...Option) *Sieve {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Sieve{
		numThreads: clampThreads(cfg.numThreads),
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}
	s.GrowTo(cfg.initialUpperBound)
	return s
}

func clampThreads(n uint64) uint64 {
	if n == 0 {
		n = uint64(runtime.GOMAXPROCS(0))
	}
	if n > wheel.MaxThreads {
		n = wheel.MaxThreads
	}
	if n < 1 {
		n = 1
	}
	return n
}

// GrowTo ensures the sieve covers every integer <= x. It is a no-op
// for x < 3 and for any x already covered by a prior growth.
func (s *Sieve) GrowTo(x uint64) {
	if x < 3 {
		return
	}
	s.growToInternal(wheel.SegmentCount(x))
}

// growToInternal ensures numSegsComputed >= newNumSegs, reallocating
// the bitmap (copying forward the already-computed prefix) if the
// current allocation is too small, then dispatching computation of
// the newly-added segments.
func (s *Sieve) growToInternal(newNumSegs uint64) {
	if newNumSegs <= s.numSegsComputed {
		return
	}

	if newNumSegs > s.numSegsAllocated {
		newBitmap := make([]uint64, wheel.BlocksPerSeg*newNumSegs)
		copy(newBitmap, s.bitmap[:wheel.BlocksPerSeg*s.numSegsComputed])
		s.bitmap = newBitmap
		s.numSegsAllocated = newNumSegs
	}

	s.computeToInternal(newNumSegs)
}

func (s *Sieve) computeToInternal(newNumSegs uint64) {
	fromSegs := s.numSegsComputed
	start := time.Now()

	dispatcher.Run(s.bitmap, fromSegs, newNumSegs, s.numThreads)
	s.numSegsComputed = newNumSegs

	dur := time.Since(start)
	s.logger.LogGrow(fromSegs, newNumSegs, s.numThreads, dur)
	s.metrics.OnGrow(dur, newNumSegs-fromSegs)
}

// IsPrime reports whether x is prime, growing the sieve if the
// segment covering x has not yet been computed.
func (s *Sieve) IsPrime(x uint64) bool {
	s.metrics.OnQuery("is_prime")
	s.logger.LogQuery("is_prime", x)

	if x == 2 {
		return true
	}
	if x&1 == 0 {
		return false
	}

	iSeg := x / wheel.SegmentSpan
	if iSeg >= s.numSegsComputed {
		s.growToInternal(iSeg + 1)
	}

	native := wheel.NativeIndex(x)
	segBit := wheel.SegBit(native, iSeg)
	word, bit := wheel.WordBit(segBit)
	return s.bitmap[word]&(1<<bit) == 0
}

// NextPrime returns the smallest prime strictly greater than x.
func (s *Sieve) NextPrime(x uint64) uint64 {
	s.metrics.OnQuery("next_prime")
	s.logger.LogQuery("next_prime", x)
	return s.IterateForwardFrom(x).Value()
}

// PrevPrime returns the largest prime strictly less than x. Its
// behavior is undefined for x <= 2, matching the reference this
// sieve is modeled on; callers that want a checked variant should use
// TryPrevPrime.
func (s *Sieve) PrevPrime(x uint64) uint64 {
	s.metrics.OnQuery("prev_prime")
	s.logger.LogQuery("prev_prime", x)
	return s.IterateBackwardFrom(x).Value()
}

// TryPrevPrime returns the largest prime strictly less than x, or
// ErrInvalidPrevPrime if x <= 2.
func (s *Sieve) TryPrevPrime(x uint64) (uint64, error) {
	if x <= 2 {
		return 0, ErrInvalidPrevPrime
	}
	return s.PrevPrime(x), nil
}
