// Package primesieve implements a 64-bit prime number oracle backed
// by an incrementally-extensible, bit-packed, 17-wheel segmented
// sieve of Eratosthenes, together with forward and reverse prime
// iterators.
//
// # Quick Start
//
//	s := primesieve.New()
//	s.IsPrime(17)      // true
//	s.NextPrime(14)     // 17
//	s.PrevPrime(20)     // 19
//
//	for p := range s.All() {
//	    if p > 30 {
//	        break
//	    }
//	    fmt.Println(p)
//	}
//
// # Growth Model
//
// A Sieve grows on demand: queries for values beyond what has been
// computed trigger further sieving, dispatched across a bounded
// worker pool for large ranges. Growth is monotone and the bitmap it
// produces is deterministic regardless of how many workers compute
// it.
//
//	s := primesieve.New(primesieve.WithInitialUpperBound(1_000_000))
//	s.GrowTo(10_000_000) // extends coverage; a no-op if already covered
//
// # Concurrency
//
// A Sieve is not safe for concurrent mutation from multiple
// goroutines. Concurrent read-only queries are safe only while no
// goroutine is growing the sieve; growth itself parallelizes
// internally and joins before returning.
//
// # Non-goals
//
// Inputs are 64-bit unsigned; the sieve is practical up to roughly
// 2^40-2^42 before memory exhaustion, not arithmetic overflow,
// becomes the limiting factor. There is no persistence: a Sieve's
// bitmap is ephemeral and recomputed from scratch at each
// construction.
package primesieve
