package primesieve

import "time"

// MetricsObserver receives growth and query events from a Sieve.
type MetricsObserver interface {
	// OnGrow is called when a growth completes, reporting how many
	// new segments were computed and how long it took.
	OnGrow(duration time.Duration, segmentsComputed uint64)

	// OnQuery is called for each public query, tagged by kind:
	// "is_prime", "next_prime", "prev_prime", "forward", or "backward".
	OnQuery(kind string)
}

// NoopMetricsObserver discards all events. It is the default.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnGrow(time.Duration, uint64) {}
func (NoopMetricsObserver) OnQuery(string)               {}
