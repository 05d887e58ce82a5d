package primesieve

// Option configures a Sieve at construction time.
type Option func(*config)

type config struct {
	numThreads        uint64
	initialUpperBound uint64
	logger            *Logger
	metrics           MetricsObserver
}

func defaultConfig() *config {
	return &config{
		logger:  NoopLogger(),
		metrics: NoopMetricsObserver{},
	}
}

// WithNumThreads sets the worker count used for large growths. 0 (the
// default) selects the host's logical CPU count, clamped to
// [1, kMaxThreads].
func WithNumThreads(n uint64) Option {
	return func(c *config) { c.numThreads = n }
}

// WithInitialUpperBound computes the sieve up to x immediately during
// New, so that queries <= x are served without further growth.
func WithInitialUpperBound(x uint64) Option {
	return func(c *config) { c.initialUpperBound = x }
}

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(l *Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics attaches a MetricsObserver. The default discards all events.
func WithMetrics(m MetricsObserver) Option {
	return func(c *config) { c.metrics = m }
}
