package jarowinkler

import (
	"context"
	"time"
)

// Comparer bundles Options with a logger and a metrics collector.
// It holds no mutable state and may be shared between goroutines.
type Comparer struct {
	opts    Options
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Comparer for opts. Without options it neither logs nor
// collects metrics.
func New(opts Options, fns ...ComparerOption) *Comparer {
	co := comparerOptions{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range fns {
		fn(&co)
	}

	return &Comparer{
		opts:    opts,
		logger:  co.logger.WithOptions(opts),
		metrics: co.metricsCollector,
	}
}

// Options returns the options the Comparer was created with.
func (c *Comparer) Options() Options {
	return c.opts
}

// Compare returns Distance(s1, s2, c.Options()), logging and recording the call.
// ctx is only passed to the logger.
func (c *Comparer) Compare(ctx context.Context, s1, s2 []byte) (float64, error) {
	start := time.Now()
	score, err := Distance(s1, s2, c.opts)
	c.metrics.RecordCompare(time.Since(start), score, err)
	c.logger.LogCompare(ctx, len(s1), len(s2), score, err)
	return score, err
}

// CompareString is Compare for strings.
func (c *Comparer) CompareString(ctx context.Context, s1, s2 string) (float64, error) {
	return c.Compare(ctx, []byte(s1), []byte(s2))
}
