package jarowinkler

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting comparison metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordCompare is called after each Comparer.Compare call.
	// score is 0 when err is non-nil.
	RecordCompare(duration time.Duration, score float64, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompare(time.Duration, float64, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// The zero value is ready to use.
type BasicMetricsCollector struct {
	CompareCount      atomic.Int64
	CompareErrors     atomic.Int64
	CompareTotalNanos atomic.Int64
	ExactMatches      atomic.Int64
	scoreSumBits      atomic.Uint64
}

// RecordCompare implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompare(duration time.Duration, score float64, err error) {
	b.CompareCount.Add(1)
	b.CompareTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompareErrors.Add(1)
		return
	}
	if score == 1 {
		b.ExactMatches.Add(1)
	}
	for {
		old := b.scoreSumBits.Load()
		sum := math.Float64frombits(old) + score
		if b.scoreSumBits.CompareAndSwap(old, math.Float64bits(sum)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.CompareCount.Load()
	errs := b.CompareErrors.Load()

	stats := BasicMetricsStats{
		CompareCount:  count,
		CompareErrors: errs,
		ExactMatches:  b.ExactMatches.Load(),
	}
	if count > 0 {
		stats.CompareAvgNanos = b.CompareTotalNanos.Load() / count
	}
	if ok := count - errs; ok > 0 {
		stats.AvgScore = math.Float64frombits(b.scoreSumBits.Load()) / float64(ok)
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CompareCount    int64
	CompareErrors   int64
	CompareAvgNanos int64
	ExactMatches    int64
	// AvgScore is the mean score of successful comparisons.
	AvgScore float64
}
