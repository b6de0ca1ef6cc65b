package prometheus

import (
	"time"

	"github.com/hupe1980/jarowinkler"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Collector implements jarowinkler.MetricsCollector.
type Collector struct {
	latency  *prometheus.HistogramVec
	scores   prometheus.Histogram
	compares *prometheus.CounterVec
}

var _ jarowinkler.MetricsCollector = (*Collector)(nil)

// Options configures metric names.
type Options struct {
	// Namespace prefixes every metric name. Defaults to "jarowinkler".
	Namespace string
	// ConstLabels are attached to every metric.
	ConstLabels prometheus.Labels
}

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := Options{Namespace: "jarowinkler"}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "compare_duration_seconds",
			Help:        "Latency of string comparisons",
			ConstLabels: opts.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"status"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "compare_score",
			Help:        "Similarity scores of successful comparisons",
			ConstLabels: opts.ConstLabels,
			Buckets:     prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		compares: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "compares_total",
			Help:        "Total comparisons by status",
			ConstLabels: opts.ConstLabels,
		}, []string{"status"}),
	}

	for _, col := range []prometheus.Collector{c.latency, c.scores, c.compares} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordCompare implements jarowinkler.MetricsCollector.
func (c *Collector) RecordCompare(d time.Duration, score float64, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	c.latency.WithLabelValues(status).Observe(d.Seconds())
	c.compares.WithLabelValues(status).Inc()
	if err == nil {
		c.scores.Observe(score)
	}
}
