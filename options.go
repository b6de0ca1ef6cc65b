package jarowinkler

type comparerOptions struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// ComparerOption configures a Comparer.
type ComparerOption func(*comparerOptions)

// WithLogger sets the logger used by a Comparer.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) ComparerOption {
	return func(o *comparerOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after each comparison.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) ComparerOption {
	return func(o *comparerOptions) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
