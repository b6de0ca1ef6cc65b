// Package jarowinkler computes the Jaro-Winkler similarity of two byte strings.
//
// Scores are normalized to [0, 1]: 1.0 means identical, 0.0 means nothing in
// common. Inputs are split into characters by their UTF-8 lead bytes and
// characters compare by raw bytes, so no Unicode normalization takes place.
//
// # Quick Start
//
//	score, err := jarowinkler.Distance([]byte("MARTHA"), []byte("MARHTA"), jarowinkler.DefaultOptions())
//	// score ≈ 0.961
//
// Case-insensitive comparison folds ASCII letters only:
//
//	opts := jarowinkler.DefaultOptions()
//	opts.IgnoreCase = true
//	score, _ := jarowinkler.DistanceString("abc", "ABC", opts) // 1.0
//
// # Options
//
//   - IgnoreCase: fold 'a'..'z' to upper case before comparing (default false)
//   - Weight: boost per common prefix character, up to 4 (default 0.1)
//   - Threshold: minimum Jaro score before the boost applies (default 0.7)
//
// Weight and Threshold are not validated. A Weight above 0.25 can produce
// scores above 1.
//
// # Errors
//
// A lead byte announcing more bytes than remain in the input yields an error
// matching ErrInvalidEncoding. Empty input is not an error and scores 0.
//
// # Observability
//
// Distance and friends are pure functions. A Comparer wraps them with a
// structured Logger and a MetricsCollector:
//
//	c := jarowinkler.New(jarowinkler.DefaultOptions(),
//	    jarowinkler.WithLogger(jarowinkler.NewJSONLogger(slog.LevelDebug)),
//	    jarowinkler.WithMetricsCollector(&jarowinkler.BasicMetricsCollector{}),
//	)
//	score, err := c.Compare(ctx, a, b)
//
// The metrics/prometheus subpackage exports comparison metrics to Prometheus.
//
// All functions and Comparer methods are safe for concurrent use.
package jarowinkler
