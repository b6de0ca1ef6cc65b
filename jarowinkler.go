package jarowinkler

import (
	"github.com/hupe1980/jarowinkler/internal/codepoint"
	"github.com/hupe1980/jarowinkler/internal/jaro"
)

const (
	// DefaultWeight is the default boost per common prefix character.
	DefaultWeight = 0.1

	// DefaultThreshold is the default minimum Jaro score for the prefix boost.
	DefaultThreshold = 0.7
)

// Options controls a comparison. It is passed by value and never modified.
type Options struct {
	// IgnoreCase folds single-byte 'a'..'z' to upper case before comparing.
	// Multi-byte characters are compared as is.
	IgnoreCase bool

	// Weight is the score boost per common prefix character (at most 4).
	Weight float64

	// Threshold is the minimum Jaro score required before the boost applies.
	Threshold float64
}

// DefaultOptions returns {IgnoreCase: false, Weight: 0.1, Threshold: 0.7}.
func DefaultOptions() Options {
	return Options{
		Weight:    DefaultWeight,
		Threshold: DefaultThreshold,
	}
}

// Result breaks down a single comparison.
type Result struct {
	Matches        int
	Transpositions int
	// Prefix is the length of the common prefix, capped at 4.
	Prefix int
	// Jaro is the score before the Winkler boost.
	Jaro float64
	// Score is the Jaro-Winkler similarity returned by Distance.
	Score float64
}

// Distance returns the Jaro-Winkler similarity of s1 and s2.
//
// The result does not depend on argument order. It returns an error matching
// ErrInvalidEncoding if either input ends inside a multi-byte character.
func Distance(s1, s2 []byte, opts Options) (float64, error) {
	r, err := Explain(s1, s2, opts)
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// DistanceString is Distance for strings.
func DistanceString(s1, s2 string, opts Options) (float64, error) {
	return Distance([]byte(s1), []byte(s2), opts)
}

// Jaro returns the Jaro similarity of s1 and s2, without the Winkler boost.
// Only opts.IgnoreCase is used.
func Jaro(s1, s2 []byte, opts Options) (float64, error) {
	r, err := Explain(s1, s2, opts)
	if err != nil {
		return 0, err
	}
	return r.Jaro, nil
}

// Explain compares s1 and s2 and reports the intermediate counts along with
// the final score.
func Explain(s1, s2 []byte, opts Options) (Result, error) {
	a, err := decode("s1", s1, opts.IgnoreCase)
	if err != nil {
		return Result{}, err
	}
	b, err := decode("s2", s2, opts.IgnoreCase)
	if err != nil {
		return Result{}, err
	}

	short, long := jaro.Order(a, b)
	counts := jaro.Match(short, long)
	prefix := jaro.Prefix(short, long)
	j := jaro.Score(counts, len(short), len(long))

	return Result{
		Matches:        counts.Matches,
		Transpositions: counts.Transpositions,
		Prefix:         prefix,
		Jaro:           j,
		Score:          jaro.Boost(j, prefix, opts.Weight, opts.Threshold),
	}, nil
}

func decode(arg string, s []byte, ignoreCase bool) (codepoint.Sequence, error) {
	seq, err := codepoint.Decode(s)
	if err != nil {
		return nil, translateError(arg, err)
	}
	if ignoreCase {
		seq.FoldASCII()
	}
	return seq, nil
}
