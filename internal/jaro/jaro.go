package jaro

import (
	"cmp"
	"slices"

	"github.com/hupe1980/jarowinkler/internal/codepoint"
)

// MaxPrefix is the longest common prefix rewarded by the Winkler boost.
const MaxPrefix = 4

// Counts is the outcome of the matching pass.
type Counts struct {
	Matches        int
	Transpositions int
}

// Order returns a and b with the shorter sequence first.
// Equal-length sequences are ordered by unit value so that the result does
// not depend on argument order.
func Order(a, b codepoint.Sequence) (codepoint.Sequence, codepoint.Sequence) {
	if c := cmp.Compare(len(a), len(b)); c > 0 || (c == 0 && slices.Compare(a, b) > 0) {
		return b, a
	}
	return a, b
}

// Window returns the search radius for a longer sequence of length n.
func Window(n int) int {
	return max(0, n/2-1)
}

// Match runs the matching pass. short must not be longer than long.
func Match(short, long codepoint.Sequence) Counts {
	var c Counts
	if len(short) == 0 || len(long) == 0 {
		return c
	}

	window := Window(len(long))
	last := len(long) - 1
	prev := -1

	for i, u := range short {
		left := max(0, i-window)
		right := min(last, i+window)

		matched, found := false, false
		for j := left; j <= right; j++ {
			if u != long[j] {
				continue
			}
			matched = true
			if !found && j > prev {
				prev = j
				found = true
			}
		}

		if matched {
			c.Matches++
			if !found {
				c.Transpositions++
			}
		}
	}
	return c
}

// Prefix counts the leading positions where short and long agree, up to MaxPrefix.
func Prefix(short, long codepoint.Sequence) int {
	n := min(MaxPrefix, len(short), len(long))
	for i := 0; i < n; i++ {
		if short[i] != long[i] {
			return i
		}
	}
	return n
}

// Score returns the Jaro similarity for c over sequences of length len1 and len2.
// Transpositions are already per match and are not halved.
func Score(c Counts, len1, len2 int) float64 {
	if c.Matches == 0 {
		return 0
	}
	m := float64(c.Matches)
	return (m/float64(len1) + m/float64(len2) + (m-float64(c.Transpositions))/m) / 3.0
}

// Boost applies the Winkler prefix adjustment when jaro reaches threshold.
func Boost(jaro float64, prefix int, weight, threshold float64) float64 {
	if jaro < threshold {
		return jaro
	}
	return jaro + (float64(prefix)*weight)*(1-jaro)
}
