// Package testutil provides testing utilities for jarowinkler.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random byte strings for property tests.
//
// # Random Strings
//
//	rng := testutil.NewRNG(seed)
//	s := rng.String("abc", 8)   // 8 characters drawn from the alphabet
//	u := rng.UTF8(8)            // 8 characters of mixed byte width
//	m := rng.Mutate(s, 2)       // s with 2 random edits
package testutil
