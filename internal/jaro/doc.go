// Package jaro implements the matching and scoring passes of Jaro-Winkler
// over decoded code unit sequences.
//
// The matcher keeps a single forward cursor into the longer sequence instead
// of a consumed-position array. A position of the longer sequence may match
// more than one character of the shorter one; a match that cannot advance the
// cursor counts as a transposition. Scores computed here are therefore not
// the textbook Jaro values for every input with repeated characters.
package jaro
