// Package codepoint splits UTF-8 byte strings into opaque code units.
//
// A Unit holds the raw bytes of one lexical character packed into a uint64.
// Units compare by byte identity; no Unicode decoding or validation is done.
// The lead-byte table still recognizes the obsolete 5- and 6-byte forms so
// that loosely encoded input keeps decoding the same way.
//
// # Usage
//
//	seq, err := codepoint.Decode([]byte("naïve"))
//	seq.FoldASCII()
package codepoint
