package jarowinkler

import (
	"errors"
	"testing"
)

// FuzzDistance checks order invariance, range and identity on arbitrary bytes.
func FuzzDistance(f *testing.F) {
	f.Add([]byte("MARTHA"), []byte("MARHTA"), false)
	f.Add([]byte("cacb"), []byte("babb"), false)
	f.Add([]byte("naïve"), []byte("NAIVE"), true)
	f.Add([]byte{}, []byte("x"), false)
	f.Add([]byte{0xFC, 1, 2, 3, 4, 5}, []byte{0xC3}, false)

	f.Fuzz(func(t *testing.T, a, b []byte, ignoreCase bool) {
		if len(a) > 4096 || len(b) > 4096 {
			t.Skip()
		}
		opts := DefaultOptions()
		opts.IgnoreCase = ignoreCase

		ab, errAB := Distance(a, b, opts)
		ba, errBA := Distance(b, a, opts)

		if (errAB == nil) != (errBA == nil) {
			t.Fatalf("error depends on argument order: %v vs %v", errAB, errBA)
		}
		if errAB != nil {
			if !errors.Is(errAB, ErrInvalidEncoding) {
				t.Fatalf("unexpected error: %v", errAB)
			}
			return
		}

		if ab != ba {
			t.Fatalf("Distance(%q, %q) = %v, reversed = %v", a, b, ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("Distance(%q, %q) = %v out of range", a, b, ab)
		}
		if len(a) > 0 {
			if self, _ := Distance(a, a, opts); self != 1 {
				t.Fatalf("Distance(%q, itself) = %v", a, self)
			}
		}
	})
}
