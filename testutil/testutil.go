package testutil

import (
	"math/rand"
	"sync"
)

// utf8Pool mixes characters of every UTF-8 width.
var utf8Pool = []string{
	"a", "b", "c", "A", "Z", "0", " ", "\x00",
	"é", "ß", "ñ", "Ж",
	"日", "本", "€",
	"😀", "𝄞",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// String returns n bytes drawn uniformly from alphabet.
func (r *RNG) String(alphabet string, n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return out
}

// UTF8 returns n characters of valid UTF-8 with mixed byte widths.
func (r *RNG) UTF8(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, 0, n*4)
	for range n {
		out = append(out, utf8Pool[r.rand.Intn(len(utf8Pool))]...)
	}
	return out
}

// Mutate returns a copy of s with edits random single-byte substitutions,
// insertions, deletions or adjacent swaps. s must be single-byte text.
func (r *RNG) Mutate(s []byte, edits int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]byte(nil), s...)
	for range edits {
		if len(out) == 0 {
			out = append(out, byte('a'+r.rand.Intn(26)))
			continue
		}
		i := r.rand.Intn(len(out))
		switch r.rand.Intn(4) {
		case 0:
			out[i] = byte('a' + r.rand.Intn(26))
		case 1:
			out = append(out[:i], append([]byte{byte('a' + r.rand.Intn(26))}, out[i:]...)...)
		case 2:
			out = append(out[:i], out[i+1:]...)
		default:
			if i+1 < len(out) {
				out[i], out[i+1] = out[i+1], out[i]
			}
		}
	}
	return out
}
