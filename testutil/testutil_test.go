package testutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.String("ab", 32)

	assert.Len(t, s, 32)
	for _, c := range s {
		assert.Contains(t, []byte("ab"), c)
	}
}

func TestUTF8(t *testing.T) {
	rng := NewRNG(4711)

	for range 50 {
		s := rng.UTF8(16)
		assert.True(t, utf8.Valid(s))
		assert.Equal(t, 16, utf8.RuneCount(s))
	}
}

func TestMutate(t *testing.T) {
	rng := NewRNG(4711)
	s := []byte("jellyfish")

	m := rng.Mutate(s, 3)

	assert.Equal(t, []byte("jellyfish"), s, "input must not be modified")
	assert.InDelta(t, len(s), len(m), 3)
	assert.Len(t, rng.Mutate(nil, 1), 1)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UTF8(10)

	rng.Reset()
	v2 := rng.UTF8(10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
