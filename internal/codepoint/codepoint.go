package codepoint

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MaxUnitBytes is the widest character the lead-byte table can announce.
const MaxUnitBytes = 6

// Unit is one lexical character: its raw bytes, little-endian, zero-padded.
type Unit uint64

// Sequence is the decoded form of one input.
type Sequence []Unit

// ByteLen returns the character length announced by a lead byte.
func ByteLen(lead byte) int {
	switch {
	case lead >= 252: // 1111110x
		return 6
	case lead >= 248: // 111110xx
		return 5
	case lead >= 240: // 11110xxx
		return 4
	case lead >= 224: // 1110xxxx
		return 3
	case lead >= 192: // 110xxxxx
		return 2
	default:
		return 1
	}
}

// Pack packs up to 8 bytes into a Unit.
func Pack(b []byte) Unit {
	var buf [8]byte
	copy(buf[:], b)
	return Unit(binary.LittleEndian.Uint64(buf[:]))
}

// Decode splits buf into units. It fails if the last character is cut short.
func Decode(buf []byte) (Sequence, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf) > math.MaxInt/8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(buf))
	}

	// Worst case is one unit per byte.
	seq := make(Sequence, 0, len(buf))
	for off := 0; off < len(buf); {
		n := ByteLen(buf[off])
		if rest := len(buf) - off; n > rest {
			return nil, &ErrTruncatedAt{Offset: off, Lead: buf[off], Want: n, Have: rest}
		}
		seq = append(seq, Pack(buf[off:off+n]))
		off += n
	}
	return seq, nil
}

// FoldASCII uppercases single-byte 'a'..'z' units in place.
// Multi-byte units are left alone.
func (s Sequence) FoldASCII() {
	for i, u := range s {
		if u >= 'a' && u <= 'z' {
			s[i] = u - 32
		}
	}
}

// Bytes returns the raw bytes of u.
func (u Unit) Bytes() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(u))
	return buf[:ByteLen(buf[0])]
}
