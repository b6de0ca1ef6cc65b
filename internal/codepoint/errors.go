package codepoint

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when a lead byte announces more bytes than remain.
	ErrTruncated = errors.New("truncated character")

	// ErrTooLarge is returned when the unit buffer for an input cannot be sized.
	ErrTooLarge = errors.New("input too large")
)

// ErrTruncatedAt describes where a truncated character starts.
type ErrTruncatedAt struct {
	Offset int
	Lead   byte
	Want   int
	Have   int
}

func (e *ErrTruncatedAt) Error() string {
	return fmt.Sprintf("truncated character at offset %d: lead byte 0x%02x needs %d bytes, %d remain",
		e.Offset, e.Lead, e.Want, e.Have)
}

func (e *ErrTruncatedAt) Unwrap() error { return ErrTruncated }
