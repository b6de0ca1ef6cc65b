package jarowinkler

import (
	"errors"
	"fmt"

	"github.com/hupe1980/jarowinkler/internal/codepoint"
)

var (
	// ErrInvalidEncoding is returned when an input ends in the middle of a
	// multi-byte character.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrAllocation is returned when the character buffer for an input
	// cannot be allocated.
	ErrAllocation = errors.New("allocation failed")
)

// ErrTruncatedCharacter indicates which input was cut short, and where.
//
// It matches ErrInvalidEncoding with errors.Is.
type ErrTruncatedCharacter struct {
	Arg    string // "s1" or "s2"
	Offset int    // byte offset of the lead byte
	Lead   byte
	Want   int // bytes announced by the lead byte
	Have   int // bytes left in the input
	cause  error
}

func (e *ErrTruncatedCharacter) Error() string {
	return fmt.Sprintf("%s: invalid encoding: lead byte 0x%02x at offset %d needs %d bytes, %d remain",
		e.Arg, e.Lead, e.Offset, e.Want, e.Have)
}

func (e *ErrTruncatedCharacter) Is(target error) bool { return target == ErrInvalidEncoding }

func (e *ErrTruncatedCharacter) Unwrap() error { return e.cause }

func translateError(arg string, err error) error {
	if err == nil {
		return nil
	}

	var te *codepoint.ErrTruncatedAt
	if errors.As(err, &te) {
		return &ErrTruncatedCharacter{
			Arg:    arg,
			Offset: te.Offset,
			Lead:   te.Lead,
			Want:   te.Want,
			Have:   te.Have,
			cause:  err,
		}
	}
	if errors.Is(err, codepoint.ErrTooLarge) {
		return fmt.Errorf("%s: %w: %w", arg, ErrAllocation, err)
	}

	return fmt.Errorf("%s: %w", arg, err)
}
