package bitstream

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

// ErrInvalidHex is returned when a transmission contains a non-hex character.
type ErrInvalidHex struct {
	Pos  int
	Char rune
}

func (e ErrInvalidHex) Error() string {
	return fmt.Sprintf("invalid hex character %q at position %d", e.Char, e.Pos)
}

var ErrBufferOverflow = fmt.Errorf("bit buffer overflow when parsing. One of the length fields is wrong")

// DecodeUnsigned interprets bits as a big-endian unsigned integer,
// most significant bit first. Bits beyond the width of T are shifted out.
func DecodeUnsigned[T constraints.Unsigned](bits []bool) T {
	var v T
	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

// hexNibble returns the 4-bit value of a hex digit.
func hexNibble(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	}
	return 0, false
}
