package bitstream

import (
	"io"
	"strings"
)

// BitView is a parsing view over a packed bit buffer.
// Bits are stored most significant first within each byte.
type BitView struct {
	buf   []byte
	apos  int // absolute bit position from start of buffer
	start int // first allowed position (absolute)
	end   int // last allowed position (absolute)
}

// NewBitView creates a view over the first nbits bits of buf.
func NewBitView(buf []byte, nbits int) BitView {
	if nbits > len(buf)*8 {
		nbits = len(buf) * 8
	}
	return BitView{buf: buf, end: nbits}
}

// FromHex expands a hex string into a view of 4 bits per character.
// Surrounding whitespace is ignored; case does not matter.
func FromHex(s string) (BitView, error) {
	s = strings.TrimSpace(s)
	buf := make([]byte, (len(s)+1)/2)
	for i, c := range s {
		n, ok := hexNibble(c)
		if !ok {
			return BitView{}, ErrInvalidHex{Pos: i, Char: c}
		}
		if i%2 == 0 {
			buf[i/2] = n << 4
		} else {
			buf[i/2] |= n
		}
	}
	return NewBitView(buf, len(s)*4), nil
}

// FromBools packs a bool slice into a view.
func FromBools(bits []bool) BitView {
	w := Writer{}
	for _, b := range bits {
		w.WriteBit(b)
	}
	return w.View()
}

func (r *BitView) IsEOF() bool {
	return r.apos >= r.end
}

// Pos returns the current position relative to the start of the view.
func (r *BitView) Pos() int {
	return r.apos - r.start
}

func (r *BitView) Length() int {
	return r.end - r.start
}

// Remaining returns the number of unread bits.
func (r *BitView) Remaining() int {
	return r.end - r.apos
}

func (r *BitView) bit(pos int) bool {
	return r.buf[pos/8]&(0x80>>(pos%8)) != 0
}

func (r *BitView) ReadBit() (bool, error) {
	if r.IsEOF() {
		return false, r._eof()
	}
	b := r.bit(r.apos)
	r.apos++
	return b, nil
}

// ReadUint reads n bits as a big-endian unsigned integer.
// The cursor is not moved if the read fails.
func (r *BitView) ReadUint(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, ErrFormat{"bitstream: cannot read more than 64 bits into an integer"}
	}
	bits, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return DecodeUnsigned[uint64](bits), nil
}

// ReadBits reads the next n bits.
func (r *BitView) ReadBits(n int) ([]bool, error) {
	if n < 0 || n > r.Remaining() {
		return nil, r._overflow()
	}
	ret := make([]bool, n)
	for i := range ret {
		ret[i] = r.bit(r.apos + i)
	}
	r.apos += n
	return ret, nil
}

func (r *BitView) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return r._overflow()
	}
	r.apos += n
	return nil
}

// Delegate returns a new view of the next size bits and moves the
// cursor past them, whatever the caller later reads from the new view.
func (r *BitView) Delegate(size int) (BitView, error) {
	ret := *r
	if err := r.Skip(size); err != nil {
		return BitView{}, err
	}
	ret.start = ret.apos
	ret.end = r.apos
	return ret, nil
}

// String renders the unread bits as 0 and 1 characters.
func (r BitView) String() string {
	sb := strings.Builder{}
	sb.Grow(r.Remaining())
	for p := r.apos; p < r.end; p++ {
		if r.bit(p) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (r *BitView) _eof() error {
	return io.EOF
}

func (r *BitView) _overflow() error {
	return ErrBufferOverflow
}
