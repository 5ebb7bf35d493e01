package bitstream

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Writer appends bits to a growing packed buffer.
// The zero value is ready to use.
type Writer struct {
	buf []byte
	n   int
}

func (w *Writer) Len() int {
	return w.n
}

func (w *Writer) WriteBit(b bool) {
	if w.n%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b {
		w.buf[w.n/8] |= 0x80 >> (w.n % 8)
	}
	w.n++
}

// WriteUint writes the low n bits of v, most significant first.
// It fails if v does not fit in n bits.
func (w *Writer) WriteUint(v uint64, n int) error {
	if n < 0 || n > 64 {
		return ErrFormat{"bitstream: cannot write more than 64 bits from an integer"}
	}
	if n < 64 && v>>n != 0 {
		return ErrFormat{fmt.Sprintf("bitstream: value %d does not fit in %d bits", v, n)}
	}
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(v&(1<<i) != 0)
	}
	return nil
}

// Append copies all bits written to o.
func (w *Writer) Append(o *Writer) {
	v := o.View()
	for !v.IsEOF() {
		b, _ := v.ReadBit()
		w.WriteBit(b)
	}
}

// Bytes returns the packed buffer. Unused trailing bits are zero.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// View returns a parsing view over the bits written so far.
func (w *Writer) View() BitView {
	return NewBitView(w.buf, w.n)
}

// Hex renders the bits as upper-case hex, zero-padded to a whole
// number of bytes.
func (w *Writer) Hex() string {
	return strings.ToUpper(hex.EncodeToString(w.Bytes()))
}
