package day16

import (
	"fmt"

	"github.com/advent-bits/aocd/std/bitstream"
)

// LengthMode selects how an operator frames its sub-packets when encoded.
type LengthMode int

const (
	// LengthBits writes the total bit length of the sub-packets.
	LengthBits LengthMode = iota
	// LengthCount writes the number of sub-packets.
	LengthCount
)

func ParseLengthMode(s string) (LengthMode, error) {
	switch s {
	case "bits":
		return LengthBits, nil
	case "count":
		return LengthCount, nil
	}
	return LengthBits, fmt.Errorf("invalid length mode %q (supported: bits, count)", s)
}

func (m LengthMode) String() string {
	if m == LengthCount {
		return "count"
	}
	return "bits"
}

// Encode serializes a packet tree to a hex transmission.
func Encode(p Packet, mode LengthMode) (string, error) {
	w := bitstream.Writer{}
	if err := EncodePacket(&w, p, mode); err != nil {
		return "", err
	}
	return w.Hex(), nil
}

// EncodePacket appends p to w. Literals use as few groups as possible.
func EncodePacket(w *bitstream.Writer, p Packet, mode LengthMode) error {
	if p.Version > 7 {
		return fmt.Errorf("version %d does not fit in 3 bits", p.Version)
	}
	if p.TypeID > 7 {
		return ErrInvalidTypeID{TypeID: p.TypeID}
	}
	w.WriteUint(uint64(p.Version), 3)
	w.WriteUint(uint64(p.TypeID), 3)

	switch body := p.Body.(type) {
	case Literal:
		if p.TypeID != TypeLiteral {
			return fmt.Errorf("%s packet cannot carry a literal", p.TypeID)
		}
		encodeLiteral(w, body.Value)
		return nil
	case Operator:
		if p.TypeID == TypeLiteral {
			return fmt.Errorf("literal packet cannot carry sub-packets")
		}
		return encodeOperator(w, body.Children, mode)
	default:
		return fmt.Errorf("%s packet has no body", p.TypeID)
	}
}

func encodeLiteral(w *bitstream.Writer, value uint64) {
	groups := 1
	for v := value >> 4; v != 0; v >>= 4 {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		w.WriteBit(i > 0)
		w.WriteUint((value>>(4*i))&0xf, 4)
	}
}

func encodeOperator(w *bitstream.Writer, children []Packet, mode LengthMode) error {
	sub := bitstream.Writer{}
	for _, c := range children {
		if err := EncodePacket(&sub, c, mode); err != nil {
			return err
		}
	}

	switch mode {
	case LengthCount:
		if len(children) >= 1<<countBits {
			return fmt.Errorf("%d sub-packets do not fit in an %d bit count", len(children), countBits)
		}
		w.WriteBit(true)
		w.WriteUint(uint64(len(children)), countBits)
	default:
		if sub.Len() >= 1<<totalLengthBits {
			return fmt.Errorf("%d bits of sub-packets do not fit in a %d bit length", sub.Len(), totalLengthBits)
		}
		w.WriteBit(false)
		w.WriteUint(uint64(sub.Len()), totalLengthBits)
	}
	w.Append(&sub)
	return nil
}
