package day16

import (
	"fmt"

	"github.com/advent-bits/aocd/std/bitstream"
)

const (
	headerBits      = 6
	literalGroup    = 5
	totalLengthBits = 15
	countBits       = 11
)

// Parse decodes the outermost packet of a hex transmission.
// Bits left after the packet are padding and are ignored.
func Parse(input string) (Packet, error) {
	r, err := bitstream.FromHex(input)
	if err != nil {
		return Packet{}, fmt.Errorf("unable to parse input: %w", err)
	}
	p, err := ParsePacket(&r)
	if err != nil {
		return Packet{}, fmt.Errorf("unable to parse packet: %w", err)
	}
	return p, nil
}

// ParsePacket reads one packet, including all of its sub-packets, and
// moves r past it. On error r is left where it was.
func ParsePacket(r *bitstream.BitView) (Packet, error) {
	if r.Remaining() < headerBits {
		return Packet{}, ErrShortPacket
	}
	saved := *r

	version, _ := r.ReadUint(3)
	typ, _ := r.ReadUint(3)
	p := Packet{Version: uint8(version), TypeID: TypeID(typ)}

	if p.TypeID == TypeLiteral {
		value, err := DecodeLiteral(r)
		if err != nil {
			*r = saved
			return Packet{}, err
		}
		p.Body = Literal{Value: value}
		return p, nil
	}

	children, err := decodeOperator(r)
	if err != nil {
		*r = saved
		return Packet{}, err
	}
	p.Body = Operator{Children: children}
	return p, nil
}

// DecodeLiteral reads 5-bit groups up to and including the first group
// whose leading bit is clear, and joins their low 4 bits.
// Leading zero bits do not count towards the 64-bit limit.
func DecodeLiteral(r *bitstream.BitView) (uint64, error) {
	value := make([]bool, 0, 64)
	for {
		if r.Remaining() < literalGroup {
			return 0, fmt.Errorf("%w: literal group", ErrTruncated)
		}
		cont, _ := r.ReadBit()
		nibble, _ := r.ReadBits(literalGroup - 1)
		for _, b := range nibble {
			if b || len(value) > 0 {
				value = append(value, b)
			}
		}
		if len(value) > 64 {
			return 0, ErrLiteralOverflow
		}
		if !cont {
			return bitstream.DecodeUnsigned[uint64](value), nil
		}
	}
}

func decodeOperator(r *bitstream.BitView) ([]Packet, error) {
	lengthType, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("%w: length type", ErrTruncated)
	}

	if !lengthType {
		length, err := r.ReadUint(totalLengthBits)
		if err != nil {
			return nil, fmt.Errorf("%w: total length", ErrTruncated)
		}
		// the caller resumes after the declared window, however much of it
		// the sub-packets actually use
		window, err := r.Delegate(int(length))
		if err != nil {
			return nil, fmt.Errorf("%w: %d bit sub-packet window", ErrTruncated, length)
		}
		return decodeSequence(&window, -1), nil
	}

	count, err := r.ReadUint(countBits)
	if err != nil {
		return nil, fmt.Errorf("%w: sub-packet count", ErrTruncated)
	}
	// a count of 0 means no sub-packets, not "read until failure"
	return decodeSequence(r, int(count)), nil
}

// decodeSequence reads packets until limit is reached (no limit if
// negative) or the next packet fails to parse.
func decodeSequence(r *bitstream.BitView, limit int) []Packet {
	packets := make([]Packet, 0, max(limit, 0))
	for limit < 0 || len(packets) < limit {
		p, err := ParsePacket(r)
		if err != nil {
			break
		}
		packets = append(packets, p)
	}
	return packets
}
