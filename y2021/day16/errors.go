package day16

import "fmt"

var ErrShortPacket = fmt.Errorf("fewer than 6 bits left for a packet header")

var ErrTruncated = fmt.Errorf("transmission ends inside a packet field")

var ErrLiteralOverflow = fmt.Errorf("literal value does not fit in 64 bits")

var ErrOverflow = fmt.Errorf("value does not fit in 64 bits")

type ErrInvalidTypeID struct {
	TypeID TypeID
}

func (e ErrInvalidTypeID) Error() string {
	return fmt.Sprintf("invalid type ID %d", uint8(e.TypeID))
}

// ErrNoSubpackets is returned when min or max has nothing to compare.
type ErrNoSubpackets struct {
	Op string
}

func (e ErrNoSubpackets) Error() string {
	return "no subpackets for " + e.Op
}

type ErrArity struct {
	TypeID TypeID
	Want   int
	Got    int
}

func (e ErrArity) Error() string {
	return fmt.Sprintf("%s packet needs %d subpackets, got %d", e.TypeID, e.Want, e.Got)
}
