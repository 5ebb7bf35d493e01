package day16

import (
	"math/bits"
	"slices"
)

// VersionSum adds up the version of every packet in the tree.
func VersionSum(p Packet) uint64 {
	sum := uint64(p.Version)
	for _, c := range p.Children() {
		sum += VersionSum(c)
	}
	return sum
}

// Evaluate computes the value of the expression rooted at p.
func Evaluate(p Packet) (uint64, error) {
	switch body := p.Body.(type) {
	case Literal:
		return body.Value, nil
	case Operator:
		values := make([]uint64, 0, len(body.Children))
		for _, c := range body.Children {
			v, err := Evaluate(c)
			if err != nil {
				return 0, err
			}
			values = append(values, v)
		}
		return apply(p.TypeID, values)
	default:
		return 0, ErrInvalidTypeID{TypeID: p.TypeID}
	}
}

func apply(typ TypeID, values []uint64) (uint64, error) {
	switch typ {
	case TypeSum:
		sum := uint64(0)
		for _, v := range values {
			var carry uint64
			sum, carry = bits.Add64(sum, v, 0)
			if carry != 0 {
				return 0, ErrOverflow
			}
		}
		return sum, nil
	case TypeProduct:
		prod := uint64(1)
		for _, v := range values {
			var hi uint64
			hi, prod = bits.Mul64(prod, v)
			if hi != 0 {
				return 0, ErrOverflow
			}
		}
		return prod, nil
	case TypeMin:
		if len(values) == 0 {
			return 0, ErrNoSubpackets{Op: "minimum"}
		}
		return slices.Min(values), nil
	case TypeMax:
		if len(values) == 0 {
			return 0, ErrNoSubpackets{Op: "maximum"}
		}
		return slices.Max(values), nil
	case TypeGreater, TypeLess, TypeEqual:
		if len(values) != 2 {
			return 0, ErrArity{TypeID: typ, Want: 2, Got: len(values)}
		}
		var ok bool
		switch typ {
		case TypeGreater:
			ok = values[0] > values[1]
		case TypeLess:
			ok = values[0] < values[1]
		default:
			ok = values[0] == values[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, ErrInvalidTypeID{TypeID: typ}
	}
}
