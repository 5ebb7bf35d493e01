package day16

import (
	"fmt"
	"strings"
)

// TypeID selects how a packet's body is interpreted.
type TypeID uint8

const (
	TypeSum     TypeID = 0
	TypeProduct TypeID = 1
	TypeMin     TypeID = 2
	TypeMax     TypeID = 3
	TypeLiteral TypeID = 4
	TypeGreater TypeID = 5
	TypeLess    TypeID = 6
	TypeEqual   TypeID = 7
)

func (t TypeID) String() string {
	switch t {
	case TypeSum:
		return "sum"
	case TypeProduct:
		return "product"
	case TypeMin:
		return "min"
	case TypeMax:
		return "max"
	case TypeLiteral:
		return "literal"
	case TypeGreater:
		return "gt"
	case TypeLess:
		return "lt"
	case TypeEqual:
		return "eq"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Packet is one node of a decoded transmission.
type Packet struct {
	Version uint8
	TypeID  TypeID
	Body    Body
}

// Body is either a Literal or an Operator.
type Body interface {
	isBody()
}

// Literal is the body of a type 4 packet.
type Literal struct {
	Value uint64
}

// Operator is the body of every other packet type.
type Operator struct {
	Children []Packet
}

func (Literal) isBody()  {}
func (Operator) isBody() {}

// NewLiteral returns a literal packet.
func NewLiteral(version uint8, value uint64) Packet {
	return Packet{Version: version, TypeID: TypeLiteral, Body: Literal{Value: value}}
}

// NewOperator returns an operator packet over children.
func NewOperator(version uint8, typ TypeID, children ...Packet) Packet {
	return Packet{Version: version, TypeID: typ, Body: Operator{Children: children}}
}

// Children returns the sub-packets of an operator, or nil for a literal.
func (p Packet) Children() []Packet {
	if op, ok := p.Body.(Operator); ok {
		return op.Children
	}
	return nil
}

// String renders the packet tree, one packet per line.
func (p Packet) String() string {
	sb := strings.Builder{}
	p.write(&sb, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (p Packet) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch body := p.Body.(type) {
	case Literal:
		fmt.Fprintf(sb, "v%d literal %d\n", p.Version, body.Value)
	case Operator:
		fmt.Fprintf(sb, "v%d %s(%d) [%d]\n", p.Version, p.TypeID, uint8(p.TypeID), len(body.Children))
		for _, c := range body.Children {
			c.write(sb, depth+1)
		}
	default:
		fmt.Fprintf(sb, "v%d %s <empty>\n", p.Version, p.TypeID)
	}
}
