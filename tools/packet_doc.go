package tools

import (
	"fmt"

	"github.com/advent-bits/aocd/y2021/day16"
)

// packetDoc is the YAML form of a packet tree.
type packetDoc struct {
	Version  uint8       `yaml:"version"`
	Type     uint8       `yaml:"type"`
	Op       string      `yaml:"op,omitempty"`
	Value    *uint64     `yaml:"value,omitempty"`
	Children []packetDoc `yaml:"children,omitempty"`
}

func toDoc(p day16.Packet) packetDoc {
	d := packetDoc{Version: p.Version, Type: uint8(p.TypeID)}
	switch body := p.Body.(type) {
	case day16.Literal:
		v := body.Value
		d.Value = &v
	case day16.Operator:
		d.Op = p.TypeID.String()
		for _, c := range body.Children {
			d.Children = append(d.Children, toDoc(c))
		}
	}
	return d
}

func fromDoc(d packetDoc) (day16.Packet, error) {
	typ := day16.TypeID(d.Type)
	if typ == day16.TypeLiteral {
		if d.Value == nil {
			return day16.Packet{}, fmt.Errorf("literal packet needs a value")
		}
		if len(d.Children) > 0 {
			return day16.Packet{}, fmt.Errorf("literal packet cannot have children")
		}
		return day16.NewLiteral(d.Version, *d.Value), nil
	}

	if d.Value != nil {
		return day16.Packet{}, fmt.Errorf("%s packet cannot have a value", typ)
	}
	children := make([]day16.Packet, 0, len(d.Children))
	for _, cd := range d.Children {
		c, err := fromDoc(cd)
		if err != nil {
			return day16.Packet{}, err
		}
		children = append(children, c)
	}
	return day16.NewOperator(d.Version, typ, children...), nil
}
