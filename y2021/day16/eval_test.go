package day16_test

import (
	"testing"

	tu "github.com/advent-bits/aocd/std/utils/testutils"
	"github.com/advent-bits/aocd/y2021/day16"
	"github.com/stretchr/testify/require"
)

func TestVersionSumSamples(t *testing.T) {
	tu.SetT(t)

	for in, want := range map[string]uint64{
		"D2FE28":                         6,
		"8A004A801A8002F478":             16,
		"620080001611562C8802118E34":     12,
		"C0015000016115A2E0802F182340":   23,
		"A0016C880162017C3686B18A3D4780": 31,
	} {
		p := tu.NoErr(day16.Parse(in))
		require.Equal(t, want, day16.VersionSum(p), in)
	}
}

func TestEvaluateSamples(t *testing.T) {
	tu.SetT(t)

	for in, want := range map[string]uint64{
		"C200B40A82":                 3,
		"04005AC33890":               54,
		"880086C3E88112":             7,
		"CE00C43D881120":             9,
		"D8005AC2A8F0":               1,
		"F600BC2D8F":                 0,
		"9C005AC2F8F0":               0,
		"9C0141080250320F1802104A08": 1,
	} {
		p := tu.NoErr(day16.Parse(in))
		require.Equal(t, want, tu.NoErr(day16.Evaluate(p)), in)
	}
}

func TestEvaluateOperators(t *testing.T) {
	tu.SetT(t)

	lit := func(v uint64) day16.Packet { return day16.NewLiteral(0, v) }
	for _, tc := range []struct {
		name string
		p    day16.Packet
		want uint64
	}{
		{"empty sum", day16.NewOperator(0, day16.TypeSum), 0},
		{"empty product", day16.NewOperator(0, day16.TypeProduct), 1},
		{"single min", day16.NewOperator(0, day16.TypeMin, lit(4)), 4},
		{"max", day16.NewOperator(0, day16.TypeMax, lit(4), lit(9), lit(2)), 9},
		{"gt ordered", day16.NewOperator(0, day16.TypeGreater, lit(9), lit(2)), 1},
		{"gt reversed", day16.NewOperator(0, day16.TypeGreater, lit(2), lit(9)), 0},
		{"lt", day16.NewOperator(0, day16.TypeLess, lit(2), lit(9)), 1},
		{"eq", day16.NewOperator(0, day16.TypeEqual, lit(7), lit(7)), 1},
		{"nested", day16.NewOperator(0, day16.TypeProduct,
			day16.NewOperator(0, day16.TypeSum, lit(1), lit(2)),
			day16.NewOperator(0, day16.TypeMin, lit(5), lit(4))), 12},
	} {
		require.Equal(t, tc.want, tu.NoErr(day16.Evaluate(tc.p)), tc.name)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tu.SetT(t)

	_, err := day16.Evaluate(day16.NewOperator(0, day16.TypeMin))
	require.EqualError(t, err, "no subpackets for minimum")

	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeMax))
	require.EqualError(t, err, "no subpackets for maximum")

	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeLiteral))
	require.EqualError(t, err, "invalid type ID 4")

	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeID(9)))
	require.ErrorAs(t, err, &day16.ErrInvalidTypeID{})

	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeEqual, day16.NewLiteral(0, 1)))
	require.ErrorAs(t, err, &day16.ErrArity{})

	// errors in a child stop evaluation of the parent
	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeSum,
		day16.NewLiteral(0, 1), day16.NewOperator(0, day16.TypeMin)))
	require.EqualError(t, err, "no subpackets for minimum")
}

func TestEvaluateOverflow(t *testing.T) {
	tu.SetT(t)

	_, err := day16.Evaluate(day16.NewOperator(0, day16.TypeSum,
		day16.NewLiteral(0, ^uint64(0)), day16.NewLiteral(0, 1)))
	require.ErrorIs(t, err, day16.ErrOverflow)

	_, err = day16.Evaluate(day16.NewOperator(0, day16.TypeProduct,
		day16.NewLiteral(0, 1<<32), day16.NewLiteral(0, 1<<32)))
	require.ErrorIs(t, err, day16.ErrOverflow)

	v := tu.NoErr(day16.Evaluate(day16.NewOperator(0, day16.TypeProduct,
		day16.NewLiteral(0, 1<<31), day16.NewLiteral(0, 1<<32))))
	require.Equal(t, uint64(1<<63), v)
}
