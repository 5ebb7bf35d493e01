package tools

import (
	"fmt"
	"os"

	"github.com/advent-bits/aocd/std/bitstream"
	"github.com/advent-bits/aocd/std/log"
	"github.com/advent-bits/aocd/y2021/day16"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// PacketTool inspects and builds BITS transmissions.
type PacketTool struct {
	format string
	mode   string
}

func (pt *PacketTool) String() string {
	return "packet"
}

// CmdPacket returns the packet debugging command group.
func CmdPacket() *cobra.Command {
	pt := PacketTool{}

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "packet",
		Short:   "Inspect BITS packet transmissions",
	}

	decode := &cobra.Command{
		Use:     "decode HEX",
		Short:   "Print the packet tree of a transmission",
		Args:    cobra.ExactArgs(1),
		Example: `  aocd packet decode 38006F45291200 --format yaml`,
		RunE:    pt.decode,
	}
	decode.Flags().StringVarP(&pt.format, "format", "f", "text", "output format: text | yaml")

	eval := &cobra.Command{
		Use:     "eval HEX",
		Short:   "Print the version sum and value of a transmission",
		Args:    cobra.ExactArgs(1),
		Example: `  aocd packet eval 9C0141080250320F1802104A08`,
		RunE:    pt.eval,
	}

	encode := &cobra.Command{
		Use:   "encode FILE",
		Short: "Encode a YAML packet tree as hex",
		Long: `Encode a packet tree, in the format printed by "packet decode --format yaml",
as a hex transmission.`,
		Args:    cobra.ExactArgs(1),
		Example: `  aocd packet encode tree.yml --mode count`,
		RunE:    pt.encode,
	}
	encode.Flags().StringVarP(&pt.mode, "mode", "m", "bits", "sub-packet framing: bits | count")

	cmd.AddCommand(decode, eval, encode)
	return cmd
}

func (pt *PacketTool) decode(cmd *cobra.Command, args []string) error {
	r, err := bitstream.FromHex(args[0])
	if err != nil {
		return fmt.Errorf("unable to parse input: %w", err)
	}
	p, err := day16.ParsePacket(&r)
	if err != nil {
		return fmt.Errorf("unable to parse packet: %w", err)
	}
	log.Debug(pt, "Decoded transmission", "bits", r.Length(), "padding", r.Remaining())

	out := cmd.OutOrStdout()
	switch pt.format {
	case "text":
		if _, err := fmt.Fprintln(out, p); err != nil {
			return err
		}
	case "yaml":
		b, err := yaml.Marshal(toDoc(p))
		if err != nil {
			return err
		}
		if _, err := out.Write(b); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format %q (supported: text, yaml)", pt.format)
	}
	return nil
}

func (pt *PacketTool) eval(cmd *cobra.Command, args []string) error {
	p, err := day16.Parse(args[0])
	if err != nil {
		return err
	}
	v, err := day16.Evaluate(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version_sum=%d\nvalue=%d\n", day16.VersionSum(p), v)
	return nil
}

func (pt *PacketTool) encode(cmd *cobra.Command, args []string) error {
	mode, err := day16.ParseLengthMode(pt.mode)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc := packetDoc{}
	if err := yaml.UnmarshalWithOptions(b, &doc, yaml.Strict()); err != nil {
		return fmt.Errorf("unable to parse packet tree: %w", err)
	}
	p, err := fromDoc(doc)
	if err != nil {
		return err
	}

	hex, err := day16.Encode(p, mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex)
	return nil
}
