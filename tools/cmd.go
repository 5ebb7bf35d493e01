package tools

import "github.com/spf13/cobra"

// Cmds returns the debugging tools, all in the "tools" group.
func Cmds() []*cobra.Command {
	return []*cobra.Command{
		CmdPacket(),
	}
}
