package cmd

import (
	"fmt"
	"strconv"

	"github.com/advent-bits/aocd/core"
	"github.com/advent-bits/aocd/runner"
	"github.com/advent-bits/aocd/std/utils"
	"github.com/advent-bits/aocd/tools"
	"github.com/advent-bits/aocd/y2021/day16"
	"github.com/spf13/cobra"
)

const banner = `
   __ _  ___   ___ __| |
  / _  |/ _ \ / __/ _  |
 | (_| | (_) | (_| (_| |
  \__,_|\___/ \___\__,_|

Advent of Code Solvers
`

// Puzzles lists every solved day.
var Puzzles = []runner.Puzzle{
	day16.Puzzle,
}

type rootFlags struct {
	config   string
	logLevel string
}

// CmdAocd builds the command tree.
func CmdAocd() *cobra.Command {
	flags := rootFlags{}

	root := &cobra.Command{
		Use:               "aocd",
		Short:             "Advent of Code solvers",
		Long:              banner[1:],
		Version:           utils.AocdVersion,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: flags.setup,
		PersistentPostRun: func(*cobra.Command, []string) { core.CloseLogger() },
	}

	cobra.EnableCommandSorting = false
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")

	root.AddGroup(&cobra.Group{ID: "solve", Title: "Puzzles"})
	root.AddCommand(cmdRun())
	root.AddCommand(cmdList())

	root.AddGroup(&cobra.Group{ID: "tools", Title: "Debug Tools"})
	root.AddCommand(tools.Cmds()...)

	return root
}

func (f *rootFlags) setup(*cobra.Command, []string) error {
	if f.config != "" {
		c, err := core.LoadConfig(f.config)
		if err != nil {
			return err
		}
		core.C = c
	}
	if f.logLevel != "" {
		core.C.Core.LogLevel = f.logLevel
	}
	return core.OpenLogger()
}

func registry() (*runner.Registry, error) {
	return runner.NewRegistry(Puzzles...)
}

func cmdList() *cobra.Command {
	return &cobra.Command{
		GroupID: "solve",
		Use:     "list",
		Short:   "List the solved puzzles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			for _, p := range reg.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d day %2d  %s\n", p.Year, p.Day, p.Title)
			}
			return nil
		},
	}
}

func parseYearDay(args []string) (year int, day int, err error) {
	if year, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("expected a year, got %q", args[0])
	}
	if day, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("expected a day number, got %q", args[1])
	}
	return year, day, nil
}
