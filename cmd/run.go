package cmd

import (
	"github.com/advent-bits/aocd/core"
	"github.com/advent-bits/aocd/runner"
	"github.com/spf13/cobra"
)

type runFlags struct {
	input    runner.InputOptions
	noTiming bool
}

func cmdRun() *cobra.Command {
	flags := runFlags{}

	cmd := &cobra.Command{
		GroupID: "solve",
		Use:     "run YEAR DAY",
		Short:   "Solve both parts of a puzzle",
		Long: `Solve both parts of a puzzle and print the answers.
The embedded puzzle input is used unless another one is given.`,
		Args: cobra.ExactArgs(2),
		Example: `  aocd run 2021 16
  aocd run 2021 16 --data 9C0141080250320F1802104A08`,
		RunE: flags.run,
	}

	cmd.Flags().StringVarP(&flags.input.File, "input", "i", "", "read the puzzle input from a file")
	cmd.Flags().StringVarP(&flags.input.Data, "data", "d", "", "use the given text as puzzle input")
	cmd.Flags().BoolVar(&flags.noTiming, "no-timing", false, "do not print timings")
	return cmd
}

func (f *runFlags) run(cmd *cobra.Command, args []string) error {
	year, day, err := parseYearDay(args)
	if err != nil {
		return err
	}

	reg, err := registry()
	if err != nil {
		return err
	}
	p, err := reg.Lookup(year, day)
	if err != nil {
		return err
	}

	opts := f.input
	opts.Dir = core.C.ResolveRelPath(core.C.Runner.InputDir)
	in, err := runner.ResolveInput(p, opts)
	if err != nil {
		return err
	}

	rn := runner.Runner{Log: core.Log}
	res := rn.Run(p, in)
	res.Print(cmd.OutOrStdout(), core.C.Runner.Timing && !f.noTiming)
	return res.Err()
}
