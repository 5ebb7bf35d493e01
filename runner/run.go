package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/advent-bits/aocd/std/log"
	"github.com/advent-bits/aocd/std/utils/toolutils"
)

var ErrNotImplemented = fmt.Errorf("part not implemented")

// PartResult is the outcome of one part.
type PartResult struct {
	Answer  string
	Err     error
	Elapsed time.Duration
}

func (r PartResult) String() string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Answer
}

// Result is the outcome of both parts of a puzzle.
type Result struct {
	Puzzle  Puzzle
	Input   Input
	Part1   PartResult
	Part2   PartResult
	Elapsed time.Duration
}

// Err joins the errors of both parts.
func (r Result) Err() error {
	return errors.Join(r.Part1.Err, r.Part2.Err)
}

// Print writes the answers, and the timings if requested.
func (r Result) Print(w io.Writer, timing bool) {
	p := toolutils.StatusPrinter{File: w, Padding: 10}
	p.Print("puzzle", fmt.Sprintf("%d day %d (%s)", r.Puzzle.Year, r.Puzzle.Day, r.Puzzle.Title))
	p.Print("part1", r.Part1)
	p.Print("part2", r.Part2)
	if timing {
		p.Print("part1_time", r.Part1.Elapsed)
		p.Print("part2_time", r.Part2.Elapsed)
		p.Print("total_time", r.Elapsed)
	}
}

// Runner solves puzzles and logs progress.
type Runner struct {
	Log *log.Logger
}

func (rn *Runner) logger() *log.Logger {
	if rn.Log == nil {
		return log.Default()
	}
	return rn.Log
}

// Run solves part 1 then part 2 of p against in.
// A part that fails or panics is recorded in the result, never propagated.
func (rn *Runner) Run(p Puzzle, in Input) Result {
	l := rn.logger()
	l.Info(p, "Starting day", "input", in.Source, "digest", in.Digest())

	start := time.Now()
	res := Result{Puzzle: p, Input: in}
	res.Part1 = rn.runPart(p, 1, p.Part1, in.Text)
	res.Part2 = rn.runPart(p, 2, p.Part2, in.Text)
	res.Elapsed = time.Since(start)

	l.Info(p, "Time taken", "seconds", res.Elapsed.Seconds())
	return res
}

func (rn *Runner) runPart(p Puzzle, part int, solve Solver, input string) (res PartResult) {
	l := rn.logger()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = PartResult{Err: fmt.Errorf("part %d panicked: %v", part, r)}
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			l.Error(p, "Part failed", "part", part, "err", res.Err)
		} else {
			l.Info(p, "Part solved", "part", part, "ms", res.Elapsed.Milliseconds())
		}
	}()

	if solve == nil {
		return PartResult{Err: ErrNotImplemented}
	}
	answer, err := solve(input)
	return PartResult{Answer: answer, Err: err}
}
