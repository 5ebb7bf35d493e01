package runner

import (
	"fmt"
	"slices"
)

// Solver computes one part's answer from the puzzle input.
type Solver func(input string) (string, error)

// Puzzle describes one day's solution.
type Puzzle struct {
	Year  int
	Day   int
	Title string
	// Input is the embedded puzzle input.
	Input string
	Part1 Solver
	Part2 Solver
}

func (p Puzzle) String() string {
	return fmt.Sprintf("%d-day%02d", p.Year, p.Day)
}

type ErrUnknownPuzzle struct {
	Year int
	Day  int
}

func (e ErrUnknownPuzzle) Error() string {
	return fmt.Sprintf("unimplemented day %d of %d", e.Day, e.Year)
}

type puzzleKey struct {
	year int
	day  int
}

// Registry holds the puzzles known to the command line.
type Registry struct {
	puzzles map[puzzleKey]Puzzle
}

func NewRegistry(puzzles ...Puzzle) (*Registry, error) {
	r := &Registry{puzzles: make(map[puzzleKey]Puzzle)}
	for _, p := range puzzles {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a puzzle. Days run from 1 to 25 and years start in 2015.
func (r *Registry) Register(p Puzzle) error {
	if p.Year < 2015 {
		return fmt.Errorf("invalid year %d", p.Year)
	}
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("invalid day %d", p.Day)
	}
	if p.Part1 == nil {
		return fmt.Errorf("%s: part 1 is required", p)
	}
	key := puzzleKey{p.Year, p.Day}
	if _, ok := r.puzzles[key]; ok {
		return fmt.Errorf("%s: already registered", p)
	}
	r.puzzles[key] = p
	return nil
}

func (r *Registry) Lookup(year, day int) (Puzzle, error) {
	p, ok := r.puzzles[puzzleKey{year, day}]
	if !ok {
		return Puzzle{}, ErrUnknownPuzzle{Year: year, Day: day}
	}
	return p, nil
}

// Years returns the years with at least one puzzle, in order.
func (r *Registry) Years() []int {
	years := make([]int, 0)
	for k := range r.puzzles {
		if !slices.Contains(years, k.year) {
			years = append(years, k.year)
		}
	}
	slices.Sort(years)
	return years
}

// Days returns the registered days of a year, in order.
func (r *Registry) Days(year int) []int {
	days := make([]int, 0)
	for k := range r.puzzles {
		if k.year == year {
			days = append(days, k.day)
		}
	}
	slices.Sort(days)
	return days
}

// All returns every puzzle ordered by year and day.
func (r *Registry) All() []Puzzle {
	all := make([]Puzzle, 0, len(r.puzzles))
	for _, year := range r.Years() {
		for _, day := range r.Days(year) {
			all = append(all, r.puzzles[puzzleKey{year, day}])
		}
	}
	return all
}
