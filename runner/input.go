package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash"
)

// Input is the text a puzzle is solved against.
type Input struct {
	Text string
	// Source names where the text came from.
	Source string
}

// Digest fingerprints the input text so runs can be compared in logs.
func (i Input) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64([]byte(i.Text)))
}

type InputOptions struct {
	// File replaces the input with the contents of a file.
	File string
	// Data replaces the input with a literal string.
	Data string
	// Dir holds per-year input files, named like 2021/day16.txt.
	// A file found there takes precedence over the embedded input.
	Dir string
}

// ResolveInput picks the input for p.
func ResolveInput(p Puzzle, opts InputOptions) (Input, error) {
	switch {
	case opts.File != "" && opts.Data != "":
		return Input{}, fmt.Errorf("input file and input data are mutually exclusive")
	case opts.Data != "":
		return Input{Text: opts.Data, Source: "data"}, nil
	case opts.File != "":
		b, err := os.ReadFile(opts.File)
		if err != nil {
			return Input{}, fmt.Errorf("unable to read input: %w", err)
		}
		return Input{Text: string(b), Source: opts.File}, nil
	}

	if opts.Dir != "" {
		path := InputPath(opts.Dir, p.Year, p.Day)
		b, err := os.ReadFile(path)
		if err == nil {
			return Input{Text: string(b), Source: path}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Input{}, fmt.Errorf("unable to read input: %w", err)
		}
	}

	if p.Input == "" {
		return Input{}, fmt.Errorf("%s: no input available", p)
	}
	return Input{Text: p.Input, Source: "embedded"}, nil
}

// InputPath returns where a puzzle's input lives under dir.
func InputPath(dir string, year, day int) string {
	return filepath.Join(dir, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}
