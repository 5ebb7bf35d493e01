// Package day16 decodes BITS transmissions: hex-encoded trees of literal
// and operator packets (Advent of Code 2021, day 16).
package day16

import (
	_ "embed"
	"fmt"

	"github.com/advent-bits/aocd/runner"
)

//go:embed inputs/day16.txt
var input string

var Puzzle = runner.Puzzle{
	Year:  2021,
	Day:   16,
	Title: "Packet Decoder",
	Input: input,
	Part1: Part1,
	Part2: Part2,
}

// Part1 sums the versions of every packet in the transmission.
func Part1(input string) (string, error) {
	p, err := Parse(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Version sum is %d", VersionSum(p)), nil
}

// Part2 evaluates the expression encoded by the transmission.
func Part2(input string) (string, error) {
	p, err := Parse(input)
	if err != nil {
		return "", err
	}
	v, err := Evaluate(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Evaluated value is %d", v), nil
}
