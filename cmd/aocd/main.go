package main

import (
	"github.com/advent-bits/aocd/cmd"
	"github.com/advent-bits/aocd/core"
)

func main() {
	if err := cmd.CmdAocd().Execute(); err != nil {
		core.Log.Fatal(nil, err.Error())
	}
}
