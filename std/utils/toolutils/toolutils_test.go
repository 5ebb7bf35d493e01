package toolutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/advent-bits/aocd/std/utils/toolutils"
	"github.com/stretchr/testify/require"
)

func TestStatusPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	p := toolutils.StatusPrinter{File: buf, Padding: 6}
	p.Print("part1", 42)
	p.Print("longer_key", "x")
	require.Equal(t, " part1=42\nlonger_key=x\n", buf.String())
}

func TestReadYaml(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "c.yml")
	require.NoError(t, os.WriteFile(file, []byte("name: day16\ncount: 3\n"), 0644))

	dest := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{}
	require.NoError(t, toolutils.ReadYaml(&dest, file))
	require.Equal(t, "day16", dest.Name)
	require.Equal(t, 3, dest.Count)

	require.NoError(t, os.WriteFile(file, []byte("name: day16\nextra: 1\n"), 0644))
	require.Error(t, toolutils.ReadYaml(&dest, file))
	require.Error(t, toolutils.ReadYaml(&dest, filepath.Join(dir, "missing.yml")))
}
