package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/advent-bits/aocd/core"
	"github.com/advent-bits/aocd/std/log"
	tu "github.com/advent-bits/aocd/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	file := filepath.Join(t.TempDir(), "aocd.yml")
	require.NoError(t, os.WriteFile(file, []byte(body), 0644))
	return file
}

func TestDefaultConfig(t *testing.T) {
	tu.SetT(t)

	c := core.DefaultConfig()
	require.Equal(t, "INFO", c.Core.LogLevel)
	require.Equal(t, "text", c.Core.LogFormat)
	require.True(t, c.Runner.Timing)
	require.Empty(t, c.Runner.InputDir)
}

func TestLoadConfig(t *testing.T) {
	tu.SetT(t)

	file := writeConfig(t, `
core:
  log_level: DEBUG
runner:
  input_dir: inputs
  timing: false
`)
	c := tu.NoErr(core.LoadConfig(file))
	require.Equal(t, "DEBUG", c.Core.LogLevel)
	require.Equal(t, "text", c.Core.LogFormat)
	require.False(t, c.Runner.Timing)
	require.Equal(t, filepath.Dir(file), c.Core.BaseDir)
	require.Equal(t, filepath.Join(filepath.Dir(file), "inputs"), c.ResolveRelPath(c.Runner.InputDir))
	require.Equal(t, "/abs/inputs", c.ResolveRelPath("/abs/inputs"))
	require.Empty(t, c.ResolveRelPath(""))
}

func TestLoadConfigErrors(t *testing.T) {
	tu.SetT(t)

	tu.Err(core.LoadConfig(filepath.Join(t.TempDir(), "missing.yml")))
	tu.Err(core.LoadConfig(writeConfig(t, "core:\n  log_colour: red\n")))
	tu.Err(core.LoadConfig(writeConfig(t, "runner: [1, 2\n")))
}

func TestOpenLogger(t *testing.T) {
	tu.SetT(t)

	prevC, prevLog := core.C, log.Default()
	defer func() {
		core.C = prevC
		core.Log = prevLog
		log.SetDefault(prevLog)
	}()

	dir := t.TempDir()
	core.C = core.DefaultConfig()
	core.C.Core.BaseDir = dir
	core.C.Core.LogFile = "aocd.log"
	core.C.Core.LogLevel = "warn"
	core.C.Core.LogFormat = "json"
	require.NoError(t, core.OpenLogger())
	require.Equal(t, log.LevelWarn, core.Log.Level())

	core.Log.Info(nil, "hidden")
	core.Log.Warn(nil, "shown")
	core.CloseLogger()

	b := tu.NoErr(os.ReadFile(filepath.Join(dir, "aocd.log")))
	require.NotContains(t, string(b), "hidden")
	require.Contains(t, string(b), `"msg":"shown"`)

	core.C = core.DefaultConfig()
	core.C.Core.LogLevel = "chatty"
	require.Error(t, core.OpenLogger())

	core.C = core.DefaultConfig()
	core.C.Core.LogFormat = "xml"
	require.Error(t, core.OpenLogger())
}
