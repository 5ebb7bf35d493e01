package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "day16" }

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{
		"TRACE":   LevelTrace,
		"debug":   LevelDebug,
		" Info ":  LevelInfo,
		"warning": LevelWarn,
		"ERROR":   LevelError,
		"fatal":   LevelFatal,
	} {
		level, err := ParseLevel(s)
		require.NoError(t, err, s)
		require.Equal(t, want, level, s)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "UNKNOWN", Level(3).String())
}

func TestLoggerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewText(buf)
	require.Equal(t, LevelInfo, l.Level())

	l.Debug(nil, "hidden")
	require.Empty(t, buf.String())

	l.Info(testTag{}, "Starting day", "day", 16)
	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "tag=day16")
	require.Contains(t, out, `msg="Starting day"`)
	require.Contains(t, out, "day=16")

	prev := l.SetLevel(LevelError)
	require.Equal(t, LevelInfo, prev)
	buf.Reset()
	l.Warn("runner", "dropped")
	require.Empty(t, buf.String())
	l.Error("runner", "kept")
	require.Contains(t, buf.String(), "tag=runner")
}

func TestLoggerJson(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJson(buf)
	l.Warn(nil, "slow part", "ms", 12)
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.Contains(t, buf.String(), `"ms":12`)
}

func TestLoggerFatalExits(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewText(buf)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(nil, "giving up")
	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "level=FATAL")
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	buf := &bytes.Buffer{}
	SetDefault(NewText(buf))
	Info(nil, "hello")
	require.Contains(t, buf.String(), "msg=hello")
}
