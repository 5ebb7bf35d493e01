package core

import (
	"fmt"
	"io"
	"os"

	"github.com/advent-bits/aocd/std/log"
)

var Log = log.Default()
var logFileObj *os.File

// OpenLogger initializes the logger from C.
func OpenLogger() error {
	level, err := log.ParseLevel(C.Core.LogLevel)
	if err != nil {
		return err
	}

	newLogger := log.NewText
	switch C.Core.LogFormat {
	case "", "text":
	case "json":
		newLogger = log.NewJson
	default:
		return fmt.Errorf("invalid log format %q", C.Core.LogFormat)
	}

	var w io.Writer = os.Stderr
	if C.Core.LogFile != "" {
		f, err := os.Create(C.ResolveRelPath(C.Core.LogFile))
		if err != nil {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		logFileObj = f
		w = f
	}

	Log = newLogger(w)
	Log.SetLevel(level)
	log.SetDefault(Log)
	return nil
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	if logFileObj != nil {
		logFileObj.Close()
		logFileObj = nil
	}
}
