// Package logger configures structured event logging for the shell.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Init builds the session logger. Events go to w (normally stderr) through
// a console writer; debug raises the level so pipeline launches and job
// lifecycle events become visible.
func Init(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "jshell").Logger().Level(level)
}
