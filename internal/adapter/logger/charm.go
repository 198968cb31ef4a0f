// Package logger constructs the process-wide leveled logger. It is built
// exactly once by the entry point and handed to every component as a
// value, never reached through package globals.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// New returns a logger writing colorized leveled lines to stderr under
// the given context label. Color is dropped when stderr is not a
// terminal or the NO_COLOR convention asks for plain output.
func New(prefix string, level log.Level) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: prefix,
		Level:  level,
	})
	if !isatty.IsTerminal(os.Stderr.Fd()) || termenv.EnvNoColor() {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// LevelFromVerbosity maps the legacy -verbose operand onto log levels:
// 0 is errors only, 1-3 warnings, 4-5 informational, 6 and up debug.
func LevelFromVerbosity(v int) log.Level {
	switch {
	case v <= 0:
		return log.ErrorLevel
	case v <= 3:
		return log.WarnLevel
	case v <= 5:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}
