package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = log.WarnLevel

// New returns a logger writing to w at the named level.
// An unrecognized level falls back to DefaultLevel with a warning.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "txreport",
		Level:  DefaultLevel,
	})

	name := strings.TrimSpace(level)
	if name == "" {
		return logger
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		logger.Warn("invalid log level, using default", "level", level, "default", DefaultLevel)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
