// Package logger builds the zerolog instance shared by every component. All
// packages receive it through their constructors instead of the global log.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. An unknown level string
// falls back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
