package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger writes human-readable records to w. The level has already been
// validated by config.validate.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "sdkmodel").Logger()
}
