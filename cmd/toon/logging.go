package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds a structured JSON logger writing to stderr, keeping
// stdout free for document output piped to the next stage.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
