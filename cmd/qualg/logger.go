// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger. Unknown levels fall back to info. Only
// the returned logger is configured; zerolog's globals are left alone.
func newLogger(cfg LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
