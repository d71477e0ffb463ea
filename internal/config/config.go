// Package config holds the runtime configuration of the pgn2latex tool.
package config

import (
	"io"
	"log/slog"
	"os"
)

// Config holds all program configuration and shared state for one run.
type Config struct {
	// OutputFile receives the LaTeX document.
	OutputFile io.Writer

	// LogFile receives operator diagnostics (unresolvable moves, progress).
	LogFile io.Writer

	// Logger is the structured logger built over LogFile.
	Logger *slog.Logger

	// Verbosity: 0 = nothing, 1 = game count, 2 = running commentary.
	Verbosity int

	// KeyPositions enables intermediate diagrams for interesting games.
	KeyPositions bool

	// SVGDir, when non-empty, receives one SVG diagram of each game's final
	// position.
	SVGDir string

	// Workers is the number of games replayed concurrently.
	Workers int
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
		Verbosity:    1,
		KeyPositions: true,
		Workers:      1,
	}
}
