// pgn2latex converts PGN match output into a LaTeX document with board
// diagrams, replaying every game to reconstruct its positions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/texchess/pgn2latex/internal/config"
	"github.com/texchess/pgn2latex/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("pgn2latex version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := process(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "pgn2latex: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags transfers command-line flags onto the configuration, opening
// the output and log files.
func applyFlags(cfg *config.Config) {
	cfg.KeyPositions = *keyPositions
	cfg.SVGDir = *svgDir
	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		cfg.OutputFile = file
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	level := slog.LevelWarn
	if cfg.Verbosity >= 2 {
		level = slog.LevelDebug
	}
	cfg.Logger = logging.NewLogger(cfg.LogFile, level)
}
