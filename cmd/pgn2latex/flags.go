// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile   = flag.String("o", "", "output LaTeX file (default stdout)")
	logFile      = flag.String("l", "", "write diagnostics to this file (default stderr)")
	svgDir       = flag.String("svg-dir", "", "also write an SVG diagram of each final position into this directory")
	keyPositions = flag.Bool("key-positions", true, "show intermediate diagrams for interesting games")
	workers      = flag.Int("w", 1, "number of games to replay concurrently")
	verbosity    = flag.Int("v", 1, "verbosity: 0=silent, 1=summary, 2=per-game commentary")
	quiet        = flag.Bool("quiet", false, "suppress all progress output")
	version      = flag.Bool("version", false, "print version and exit")
	help         = flag.Bool("help", false, "print usage and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [pgn-file ...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Converts PGN games (cutechess-cli output) into a LaTeX document\n")
	fmt.Fprintf(os.Stderr, "with board diagrams. Reads stdin when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
