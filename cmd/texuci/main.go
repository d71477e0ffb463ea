// texuci bridges cutechess-cli (UCI protocol) to the pdfLaTeX chess engine.
// Each "go" command compiles the engine document under a time budget and
// reports the move it produced.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/texchess/pgn2latex/internal/logging"
	"github.com/texchess/pgn2latex/internal/uci"
)

func main() {
	engineDir := flag.String("engine-dir", "", "directory holding chess-uci.tex (default: executable's directory)")
	budget := flag.Duration("budget", uci.DefaultBudget, "time budget for one pdflatex run")
	logFile := flag.String("l", "", "write diagnostics to this file")
	debug := flag.Bool("debug", false, "log every generated position")
	flag.Parse()

	dir := *engineDir
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "texuci: %v\n", err)
			os.Exit(1)
		}
		dir = filepath.Dir(exe)
	}

	var logger *slog.Logger
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "texuci: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		level := slog.LevelWarn
		if *debug {
			level = slog.LevelDebug
		}
		logger = logging.NewLogger(f, level)
	}

	gen := uci.NewTeXGenerator(dir)
	gen.Budget = *budget

	session := uci.NewSession(os.Stdin, os.Stdout, gen, logger)
	if err := session.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "texuci: %v\n", err)
		os.Exit(1)
	}
}
