// processor.go - Game loading, replay, and report generation
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/config"
	"github.com/texchess/pgn2latex/internal/diagram"
	"github.com/texchess/pgn2latex/internal/engine"
	"github.com/texchess/pgn2latex/internal/latex"
	"github.com/texchess/pgn2latex/internal/parser"
	"github.com/texchess/pgn2latex/internal/report"
	"github.com/texchess/pgn2latex/internal/worker"
)

// process parses the input games, replays them, and writes the LaTeX report.
func process(cfg *config.Config, paths []string) error {
	games, err := loadGames(paths)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stderr, "No games found.")
		return nil
	}
	if cfg.Verbosity >= 1 {
		fmt.Fprintf(os.Stderr, "Parsed %d games\n", len(games))
	}

	players := report.IdentifyPlayers(games)
	stats := report.ComputeStats(games, players)
	interesting := report.FindInteresting(games, players)

	sections := replayGames(cfg, games, interesting)

	dw := latex.NewDocumentWriter(cfg.OutputFile)
	if err := dw.WriteDocument(sections, players, stats, interesting); err != nil {
		return err
	}

	if cfg.SVGDir != "" {
		if err := writeDiagrams(cfg.SVGDir, sections); err != nil {
			return err
		}
	}
	return nil
}

// loadGames parses all input files, or stdin when none are given.
func loadGames(paths []string) ([]*chess.Game, error) {
	if len(paths) == 0 {
		return parser.NewParser(os.Stdin).ParseAllGames()
	}

	var games []*chess.Game
	for _, path := range paths {
		fileGames, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		games = append(games, fileGames...)
	}
	return games, nil
}

func parseFile(path string) ([]*chess.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.NewParser(f).ParseAllGames()
}

// replayGames reconstructs every game's positions, in parallel when
// configured. Interesting games get intermediate checkpoints at the stride
// the key-position diagrams need.
func replayGames(cfg *config.Config, games []*chess.Game, interesting map[int]bool) []latex.Section {
	replayOne := func(item worker.WorkItem) worker.ReplayOutcome {
		interval := 0
		if cfg.KeyPositions && interesting[item.Index] {
			interval = latex.KeyPositionStride(item.Game.PlyCount())
		}
		replayer := &engine.Replayer{
			Interval: interval,
			Logger:   cfg.Logger,
			GameNum:  item.Index + 1,
		}
		return worker.ReplayOutcome{
			Game:   item.Game,
			Index:  item.Index,
			Replay: replayer.Replay(item.Game),
		}
	}

	outcomes := worker.ReplayAll(games, cfg.Workers, replayOne)

	sections := make([]latex.Section, len(outcomes))
	for i, outcome := range outcomes {
		sections[i] = latex.Section{
			Number: outcome.Index + 1,
			Game:   outcome.Game,
			Replay: outcome.Replay,
		}
		if cfg.Verbosity >= 2 {
			fmt.Fprintf(os.Stderr, "Game %d: %d plies, %d unresolved\n",
				outcome.Index+1, outcome.Game.PlyCount(), len(outcome.Replay.Failures))
		}
	}
	return sections
}

// writeDiagrams writes one SVG of each game's final position.
func writeDiagrams(dir string, sections []latex.Section) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, section := range sections {
		path := filepath.Join(dir, fmt.Sprintf("game_%03d.svg", section.Number))
		if err := writeDiagram(path, section.Replay.FinalPlacement); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagram(path, placement string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.Render(f, placement, diagram.DefaultSquareSize); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderToWriter is a test seam: it runs the full pipeline against in-memory
// readers and writers instead of files.
func renderToWriter(cfg *config.Config, input io.Reader, output io.Writer) error {
	games, err := parser.NewParser(input).ParseAllGames()
	if err != nil {
		return err
	}

	players := report.IdentifyPlayers(games)
	stats := report.ComputeStats(games, players)
	interesting := report.FindInteresting(games, players)
	sections := replayGames(cfg, games, interesting)

	return latex.NewDocumentWriter(output).WriteDocument(sections, players, stats, interesting)
}
