package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/texchess/pgn2latex/internal/config"
	"github.com/texchess/pgn2latex/internal/engine"
	"github.com/texchess/pgn2latex/internal/latex"
	"github.com/texchess/pgn2latex/internal/testutil"
)

const matchPGN = `[Event "Assessment Match"]
[White "TeX Chess Engine"]
[Black "Stockfish"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0

[Event "Assessment Match"]
[White "Stockfish"]
[Black "TeX Chess Engine"]
[Result "1-0"]

1. d4 d5 2. c4 e6 1-0
`

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

func TestRenderToWriterEndToEnd(t *testing.T) {
	var out strings.Builder
	err := renderToWriter(testConfig(), strings.NewReader(matchPGN), &out)
	testutil.AssertNoError(t, err)

	doc := out.String()
	testutil.AssertContains(t, doc, "\\begin{document}")
	testutil.AssertContains(t, doc, "\\end{document}")
	testutil.AssertContains(t, doc,
		"\\title{TeX Chess Engine vs Stockfish --- Elo Assessment}")
	testutil.AssertContains(t, doc, "Total games: & 2")
	testutil.AssertContains(t, doc, "TeX Chess Engine wins: & 1")
	testutil.AssertContains(t, doc, "Stockfish wins: & 1")

	// Scholar's mate final position.
	testutil.AssertContains(t, doc,
		"setfen=r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR")

	// Game 1 is an engine win with more than four plies, so its key
	// positions are rendered.
	testutil.AssertContains(t, doc, "Key positions:")
}

func TestRenderToWriterKeyPositionsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.KeyPositions = false

	var out strings.Builder
	err := renderToWriter(cfg, strings.NewReader(matchPGN), &out)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, !strings.Contains(out.String(), "Key positions:"))
}

func TestRenderToWriterParallelMatchesSerial(t *testing.T) {
	var serial, parallel strings.Builder

	cfg := testConfig()
	testutil.AssertNoError(t,
		renderToWriter(cfg, strings.NewReader(matchPGN), &serial))

	cfg = testConfig()
	cfg.Workers = 4
	testutil.AssertNoError(t,
		renderToWriter(cfg, strings.NewReader(matchPGN), &parallel))

	testutil.AssertEqual(t, parallel.String(), serial.String())
}

func TestWriteDiagrams(t *testing.T) {
	dir := t.TempDir()
	sections := []latex.Section{
		{Number: 1, Replay: &engine.Result{FinalPlacement: engine.InitialPlacement}},
		{Number: 2, Replay: &engine.Result{FinalPlacement: "8/8/8/8/8/8/8/4K3"}},
	}

	testutil.AssertNoError(t, writeDiagrams(dir, sections))

	for _, name := range []string{"game_001.svg", "game_002.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		testutil.AssertNoError(t, err)
		testutil.AssertContains(t, string(data), "<svg")
	}
}
