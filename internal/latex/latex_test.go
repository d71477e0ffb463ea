package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/engine"
	"github.com/texchess/pgn2latex/internal/report"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"50% score & $5", `50\% score \& \$5`},
		{"a_b#c{d}", `a\_b\#c\{d\}`},
		{"x~y^z", `x\textasciitilde{}y\textasciicircum{}z`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in), "input %q", tt.in)
	}
}

func TestMoveText(t *testing.T) {
	game := chess.NewGame()
	game.Moves = []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	game.SetTag("Result", "1-0")

	assert.Equal(t, "1.~e4 e5 2.~Nf3 Nc6 3.~Bb5 1-0", MoveText(game))
}

func TestMoveTextEmptyGame(t *testing.T) {
	assert.Equal(t, "*", MoveText(chess.NewGame()))
}

func TestMoveDescription(t *testing.T) {
	assert.Equal(t, "After 1.~e4", MoveDescription(1, "e4"))
	assert.Equal(t, "After 1\\ldots e5", MoveDescription(2, "e5"))
	assert.Equal(t, "After 3.~Bb5", MoveDescription(5, "Bb5"))
	assert.Equal(t, "After 3\\ldots a6", MoveDescription(6, "a6"))
}

func buildSections(t *testing.T, interval int, moves ...string) []Section {
	t.Helper()
	game := chess.NewGame()
	game.Moves = moves
	game.SetTag("White", "TeX Chess Engine")
	game.SetTag("Black", "Stockfish")
	game.SetTag("Result", "1-0")

	replay := (&engine.Replayer{Interval: interval, GameNum: 1}).Replay(game)
	return []Section{{Number: 1, Game: game, Replay: replay}}
}

func TestWriteDocument(t *testing.T) {
	sections := buildSections(t, 0, "e4", "e5", "Nf3", "Nc6", "Bb5")
	players := report.Players{Engine: "TeX Chess Engine", Opponent: "Stockfish"}
	stats := report.Stats{TotalGames: 1, EngineWins: 1}

	var sb strings.Builder
	dw := NewDocumentWriter(&sb)
	err := dw.WriteDocument(sections, players, stats, nil)
	assert.NoError(t, err)

	doc := sb.String()
	assert.Contains(t, doc, "\\documentclass[11pt]{article}")
	assert.Contains(t, doc, "\\usepackage{chessboard}")
	assert.Contains(t, doc, "\\title{TeX Chess Engine vs Stockfish --- Elo Assessment}")
	assert.Contains(t, doc, "Score for TeX Chess Engine: & 100.0\\%")
	assert.Contains(t, doc, "\\subsection*{Game 1: TeX Chess Engine vs Stockfish (1-0)}")
	assert.Contains(t, doc, "1.~e4 e5 2.~Nf3 Nc6 3.~Bb5 1-0")
	assert.Contains(t, doc,
		"\\setchessboard{setfen=r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R}")
	assert.Contains(t, doc, "\\end{document}")

	// No game was flagged interesting, so no key positions appear.
	assert.NotContains(t, doc, "Key positions:")
}

func TestWriteDocumentKeyPositions(t *testing.T) {
	sections := buildSections(t, 2, "e4", "e5", "Nf3", "Nc6", "Bb5", "a6")
	players := report.Players{Engine: "TeX Chess Engine", Opponent: "Stockfish"}
	stats := report.Stats{TotalGames: 1, EngineWins: 1}

	var sb strings.Builder
	err := NewDocumentWriter(&sb).WriteDocument(sections, players, stats,
		map[int]bool{0: true})
	assert.NoError(t, err)

	doc := sb.String()
	assert.Contains(t, doc, "Key positions:")
	assert.Contains(t, doc, "After 1\\ldots e5")
	assert.Contains(t, doc, "After 2\\ldots Nc6")
	// The final ply's checkpoint is covered by the final-position diagram.
	assert.NotContains(t, doc, "After 3\\ldots a6")
}

func TestDocumentWriterCapturesWriteError(t *testing.T) {
	dw := NewDocumentWriter(failingWriter{})
	err := dw.WriteDocument(nil, report.Players{}, report.Stats{}, nil)
	assert.Error(t, err)
	assert.Equal(t, err, dw.Err())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestKeyPositionStride(t *testing.T) {
	assert.Equal(t, 2, KeyPositionStride(0))
	assert.Equal(t, 2, KeyPositionStride(10))
	assert.Equal(t, 3, KeyPositionStride(20))
	assert.Equal(t, 10, KeyPositionStride(60))
}
