package latex

import (
	"fmt"
	"io"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/engine"
	"github.com/texchess/pgn2latex/internal/report"
)

// Section pairs one game with its replay outcome, ready for rendering.
type Section struct {
	Number int // 1-based game number
	Game   *chess.Game
	Replay *engine.Result
}

// DocumentWriter emits a complete LaTeX report to an io.Writer. Write errors
// are captured and returned once from Err, so callers can chain section
// writes without checking each one.
type DocumentWriter struct {
	w   io.Writer
	err error
}

// NewDocumentWriter creates a document writer targeting w.
func NewDocumentWriter(w io.Writer) *DocumentWriter {
	return &DocumentWriter{w: w}
}

// Err returns the first write error encountered, if any.
func (dw *DocumentWriter) Err() error {
	return dw.err
}

func (dw *DocumentWriter) printf(format string, args ...interface{}) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

// WriteDocument renders the full report: preamble, summary table, and one
// section per game with its final-position diagram. Games flagged in
// interesting additionally get key-position diagrams for their intermediate
// checkpoints.
func (dw *DocumentWriter) WriteDocument(sections []Section, players report.Players,
	stats report.Stats, interesting map[int]bool) error {

	dw.writePreamble(players)
	dw.writeSummary(players, stats)

	for i, section := range sections {
		dw.writeGame(section, interesting[i])
		if i < len(sections)-1 {
			dw.printf("\\hrule\n\\bigskip\n\n")
		}
	}

	dw.printf("\\end{document}\n")
	return dw.err
}

// writePreamble writes the document class, packages, board styles, and title.
func (dw *DocumentWriter) writePreamble(players report.Players) {
	dw.printf("\\documentclass[11pt]{article}\n")
	dw.printf("\\usepackage[utf8]{inputenc}\n")
	dw.printf("\\usepackage{chessboard}\n")
	dw.printf("\\usepackage{geometry}\n")
	dw.printf("\\usepackage{parskip}\n")
	dw.printf("\\geometry{margin=1in}\n")
	dw.printf("\\storechessboardstyle{small}" +
		"{maxfield=h8,fieldmaxwidth=0.6cm,labelleft=false,labelbottom=false}\n")
	dw.printf("\n\\begin{document}\n")
	dw.printf("\\title{%s vs %s --- Elo Assessment}\n",
		Escape(players.Engine), Escape(players.Opponent))
	dw.printf("\\date{\\today}\n")
	dw.printf("\\maketitle\n\n")
}

// writeSummary writes the win/loss/draw table.
func (dw *DocumentWriter) writeSummary(players report.Players, stats report.Stats) {
	dw.printf("\\section*{Summary}\n")
	dw.printf("\\begin{tabular}{ll}\n")
	dw.printf("Total games: & %d \\\\\n", stats.TotalGames)
	dw.printf("%s wins: & %d \\\\\n", Escape(players.Engine), stats.EngineWins)
	dw.printf("%s wins: & %d \\\\\n", Escape(players.Opponent), stats.OpponentWin)
	dw.printf("Draws: & %d \\\\\n", stats.Draws)
	if stats.TotalGames > 0 {
		dw.printf("Score for %s: & %.1f\\%% \\\\\n",
			Escape(players.Engine), stats.Score()*100)
	}
	dw.printf("\\end{tabular}\n\n\\bigskip\n\n")
}

// writeGame writes one game section: heading, movetext, the final-position
// diagram, and optionally the intermediate key positions.
func (dw *DocumentWriter) writeGame(section Section, keyPositions bool) {
	game := section.Game

	dw.printf("\\subsection*{Game %d: %s vs %s (%s)}\n",
		section.Number, Escape(game.White()), Escape(game.Black()), game.Result())
	dw.printf("\\noindent %s\n\n", MoveText(game))

	dw.printf("\\medskip\n")
	dw.printf("\\noindent Final position:\\\\\n")
	dw.printf("\\setchessboard{setfen=%s}\n", section.Replay.FinalPlacement)
	dw.printf("\\chessboard[maxfield=h8,fieldmaxwidth=0.8cm]\n\n")

	if keyPositions && game.PlyCount() > 4 {
		dw.writeKeyPositions(section)
	}
}

// writeKeyPositions writes the intermediate checkpoints of an interesting
// game as small diagrams. The final-ply checkpoint is skipped because the
// final position already has its own diagram.
func (dw *DocumentWriter) writeKeyPositions(section Section) {
	total := section.Game.PlyCount()

	wroteHeader := false
	for _, cp := range section.Replay.Checkpoints {
		if cp.Ply >= total {
			continue
		}
		if !wroteHeader {
			dw.printf("\\medskip\n")
			dw.printf("\\noindent Key positions:\\\\\n")
			wroteHeader = true
		}
		dw.printf("\\noindent %s\\\\\n", MoveDescription(cp.Ply, cp.MoveText))
		dw.printf("\\setchessboard{setfen=%s}\n", cp.Placement)
		dw.printf("\\chessboard[style=small]\n")
		dw.printf("\\medskip\n\n")
	}
}

// KeyPositionStride derives the checkpoint interval for a game of the given
// ply count: roughly six snapshots per game, never more often than every
// other ply.
func KeyPositionStride(plyCount int) int {
	stride := plyCount / 6
	if stride < 2 {
		stride = 2
	}
	return stride
}
