// Package latex renders the match report as a LaTeX document using the
// chessboard package for position diagrams. FEN piece-placement strings from
// the replay core are embedded verbatim in \setchessboard directives; the
// downstream renderer performs no validation of its own.
package latex

import (
	"fmt"
	"strings"

	"github.com/texchess/pgn2latex/internal/chess"
)

// latexEscaper rewrites the characters that are special in LaTeX text mode.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape escapes special LaTeX characters in s.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}

// MoveText formats a game's move list as numbered LaTeX movetext ending with
// the game result, e.g. "1.~e4 e5 2.~Nf3 Nc6 1-0".
func MoveText(game *chess.Game) string {
	var sb strings.Builder
	for i, move := range game.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d.~%s ", i/2+1, Escape(move))
		} else {
			fmt.Fprintf(&sb, "%s ", Escape(move))
		}
	}
	sb.WriteString(game.Result())
	return sb.String()
}

// MoveDescription names the position reached after the given 1-based ply,
// e.g. "After 3.~Nf3" or "After 3\ldots Nc6".
func MoveDescription(ply int, move string) string {
	moveNum := (ply + 1) / 2
	if ply%2 == 1 {
		return fmt.Sprintf("After %d.~%s", moveNum, Escape(move))
	}
	return fmt.Sprintf("After %d\\ldots %s", moveNum, Escape(move))
}
