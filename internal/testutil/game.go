package testutil

import (
	"strings"
	"testing"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/parser"
)

// ParseTestGames parses a PGN string and returns all games found, or nil if
// parsing fails. Use this where parse failure is an acceptable outcome.
func ParseTestGames(pgn string) []*chess.Game {
	p := parser.NewParser(strings.NewReader(pgn))
	games, err := p.ParseAllGames()
	if err != nil {
		return nil
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGame(t *testing.T, pgn string) *chess.Game {
	t.Helper()
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse test game:\n%s", pgn)
	}
	return games[0]
}

// GameFromMoves builds a game directly from SAN tokens, bypassing the parser.
func GameFromMoves(moves ...string) *chess.Game {
	game := chess.NewGame()
	game.Moves = moves
	return game
}
