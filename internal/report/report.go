// Package report aggregates statistics across the games of one match:
// which player is the TeX engine, the win/loss/draw tally, and which games
// deserve move-by-move diagrams.
package report

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/texchess/pgn2latex/internal/chess"
)

// Stats holds the aggregated results of a match from the engine's viewpoint.
type Stats struct {
	TotalGames  int
	EngineWins  int
	OpponentWin int
	Draws       int
}

// Score returns the engine's score fraction (wins plus half points for
// draws, over all games). It is 0 for an empty match.
func (s Stats) Score() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return (float64(s.EngineWins) + 0.5*float64(s.Draws)) / float64(s.TotalGames)
}

// Players identifies the two sides of the match by name.
type Players struct {
	Engine   string
	Opponent string
}

// IdentifyPlayers decides which player name is the TeX engine and which the
// opponent. A name containing "tex" wins the engine slot; "stockfish" or
// "sf" marks the opponent. When the heuristics fail, names are assigned in
// sorted order so the choice stays deterministic.
func IdentifyPlayers(games []*chess.Game) Players {
	nameSet := make(map[string]struct{})
	for _, g := range games {
		nameSet[g.White()] = struct{}{}
		nameSet[g.Black()] = struct{}{}
	}

	var engine, opponent string
	for name := range nameSet {
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "tex"):
			engine = name
		case strings.Contains(lower, "stockfish") || strings.Contains(lower, "sf"):
			opponent = name
		}
	}

	names := maps.Keys(nameSet)
	sort.Strings(names)

	if engine == "" && len(names) > 0 {
		engine = names[0]
	}
	if opponent == "" {
		for _, name := range names {
			if name != engine {
				opponent = name
				break
			}
		}
	}
	if opponent == "" {
		opponent = "Opponent"
	}

	return Players{Engine: engine, Opponent: opponent}
}

// ComputeStats tallies wins, losses, and draws from the engine's viewpoint.
func ComputeStats(games []*chess.Game, players Players) Stats {
	stats := Stats{TotalGames: len(games)}

	for _, g := range games {
		switch g.Result() {
		case "1-0":
			if g.White() == players.Engine {
				stats.EngineWins++
			} else {
				stats.OpponentWin++
			}
		case "0-1":
			if g.Black() == players.Engine {
				stats.EngineWins++
			} else {
				stats.OpponentWin++
			}
		case "1/2-1/2":
			stats.Draws++
		}
	}

	return stats
}

// FindInteresting selects the games worth move-by-move diagrams: every
// engine win, plus the shortest and the longest game of the match. The
// returned set holds zero-based game indices.
func FindInteresting(games []*chess.Game, players Players) map[int]bool {
	interesting := make(map[int]bool)
	if len(games) == 0 {
		return interesting
	}

	shortest, longest := 0, 0
	for i, g := range games {
		engineWon := (g.White() == players.Engine && g.Result() == "1-0") ||
			(g.Black() == players.Engine && g.Result() == "0-1")
		if engineWon {
			interesting[i] = true
		}

		if g.PlyCount() < games[shortest].PlyCount() {
			shortest = i
		}
		if g.PlyCount() > games[longest].PlyCount() {
			longest = i
		}
	}

	interesting[shortest] = true
	interesting[longest] = true
	return interesting
}
