package worker

import (
	"fmt"
	"testing"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/engine"
	"github.com/texchess/pgn2latex/internal/testutil"
)

func replayGame(item WorkItem) ReplayOutcome {
	replayer := &engine.Replayer{GameNum: item.Index + 1}
	return ReplayOutcome{
		Game:   item.Game,
		Index:  item.Index,
		Replay: replayer.Replay(item.Game),
	}
}

func openingGames(n int) []*chess.Game {
	lines := [][]string{
		{"e4", "e5", "Nf3"},
		{"d4", "d5", "c4"},
		{"c4", "e5", "Nc3"},
		{"Nf3", "d5", "g3"},
	}
	games := make([]*chess.Game, n)
	for i := range games {
		games[i] = testutil.GameFromMoves(lines[i%len(lines)]...)
		games[i].SetTag("Event", fmt.Sprintf("Game %d", i+1))
	}
	return games
}

func TestReplayAllPreservesOrder(t *testing.T) {
	games := openingGames(12)
	outcomes := ReplayAll(games, 4, replayGame)

	testutil.AssertEqual(t, len(outcomes), len(games))
	for i, outcome := range outcomes {
		testutil.AssertEqual(t, outcome.Index, i)
		testutil.AssertEqual(t, outcome.Game, games[i])
	}
}

func TestReplayAllMatchesSequentialReplay(t *testing.T) {
	games := openingGames(8)
	outcomes := ReplayAll(games, 3, replayGame)

	for i, game := range games {
		want := (&engine.Replayer{GameNum: i + 1}).Replay(game)
		testutil.AssertEqual(t, outcomes[i].Replay.FinalPlacement, want.FinalPlacement,
			"game %d", i+1)
	}
}

func TestReplayAllSingleWorker(t *testing.T) {
	games := openingGames(3)
	outcomes := ReplayAll(games, 1, replayGame)
	testutil.AssertEqual(t, len(outcomes), 3)
}

func TestReplayAllClampsWorkerCount(t *testing.T) {
	games := openingGames(2)
	outcomes := ReplayAll(games, 0, replayGame)
	testutil.AssertEqual(t, len(outcomes), 2)
}

func TestReplayAllEmpty(t *testing.T) {
	outcomes := ReplayAll(nil, 2, replayGame)
	testutil.AssertEqual(t, len(outcomes), 0)
}

func TestPoolManualLifecycle(t *testing.T) {
	pool := NewPool(2, replayGame)
	pool.Start()

	games := openingGames(4)
	go func() {
		for i, game := range games {
			pool.Submit(WorkItem{Game: game, Index: i})
		}
		pool.Close()
	}()

	seen := 0
	for range pool.Results() {
		seen++
	}
	testutil.AssertEqual(t, seen, 4)
}
