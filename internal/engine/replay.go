package engine

import (
	"log/slog"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/errs"
)

// Mode selects the notation front-end used to resolve move tokens.
type Mode int

const (
	// SANMode resolves tokens as Standard Algebraic Notation.
	SANMode Mode = iota
	// CoordinateMode decodes tokens as long coordinate notation ("e2e4").
	CoordinateMode
)

// Checkpoint is a position snapshot taken during a replay.
type Checkpoint struct {
	// Ply is the 1-based number of plies applied when the snapshot was taken.
	Ply int
	// MoveText is the token whose application produced the position.
	MoveText string
	// Placement is the FEN piece-placement field of the position.
	Placement string
}

// Result holds the outcome of replaying one game.
type Result struct {
	// Checkpoints in ply order. The position after the final ply is always
	// the last entry (when the game has any moves).
	Checkpoints []Checkpoint

	// FinalPlacement is the FEN piece-placement field after the last ply.
	FinalPlacement string

	// Failures collects the tokens that could not be resolved, wrapped with
	// game and ply context. A failed token is skipped but still consumes
	// its ply.
	Failures []error

	// Board is the final board state.
	Board *chess.Board
}

// Replayer applies a game's move list to a fresh board and captures position
// snapshots. Games are independent: each Replay call owns exactly one board
// and shares nothing with other calls.
type Replayer struct {
	// Mode selects SAN or coordinate tokens. Zero value is SANMode.
	Mode Mode

	// Interval asks for a snapshot every Interval plies; 0 means only the
	// final position is captured.
	Interval int

	// Logger receives one diagnostic per unresolvable token. May be nil.
	Logger *slog.Logger

	// GameNum is used for diagnostics and error context (1-based).
	GameNum int
}

// Replay replays all move tokens of a game and returns the captured
// positions. Resolution failures are not fatal: the token is skipped, the
// board is left unmutated for that ply, the side to move still flips to keep
// the ply count aligned, and a diagnostic is recorded.
func (r *Replayer) Replay(game *chess.Game) *Result {
	board := NewBoardForGame(game)
	result := &Result{Board: board}

	for i, token := range game.Moves {
		ply := i + 1

		move, err := r.resolve(board, token)
		if err != nil {
			gameErr := &errs.GameError{Err: err, GameNum: r.GameNum, PlyNum: ply, MoveText: token}
			result.Failures = append(result.Failures, gameErr)
			if r.Logger != nil {
				r.Logger.Warn("skipping unresolvable move",
					"game", r.GameNum, "ply", ply, "move", token)
			}
			SkipPly(board)
			continue
		}
		ApplyMove(board, move)

		last := i == len(game.Moves)-1
		if last || (r.Interval > 0 && ply%r.Interval == 0) {
			result.Checkpoints = append(result.Checkpoints, Checkpoint{
				Ply:       ply,
				MoveText:  token,
				Placement: PiecePlacement(board),
			})
		}
	}

	result.FinalPlacement = PiecePlacement(board)
	return result
}

func (r *Replayer) resolve(board *chess.Board, token string) (*chess.Move, error) {
	if r.Mode == CoordinateMode {
		return DecodeCoordinate(board, token), nil
	}
	return ResolveSAN(board, token)
}

// ReplayCoordinateMoves applies a coordinate move list to a fresh standard
// board and returns it. Used by the UCI bridge, whose move streams come from
// "position startpos moves ..." commands and are trusted.
func ReplayCoordinateMoves(moves []string) *chess.Board {
	board := chess.NewBoard()
	for _, token := range moves {
		ApplyMove(board, DecodeCoordinate(board, token))
	}
	return board
}
