package engine

import (
	"github.com/texchess/pgn2latex/internal/chess"
)

// canReach checks whether a piece of the given type and colour standing on
// from can geometrically reach to on the current board. Path obstruction is
// considered for sliding pieces; check safety is not.
func canReach(board *chess.Board, pieceType chess.Piece, colour chess.Colour,
	from, to chess.Square) bool {

	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)

	switch pieceType {
	case chess.Pawn:
		return pawnCanReach(board, colour, from, to)

	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1 && fileDiff+rankDiff > 0

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return pathClear(board, from, to)

	case chess.Bishop:
		if fileDiff != rankDiff || fileDiff == 0 {
			return false
		}
		return pathClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff || fileDiff == 0 || rankDiff == 0 {
			return pathClear(board, from, to)
		}
		return false
	}

	return false
}

// pawnCanReach handles the pawn's asymmetric moves: single push into an empty
// square, double push from the starting rank across two empty squares, and
// one-square diagonal captures onto an enemy piece or the en passant target.
func pawnCanReach(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	direction := chess.ColourOffset(colour)
	fileDiff := to.File - from.File
	rankDiff := to.Rank - from.Rank

	if fileDiff == 0 {
		if rankDiff == direction && board.IsEmpty(to) {
			return true
		}
		startRank := 1
		if colour == chess.Black {
			startRank = 6
		}
		if rankDiff == 2*direction && from.Rank == startRank {
			middle := chess.Sq(from.File, from.Rank+direction)
			return board.IsEmpty(middle) && board.IsEmpty(to)
		}
		return false
	}

	if abs(fileDiff) == 1 && rankDiff == direction {
		target := board.Get(to)
		if target != chess.Empty {
			return chess.ExtractColour(target) != colour
		}
		// En passant: the enemy pawn just double-pushed through this square.
		if to.File == board.EPFile {
			epRank := 5
			if colour == chess.Black {
				epRank = 2
			}
			return to.Rank == epRank
		}
	}

	return false
}

// pathClear checks that every square strictly between from and to is empty.
// The endpoints are not examined.
func pathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	steps := max(abs(to.File-from.File), abs(to.Rank-from.Rank))
	for i := 1; i < steps; i++ {
		if !board.IsEmpty(chess.Sq(from.File+i*fileDir, from.Rank+i*rankDir)) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
