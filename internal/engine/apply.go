package engine

import (
	"github.com/texchess/pgn2latex/internal/chess"
)

// ApplyMove applies a resolved move to the board in place. The board's en
// passant file is cleared unless the move is a double pawn push, and the side
// to move flips. Legality of the move is not re-checked; the resolver (or a
// trusted coordinate stream) has already established it.
func ApplyMove(board *chess.Board, move *chess.Move) {
	colour := board.ToMove
	newEPFile := chess.NoEnPassant

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, move, colour)

	case chess.DoublePawnPush:
		relocate(board, move.From, move.To)
		newEPFile = move.To.File

	case chess.EnPassantCapture:
		relocate(board, move.From, move.To)
		// The captured pawn was jumped over: same rank as the source,
		// same file as the destination.
		board.Set(chess.Sq(move.To.File, move.From.Rank), chess.Empty)

	case chess.Promotion:
		relocate(board, move.From, move.To)
		board.Set(move.To, chess.MakeColouredPiece(colour, move.PromotedPiece))

	default:
		relocate(board, move.From, move.To)
	}

	board.EPFile = newEPFile
	board.ToMove = colour.Opposite()
}

// SkipPly flips the side to move without touching the placement. The replay
// driver calls it for tokens that failed to resolve, so the ply parity stays
// aligned with the original game.
func SkipPly(board *chess.Board) {
	board.ToMove = board.ToMove.Opposite()
}

// applyCastle relocates the king two files toward the rook and the rook to
// the square the king passed through.
func applyCastle(board *chess.Board, move *chess.Move, colour chess.Colour) {
	homeRank := 0
	if colour == chess.Black {
		homeRank = 7
	}

	rookFromFile, rookToFile := 7, 5
	if move.Class == chess.QueensideCastle {
		rookFromFile, rookToFile = 0, 3
	}

	relocate(board, move.From, move.To)
	relocate(board, chess.Sq(rookFromFile, homeRank), chess.Sq(rookToFile, homeRank))
}

// relocate moves whatever stands on from to to, overwriting the destination.
func relocate(board *chess.Board, from, to chess.Square) {
	board.Set(to, board.Get(from))
	board.Set(from, chess.Empty)
}
