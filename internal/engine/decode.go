package engine

import (
	"strings"

	"github.com/texchess/pgn2latex/internal/chess"
)

// DecodeCoordinate decodes a long coordinate token (e.g. "e2e4", "e7e8q")
// into a Move. No board scan is performed: the moving piece is read directly
// from the source square, and the special kind is inferred structurally
// rather than from notation: a king displaced two files is a castle, a pawn
// capturing onto an empty square is an en passant capture, a trailing letter
// is a promotion.
//
// Decoding never fails; it trusts the squares literally. Feeding it tokens
// that do not match the board silently produces nonsense, so the caller must
// pick the notation mode that matches its input stream.
func DecodeCoordinate(board *chess.Board, token string) *chess.Move {
	move := &chess.Move{Text: token, Class: chess.NormalMove}
	if len(token) < 4 {
		return move
	}

	from, _ := chess.ParseSquare(token[:2])
	to, _ := chess.ParseSquare(token[2:4])
	move.From = from
	move.To = to
	move.PieceToMove = board.Get(from)
	move.CapturedPiece = board.Get(to)

	if len(token) > 4 {
		if promoted := chess.PieceFromLetter(strings.ToUpper(token[4:5])[0]); promoted != chess.Empty {
			move.Class = chess.Promotion
			move.PromotedPiece = promoted
			return move
		}
	}

	switch chess.ExtractPiece(move.PieceToMove) {
	case chess.King:
		if abs(to.File-from.File) == 2 {
			if to.File > from.File {
				move.Class = chess.KingsideCastle
			} else {
				move.Class = chess.QueensideCastle
			}
		}
	case chess.Pawn:
		classifyPawnMove(board, move, chess.Pawn)
	}

	return move
}
