// Package engine implements the position replay core: SAN and coordinate
// notation resolution, move execution, and FEN serialization.
package engine

import (
	"fmt"
	"strings"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/errs"
)

// noDisambiguation marks an absent disambiguation filter.
const noDisambiguation = -1

// ResolveSAN resolves one SAN token against the current board into a concrete
// Move. It performs no board mutation; applying the move is the executor's
// job. Resolution picks the first candidate found scanning rank 1 to 8 and
// file a to h; uniqueness of legitimately ambiguous notation is not proven.
//
// A token for which no piece satisfies the type, disambiguation, and
// reachability constraints yields an error wrapping errs.ErrUnresolvableMove.
func ResolveSAN(board *chess.Board, token string) (*chess.Move, error) {
	san := strings.TrimRight(token, "+#")
	colour := board.ToMove

	switch san {
	case "O-O", "0-0":
		return castlingMove(token, colour, true), nil
	case "O-O-O", "0-0-0":
		return castlingMove(token, colour, false), nil
	}

	promoted := chess.Empty
	if idx := strings.IndexByte(san, '='); idx >= 0 && idx+1 < len(san) {
		promoted = chess.PieceFromLetter(san[idx+1])
		san = san[:idx]
	}

	if len(san) < 2 {
		return nil, resolutionError(token)
	}
	to, ok := chess.ParseSquare(san[len(san)-2:])
	if !ok {
		return nil, resolutionError(token)
	}
	prefix := strings.ReplaceAll(san[:len(san)-2], "x", "")

	pieceType, disambigFile, disambigRank, ok := parsePrefix(prefix)
	if !ok {
		return nil, resolutionError(token)
	}

	from, ok := findSource(board, pieceType, colour, to, disambigFile, disambigRank)
	if !ok {
		return nil, resolutionError(token)
	}

	move := &chess.Move{
		Text:          token,
		Class:         chess.NormalMove,
		From:          from,
		To:            to,
		PieceToMove:   chess.MakeColouredPiece(colour, pieceType),
		CapturedPiece: board.Get(to),
		PromotedPiece: promoted,
	}
	classifyPawnMove(board, move, pieceType)

	if promoted != chess.Empty {
		move.Class = chess.Promotion
	}
	return move, nil
}

// castlingMove builds a castle move without scanning the board: the king
// relocates from the e-file to the g-file (kingside) or c-file (queenside)
// on the side-to-move's home rank.
func castlingMove(token string, colour chess.Colour, kingside bool) *chess.Move {
	homeRank := 0
	if colour == chess.Black {
		homeRank = 7
	}
	class := chess.KingsideCastle
	toFile := 6
	if !kingside {
		class = chess.QueensideCastle
		toFile = 2
	}
	return &chess.Move{
		Text:        token,
		Class:       class,
		From:        chess.Sq(4, homeRank),
		To:          chess.Sq(toFile, homeRank),
		PieceToMove: chess.MakeColouredPiece(colour, chess.King),
	}
}

// parsePrefix determines piece type and disambiguation filters from whatever
// precedes the destination square. An uppercase letter names a non-pawn piece
// type; an empty or single-lowercase-letter prefix is a pawn move, where the
// letter is a capturing pawn's origin file.
func parsePrefix(prefix string) (pieceType chess.Piece, disambigFile, disambigRank int, ok bool) {
	disambigFile = noDisambiguation
	disambigRank = noDisambiguation

	if prefix == "" {
		return chess.Pawn, disambigFile, disambigRank, true
	}

	if piece := chess.PieceFromLetter(prefix[0]); piece != chess.Empty && piece != chess.Pawn {
		rest := prefix[1:]
		switch {
		case len(rest) >= 2 && chess.IsFileChar(rest[0]) && chess.IsRankChar(rest[1]):
			disambigFile = int(rest[0] - 'a')
			disambigRank = int(rest[1] - '1')
		case len(rest) == 1 && chess.IsFileChar(rest[0]):
			disambigFile = int(rest[0] - 'a')
		case len(rest) == 1 && chess.IsRankChar(rest[0]):
			disambigRank = int(rest[0] - '1')
		case len(rest) != 0:
			return chess.Empty, 0, 0, false
		}
		return piece, disambigFile, disambigRank, true
	}

	if len(prefix) == 1 && chess.IsFileChar(prefix[0]) {
		disambigFile = int(prefix[0] - 'a')
		return chess.Pawn, disambigFile, disambigRank, true
	}

	return chess.Empty, 0, 0, false
}

// findSource scans all 64 squares in fixed order (rank 1 to 8, file a to h
// within each rank) for a piece of the given colour and type whose geometric
// reach includes the destination. The first match wins.
func findSource(board *chess.Board, pieceType chess.Piece, colour chess.Colour,
	to chess.Square, disambigFile, disambigRank int) (chess.Square, bool) {

	want := chess.MakeColouredPiece(colour, pieceType)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if board.At(file, rank) != want {
				continue
			}
			if disambigFile != noDisambiguation && file != disambigFile {
				continue
			}
			if disambigRank != noDisambiguation && rank != disambigRank {
				continue
			}
			from := chess.Sq(file, rank)
			if canReach(board, pieceType, colour, from, to) {
				return from, true
			}
		}
	}
	return chess.Square{}, false
}

// classifyPawnMove upgrades a resolved pawn move to a double push or an en
// passant capture based on the geometry of its source and destination.
func classifyPawnMove(board *chess.Board, move *chess.Move, pieceType chess.Piece) {
	if pieceType != chess.Pawn {
		return
	}
	if move.From.File != move.To.File && board.IsEmpty(move.To) {
		move.Class = chess.EnPassantCapture
		move.CapturedPiece = board.At(move.To.File, move.From.Rank)
		return
	}
	if abs(move.To.Rank-move.From.Rank) == 2 {
		move.Class = chess.DoublePawnPush
	}
}

func resolutionError(token string) error {
	return fmt.Errorf("%q: %w", token, errs.ErrUnresolvableMove)
}
