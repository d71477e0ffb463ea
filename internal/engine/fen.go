package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/errs"
)

// InitialPlacement is the FEN piece-placement field of the starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece:
// uppercase for white, lowercase for black.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// PiecePlacement serializes the board's piece placement as the first field of
// a FEN string: ranks 8 down to 1 joined by '/', runs of empty squares
// written as decimal digits. It is a pure function of the board.
func PiecePlacement(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(file, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// BoardFromFEN creates a board from a FEN string. Only the piece placement
// field is required; side to move and en passant target are honoured when
// present, the remaining fields are ignored.
func BoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errs.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()
	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			board.ToMove = chess.White
		case "b":
			board.ToMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move %q: %w", parts[1], errs.ErrInvalidFEN)
		}
	}

	// parts[2] is castling availability; replay infers castling from the
	// move stream, so it carries no state here.
	if len(parts) >= 4 && parts[3] != "-" {
		if sq, ok := chess.ParseSquare(parts[3]); ok {
			board.EPFile = sq.File
		}
	}

	return board, nil
}

// parsePlacement fills the board from the piece placement field.
func parsePlacement(board *chess.Board, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := chess.PieceFromLetter(byte(unicode.ToUpper(c)))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errs.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("placement out of bounds: %w", errs.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(file, rank), chess.MakeColouredPiece(colour, piece))
			file++
		}
	}

	return nil
}

// NewBoardForGame creates the starting board for a game, honouring a FEN tag
// when present and valid. It falls back to the standard initial position.
func NewBoardForGame(game *chess.Game) *chess.Board {
	if fen := game.GetTag("FEN"); fen != "" {
		if board, err := BoardFromFEN(fen); err == nil {
			return board
		}
	}
	return chess.NewBoard()
}
