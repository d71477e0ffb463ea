// Package chess provides the core board, piece, and move types shared by the
// notation resolver, move executor, and output layers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns the pawn advance direction: +1 for White, -1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece type. The zero value is an empty square.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the uppercase SAN letter of a piece type.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase SAN letter to a piece type.
// It returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'P':
		return Pawn
	default:
		return Empty
	}
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// MoveClass categorizes the special handling a move needs when executed.
type MoveClass int

const (
	NormalMove MoveClass = iota
	DoublePawnPush
	EnPassantCapture
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the string representation of a move class.
func (mc MoveClass) String() string {
	names := []string{"Normal", "DoublePawnPush", "EnPassantCapture",
		"KingsideCastle", "QueensideCastle", "Promotion"}
	if int(mc) < len(names) {
		return names[mc]
	}
	return "Unknown"
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square identifies a board square by zero-based file and rank indices.
// File 0 is the a-file; rank 0 is rank "1".
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a square from indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts an algebraic square name ("e4") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsFileChar(s[0]) || !IsRankChar(s[1]) {
		return Square{}, false
	}
	return Sq(int(s[0]-'a'), int(s[1]-'1')), true
}

// IsFileChar reports whether c names a file ('a'-'h').
func IsFileChar(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// IsRankChar reports whether c names a rank ('1'-'8').
func IsRankChar(c byte) bool {
	return c >= '1' && c <= '8'
}
