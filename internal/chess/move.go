package chess

// Move describes one resolved board transition. It is produced by the
// notation resolver, consumed once by the move executor, and not retained.
type Move struct {
	// The original move text (e.g. "Nf3", "e7e8q", "O-O").
	Text string

	// Class of move (normal, double push, en passant, castle, promotion).
	Class MoveClass

	// Source and destination squares. For castling moves these describe the
	// king's relocation; the rook's follows from the class.
	From Square
	To   Square

	// The coloured piece being moved.
	PieceToMove Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// captures the removed pawn does not stand on To; see the executor.
	CapturedPiece Piece

	// The piece type promoted to (Empty if not a promotion).
	PromotedPiece Piece
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}
