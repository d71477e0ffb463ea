package chess

// NoEnPassant is the EPFile value when no en passant capture is available.
const NoEnPassant = -1

// Board tracks the piece placement of one game together with the two pieces
// of ephemeral state the replay needs: whose turn it is, and which file (if
// any) allows an en passant capture on the next ply.
//
// The board does not enforce chess legality beyond geometry. It trusts its
// input to come from a legally played game and only reproduces placement.
type Board struct {
	// Squares[file][rank] holds coloured pieces; the zero value Empty is an
	// empty square. Rank index 0 is rank "1".
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// File of a pawn that just advanced two squares, or NoEnPassant.
	// Valid for exactly one ply.
	EPFile int
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{ToMove: White, EPFile: NoEnPassant}
	b.SetupInitialPosition()
	return b
}

// NewEmptyBoard creates a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	return &Board{ToMove: White, EPFile: NoEnPassant}
}

// SetupInitialPosition resets the board to the standard starting position.
func (b *Board) SetupInitialPosition() {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[file][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}

	b.ToMove = White
	b.EPFile = NoEnPassant
}

// Get returns the coloured piece on a square, or Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a coloured piece on a square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// At returns the coloured piece at file/rank indices, or Empty when the
// indices are off the board.
func (b *Board) At(file, rank int) Piece {
	return b.Get(Sq(file, rank))
}

// IsEmpty reports whether a square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
