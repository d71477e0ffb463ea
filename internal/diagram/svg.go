// Package diagram renders FEN piece-placement strings as SVG board images,
// an HTML-friendly companion to the LaTeX diagrams.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/texchess/pgn2latex/internal/chess"
	"github.com/texchess/pgn2latex/internal/engine"
)

// DefaultSquareSize is the rendered square edge in pixels.
const DefaultSquareSize = 48

const (
	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
)

// glyphs maps FEN piece letters to the Unicode chess figurines.
var glyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖",
	'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜",
	'b': "♝", 'n': "♞", 'p': "♟",
}

// Render draws the position described by a FEN piece-placement string as an
// SVG board, white's side at the bottom.
func Render(w io.Writer, placement string, squareSize int) error {
	board, err := engine.BoardFromFEN(placement)
	if err != nil {
		return err
	}
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}

	side := squareSize * chess.BoardSize
	canvas := svg.New(w)
	canvas.Start(side, side)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			x := file * squareSize
			y := (chess.BoardSize - 1 - rank) * squareSize

			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			piece := board.At(file, rank)
			if piece == chess.Empty {
				continue
			}
			glyph := glyphs[engine.ColouredPieceToSANLetter(piece)]
			canvas.Text(x+squareSize/2, y+squareSize*3/4, glyph,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*3/4))
		}
	}

	canvas.End()
	return nil
}
