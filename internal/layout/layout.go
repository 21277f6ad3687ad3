// Package layout maps between window pixels and board squares.
package layout

import (
	"image"

	"github.com/hailam/chessboard/internal/board"
)

// Geometry places the board in the window. Row 0 is drawn at the top.
type Geometry struct {
	TileSize int
	OriginX  int
	OriginY  int
}

// New creates a geometry with the given tile size and top-left corner.
func New(tileSize, originX, originY int) Geometry {
	return Geometry{TileSize: tileSize, OriginX: originX, OriginY: originY}
}

// Size returns the board's width and height in pixels.
func (g Geometry) Size() int {
	return g.TileSize * board.Size
}

// Bounds returns the board rectangle in window pixels.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(g.OriginX, g.OriginY, g.OriginX+g.Size(), g.OriginY+g.Size())
}

// SquareAt converts window coordinates to the square under them. The
// second result is false when the point is outside the 8x8 grid.
func (g Geometry) SquareAt(x, y int) (board.Square, bool) {
	if g.TileSize <= 0 {
		return board.Square{}, false
	}
	if !image.Pt(x, y).In(g.Bounds()) {
		return board.Square{}, false
	}
	col := (x - g.OriginX) / g.TileSize
	row := (y - g.OriginY) / g.TileSize
	return board.NewSquare(row, col), true
}

// SquareToScreen returns the top-left pixel of sq.
func (g Geometry) SquareToScreen(sq board.Square) (int, int) {
	return g.OriginX + sq.Col*g.TileSize, g.OriginY + sq.Row*g.TileSize
}

// Center returns the centre pixel of sq.
func (g Geometry) Center(sq board.Square) (int, int) {
	x, y := g.SquareToScreen(sq)
	return x + g.TileSize/2, y + g.TileSize/2
}
