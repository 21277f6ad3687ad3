// Package board holds the 8x8 board model: squares, pieces and the grid
// of occupants. It knows nothing about move legality or the UI.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Square is a (row, column) coordinate on the board.
// Row 0 is Black's back rank (rank 8), column 0 is the a-file.
type Square struct {
	Row, Col int
}

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if both coordinates lie in [0,8).
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns the algebraic notation for the square (e.g., "e2").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '8'-sq.Row)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(7-rank, col), nil
}

// MustParseSquare is like ParseSquare but panics on bad input.
// Intended for tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares returns the 64 squares in row-major order.
func AllSquares() []Square {
	squares := make([]Square, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			squares = append(squares, NewSquare(row, col))
		}
	}
	return squares
}

// Less orders squares row-major.
func (sq Square) Less(o Square) bool {
	if sq.Row != o.Row {
		return sq.Row < o.Row
	}
	return sq.Col < o.Col
}
