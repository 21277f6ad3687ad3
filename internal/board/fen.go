package board

import (
	"errors"
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece-placement field of the starting layout.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ErrInvalidPlacement is returned for malformed placement strings.
var ErrInvalidPlacement = errors.New("invalid piece placement")

// ParsePlacement parses the piece-placement field of a FEN string.
// Trailing FEN fields (side to move, castling, ...) are ignored.
func ParsePlacement(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty string: %w", ErrInvalidPlacement)
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("need 8 ranks, got %d: %w", len(rows), ErrInvalidPlacement)
	}

	b := Empty()
	for row, rowStr := range rows {
		col := 0
		for _, c := range rowStr {
			if col > 7 {
				return nil, fmt.Errorf("too many squares in rank %d: %w", 8-row, ErrInvalidPlacement)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			if c > 0x7f {
				return nil, fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidPlacement)
			}
			piece := PieceFromChar(byte(c))
			if piece.IsNone() {
				return nil, fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidPlacement)
			}
			b.Place(NewSquare(row, col), piece)
			col++
		}

		if col != 8 {
			return nil, fmt.Errorf("rank %d has %d squares: %w", 8-row, col, ErrInvalidPlacement)
		}
	}

	return b, nil
}

// MustParsePlacement is like ParsePlacement but panics on error.
func MustParsePlacement(fen string) *Board {
	b, err := ParsePlacement(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// Placement returns the FEN piece-placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			p := b.cells[row][col]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
