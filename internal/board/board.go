package board

import "strings"

// Board is the 8x8 grid of occupants. It is a value type: assigning a
// Board copies the whole grid.
//
// Occupancy only changes through Remove, Place and ApplyMove. None of
// them judge whether a move is allowed; that is the rules package's job.
type Board struct {
	cells [Size][Size]Piece
}

// backRank is the piece order on rows 0 and 7, a-file first.
var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns a board in the standard starting layout.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Empty returns a board with no pieces.
func Empty() *Board {
	return &Board{}
}

// Reset restores the standard starting layout.
func (b *Board) Reset() {
	*b = Board{}
	for col := 0; col < Size; col++ {
		b.cells[0][col] = NewPiece(backRank[col], Black)
		b.cells[1][col] = NewPiece(Pawn, Black)
		b.cells[6][col] = NewPiece(Pawn, White)
		b.cells[7][col] = NewPiece(backRank[col], White)
	}
}

// PieceAt returns the piece on sq and whether the square is occupied.
// Squares off the board read as empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	p := b.cells[sq.Row][sq.Col]
	return p, !p.IsNone()
}

// Remove clears sq and returns what was there.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.PieceAt(sq)
	if ok {
		b.cells[sq.Row][sq.Col] = NoPiece
	}
	return p, ok
}

// Place puts p on sq, overwriting any previous occupant.
// Placing NoPiece clears the square.
func (b *Board) Place(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.cells[sq.Row][sq.Col] = p
}

// ApplyMove places p on to and leaves from empty. The caller normally
// has already lifted p off from with Remove.
func (b *Board) ApplyMove(from, to Square, p Piece) {
	if from != to {
		b.Place(from, NoPiece)
	}
	b.Place(to, p)
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !b.cells[row][col].IsNone() {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// String returns an ASCII diagram of the board, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteString("  ")
		for col := 0; col < Size; col++ {
			p := b.cells[row][col]
			if p.IsNone() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
