package board

import (
	"errors"
	"testing"
)

func TestNewBoardStartingLayout(t *testing.T) {
	b := New()

	back := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, sq := range AllSquares() {
		want := NoPiece
		switch sq.Row {
		case 0:
			want = NewPiece(back[sq.Col], Black)
		case 1:
			want = NewPiece(Pawn, Black)
		case 6:
			want = NewPiece(Pawn, White)
		case 7:
			want = NewPiece(back[sq.Col], White)
		}

		got, ok := b.PieceAt(sq)
		if got != want {
			t.Errorf("PieceAt(%v) = %v, want %v", sq, got, want)
		}
		if ok != !want.IsNone() {
			t.Errorf("PieceAt(%v) occupied = %v, want %v", sq, ok, !want.IsNone())
		}
	}

	if b.Count() != 32 {
		t.Errorf("Count() = %d, want 32", b.Count())
	}

	// Queens on the d-file, kings on the e-file.
	if p, _ := b.PieceAt(MustParseSquare("d1")); p != NewPiece(Queen, White) {
		t.Errorf("d1 = %v, want white queen", p)
	}
	if p, _ := b.PieceAt(MustParseSquare("e8")); p != NewPiece(King, Black) {
		t.Errorf("e8 = %v, want black king", p)
	}
}

func TestRemoveAndPlace(t *testing.T) {
	b := New()
	sq := NewSquare(6, 4)

	p, ok := b.Remove(sq)
	if !ok || p != NewPiece(Pawn, White) {
		t.Fatalf("Remove(%v) = %v, %v; want white pawn", sq, p, ok)
	}
	if _, ok := b.PieceAt(sq); ok {
		t.Errorf("square %v still occupied after Remove", sq)
	}
	if _, ok := b.Remove(sq); ok {
		t.Errorf("second Remove(%v) reported a piece", sq)
	}

	dst := NewSquare(4, 4)
	b.Place(dst, p)
	if got, _ := b.PieceAt(dst); got != p {
		t.Errorf("PieceAt(%v) = %v after Place, want %v", dst, got, p)
	}

	// Place overwrites.
	b.Place(dst, NewPiece(Queen, Black))
	if got, _ := b.PieceAt(dst); got != NewPiece(Queen, Black) {
		t.Errorf("Place did not overwrite: got %v", got)
	}
}

func TestOffBoardSquares(t *testing.T) {
	b := New()
	for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, ok := b.PieceAt(sq); ok {
			t.Errorf("PieceAt(%v) reported a piece", sq)
		}
		if _, ok := b.Remove(sq); ok {
			t.Errorf("Remove(%v) reported a piece", sq)
		}
		b.Place(sq, NewPiece(Queen, White))
	}
	if b.Count() != 32 {
		t.Errorf("off-board Place changed the board: Count() = %d", b.Count())
	}
}

func TestApplyMove(t *testing.T) {
	b := New()
	from, to := MustParseSquare("g1"), MustParseSquare("f3")

	p, _ := b.Remove(from)
	b.ApplyMove(from, to, p)

	if _, ok := b.PieceAt(from); ok {
		t.Errorf("%v still occupied", from)
	}
	if got, _ := b.PieceAt(to); got != NewPiece(Knight, White) {
		t.Errorf("%v = %v, want white knight", to, got)
	}
	if b.Count() != 32 {
		t.Errorf("Count() = %d, want 32", b.Count())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	c := b.Clone()
	c.Remove(NewSquare(0, 0))

	if _, ok := b.PieceAt(NewSquare(0, 0)); !ok {
		t.Error("mutating the clone changed the original")
	}
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{NewSquare(0, 0), "a8"},
		{NewSquare(7, 0), "a1"},
		{NewSquare(6, 4), "e2"},
		{NewSquare(4, 4), "e4"},
		{NewSquare(7, 7), "h1"},
		{NewSquare(8, 0), "-"},
	}

	for _, tc := range tests {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.sq, got, tc.want)
		}
		if !tc.sq.Valid() {
			continue
		}
		parsed, err := ParseSquare(tc.want)
		if err != nil {
			t.Errorf("ParseSquare(%q): %v", tc.want, err)
			continue
		}
		if parsed != tc.sq {
			t.Errorf("ParseSquare(%q) = %#v, want %#v", tc.want, parsed, tc.sq)
		}
	}

	for _, bad := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded", bad)
		}
	}
}

func TestPlacement(t *testing.T) {
	if got := New().Placement(); got != StartPlacement {
		t.Errorf("Placement() = %q, want %q", got, StartPlacement)
	}

	fens := []string{
		StartPlacement,
		"8/8/8/8/8/8/8/8",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	}
	for _, fen := range fens {
		b, err := ParsePlacement(fen)
		if err != nil {
			t.Fatalf("ParsePlacement(%q): %v", fen, err)
		}
		if got := b.Placement(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
	}

	// Trailing FEN fields are ignored.
	b, err := ParsePlacement(StartPlacement + " w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParsePlacement with full FEN: %v", err)
	}
	if *b != *New() {
		t.Error("full FEN did not produce the starting layout")
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR",
		"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"7/8/8/8/8/8/8/8",
		// U+0150 and U+0170 truncate to 'P' and 'p' as bytes.
		"7\u0150/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/\u01707",
	}
	for _, fen := range bad {
		_, err := ParsePlacement(fen)
		if err == nil {
			t.Errorf("ParsePlacement(%q) succeeded", fen)
			continue
		}
		if !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("ParsePlacement(%q) error %v does not wrap ErrInvalidPlacement", fen, err)
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Errorf("White.Other() = %v, want Black", White.Other())
	}
	if Black.Other() != White {
		t.Errorf("Black.Other() = %v, want White", Black.Other())
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		p    Piece
		want string
	}{
		{NewPiece(Pawn, White), "P"},
		{NewPiece(Knight, Black), "n"},
		{NewPiece(King, White), "K"},
		{NoPiece, " "},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.p, got, tc.want)
		}
		if tc.p.IsNone() {
			continue
		}
		if back := PieceFromChar(tc.want[0]); back != tc.p {
			t.Errorf("PieceFromChar(%q) = %v, want %v", tc.want, back, tc.p)
		}
	}
}
