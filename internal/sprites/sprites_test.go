package sprites

import (
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

func opaquePixels(t *testing.T, p board.Piece, size int) int {
	t.Helper()
	img, err := Render(p, size)
	if err != nil {
		t.Fatalf("Render(%v): %v", p, err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("Render(%v) bounds = %v, want %dx%d", p, b, size, size)
	}

	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRenderAllPieces(t *testing.T) {
	for _, p := range AllPieces() {
		t.Run(p.String(), func(t *testing.T) {
			if n := opaquePixels(t, p, 64); n == 0 {
				t.Errorf("%v rendered fully transparent", p)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(board.NoPiece, 64); err == nil {
		t.Error("Render(NoPiece) succeeded")
	}
	if _, err := Render(board.NewPiece(board.Queen, board.White), 0); err == nil {
		t.Error("Render with size 0 succeeded")
	}
}

func TestCacheReusesImages(t *testing.T) {
	c := NewCache()
	p := board.NewPiece(board.Knight, board.Black)

	first, err := c.Piece(p, 32)
	if err != nil {
		t.Fatalf("Piece: %v", err)
	}
	second, err := c.Piece(p, 32)
	if err != nil {
		t.Fatalf("Piece: %v", err)
	}
	if first != second {
		t.Error("cache returned a new image for the same key")
	}

	other, err := c.Piece(p, 48)
	if err != nil {
		t.Fatalf("Piece: %v", err)
	}
	if other == first {
		t.Error("cache ignored the size")
	}
}

func TestAssetName(t *testing.T) {
	tests := []struct {
		p    board.Piece
		want string
	}{
		{board.NewPiece(board.Pawn, board.White), "assets/pieces/wP.svg"},
		{board.NewPiece(board.King, board.Black), "assets/pieces/bK.svg"},
		{board.NewPiece(board.Knight, board.Black), "assets/pieces/bN.svg"},
	}
	for _, tc := range tests {
		got, err := AssetName(tc.p)
		if err != nil || got != tc.want {
			t.Errorf("AssetName(%v) = %q, %v; want %q", tc.p, got, err, tc.want)
		}
	}
}
