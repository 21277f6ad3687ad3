package rules

import (
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

var (
	whitePawn   = board.NewPiece(board.Pawn, board.White)
	blackPawn   = board.NewPiece(board.Pawn, board.Black)
	whiteRook   = board.NewPiece(board.Rook, board.White)
	whiteKnight = board.NewPiece(board.Knight, board.White)
	whiteBishop = board.NewPiece(board.Bishop, board.White)
	whiteQueen  = board.NewPiece(board.Queen, board.White)
	whiteKing   = board.NewPiece(board.King, board.White)
	blackQueen  = board.NewPiece(board.Queen, board.Black)
)

func sq(s string) board.Square { return board.MustParseSquare(s) }

// lifted parses a placement and removes the piece on from, the way the
// interaction controller does before asking about a move.
func lifted(t *testing.T, fen string, from board.Square) (*board.Board, board.Piece) {
	t.Helper()
	b, err := board.ParsePlacement(fen)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", fen, err)
	}
	p, ok := b.Remove(from)
	if !ok {
		t.Fatalf("no piece on %v in %q", from, fen)
	}
	return b, p
}

func TestPreconditions(t *testing.T) {
	b := board.Empty()
	tests := []struct {
		name     string
		from, to board.Square
	}{
		{"same square", board.NewSquare(4, 4), board.NewSquare(4, 4)},
		{"from off board", board.NewSquare(-1, 4), board.NewSquare(4, 4)},
		{"to off board", board.NewSquare(4, 4), board.NewSquare(4, 8)},
		{"to below board", board.NewSquare(7, 0), board.NewSquare(8, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsLegal(b, whiteQueen, tc.from, tc.to) {
				t.Errorf("IsLegal(%v -> %v) = true", tc.from, tc.to)
			}
		})
	}

	if IsLegal(b, board.NoPiece, board.NewSquare(4, 4), board.NewSquare(3, 4)) {
		t.Error("NoPiece may not move")
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want bool
	}{
		// White pawn on its home row (6, 4) = e2.
		{"white single push", board.StartPlacement, "e2", "e3", true},
		{"white double push", board.StartPlacement, "e2", "e4", true},
		{"white triple push", board.StartPlacement, "e2", "e5", false},
		{"white backward", "8/8/8/8/4P3/8/8/8", "e4", "e3", false},
		{"white sideways", "8/8/8/8/4P3/8/8/8", "e4", "d4", false},
		{"white double blocked at intermediate", "8/8/8/8/8/4n3/4P3/8", "e2", "e4", false},
		{"white double blocked at destination", "8/8/8/8/4n3/8/4P3/8", "e2", "e4", false},
		{"white double off home row", "8/8/8/8/8/4P3/8/8", "e3", "e5", false},
		{"white push onto piece", "8/8/8/8/8/4n3/4P3/8", "e2", "e3", false},
		{"white capture enemy", "8/8/8/8/8/3n4/4P3/8", "e2", "d3", true},
		{"white capture own", "8/8/8/8/8/3N4/4P3/8", "e2", "d3", false},
		{"white diagonal empty", "8/8/8/8/8/8/4P3/8", "e2", "f3", false},
		{"white diagonal two cols", "8/8/8/8/8/2n5/4P3/8", "e2", "c3", false},
		{"white backward capture", "8/8/8/8/4P3/3n4/8/8", "e4", "d3", false},

		// Black pawn on (1, 3) = d7.
		{"black single push", board.StartPlacement, "d7", "d6", true},
		{"black double push", board.StartPlacement, "d7", "d5", true},
		{"black capture c6", "8/3p4/2N5/8/8/8/8/8", "d7", "c6", true},
		{"black capture e6", "8/3p4/4B3/8/8/8/8/8", "d7", "e6", true},
		{"black diagonal empty", "8/3p4/8/8/8/8/8/8", "d7", "c6", false},
		{"black capture own", "8/3p4/2n5/8/8/8/8/8", "d7", "c6", false},
		{"black backward", "8/8/3p4/8/8/8/8/8", "d6", "d7", false},
		{"black double blocked", "8/3p4/3P4/8/8/8/8/8", "d7", "d5", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from := sq(tc.from)
			b, p := lifted(t, tc.fen, from)
			if got := IsLegal(b, p, from, sq(tc.to)); got != tc.want {
				t.Errorf("IsLegal(%v %s -> %s) = %v, want %v\n%s", p, tc.from, tc.to, got, tc.want, b)
			}
		})
	}
}

// Pawn cases written in raw (row, col) coordinates.
func TestPawnRowColExamples(t *testing.T) {
	b := board.Empty()
	b.Place(board.NewSquare(6, 4), whitePawn)
	p, _ := b.Remove(board.NewSquare(6, 4))

	if !IsLegal(b, p, board.NewSquare(6, 4), board.NewSquare(4, 4)) {
		t.Error("double step (6,4)->(4,4) on empty board should be legal")
	}
	b.Place(board.NewSquare(5, 4), blackQueen)
	if IsLegal(b, p, board.NewSquare(6, 4), board.NewSquare(4, 4)) {
		t.Error("double step through occupied (5,4) should be illegal")
	}

	b = board.Empty()
	from := board.NewSquare(1, 3)
	for _, to := range []board.Square{board.NewSquare(2, 2), board.NewSquare(2, 4)} {
		if IsLegal(b, blackPawn, from, to) {
			t.Errorf("black pawn (1,3)->%v onto empty square should be illegal", to)
		}
		b.Place(to, whiteKnight)
		if !IsLegal(b, blackPawn, from, to) {
			t.Errorf("black pawn (1,3)->%v capturing white should be legal", to)
		}
		b.Place(to, blackQueen)
		if IsLegal(b, blackPawn, from, to) {
			t.Errorf("black pawn (1,3)->%v onto black piece should be illegal", to)
		}
	}
}

func TestSliderAndLeaperMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want bool
	}{
		{"rook file", "8/8/8/8/3R4/8/8/8", "d4", "d8", true},
		{"rook rank", "8/8/8/8/3R4/8/8/8", "d4", "a4", true},
		{"rook diagonal", "8/8/8/8/3R4/8/8/8", "d4", "e5", false},
		{"rook blocked", "8/8/8/3p4/3R4/8/8/8", "d4", "d8", false},
		{"rook captures blocker", "8/8/8/3p4/3R4/8/8/8", "d4", "d5", true},
		{"rook own piece", "8/8/8/3P4/3R4/8/8/8", "d4", "d5", false},
		{"rook from corner at start", board.StartPlacement, "a1", "a3", false},

		{"bishop diagonal", "8/8/8/8/3B4/8/8/8", "d4", "h8", true},
		{"bishop anti diagonal", "8/8/8/8/3B4/8/8/8", "d4", "a7", true},
		{"bishop straight", "8/8/8/8/3B4/8/8/8", "d4", "d6", false},
		{"bishop blocked", "8/8/5n2/8/3B4/8/8/8", "d4", "g7", false},
		{"bishop captures", "8/8/5n2/8/3B4/8/8/8", "d4", "f6", true},
		{"bishop at start", board.StartPlacement, "c1", "e3", false},

		{"queen diagonal", "8/8/8/8/3Q4/8/8/8", "d4", "g7", true},
		{"queen straight", "8/8/8/8/3Q4/8/8/8", "d4", "d1", true},
		{"queen knight jump", "8/8/8/8/3Q4/8/8/8", "d4", "e6", false},
		{"queen blocked", "8/8/8/8/3Q1p2/8/8/8", "d4", "h4", false},

		{"knight L", "8/8/8/8/3N4/8/8/8", "d4", "e6", true},
		{"knight L other", "8/8/8/8/3N4/8/8/8", "d4", "b3", true},
		{"knight straight", "8/8/8/8/3N4/8/8/8", "d4", "d6", false},
		{"knight jumps over", board.StartPlacement, "g1", "f3", true},
		{"knight own piece", board.StartPlacement, "g1", "e2", false},

		{"king step", "8/8/8/8/3K4/8/8/8", "d4", "e5", true},
		{"king two steps", "8/8/8/8/3K4/8/8/8", "d4", "d6", false},
		{"king captures", "8/8/8/4p3/3K4/8/8/8", "d4", "e5", true},
		{"king own piece", "8/8/8/4P3/3K4/8/8/8", "d4", "e5", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from := sq(tc.from)
			b, p := lifted(t, tc.fen, from)
			if got := IsLegal(b, p, from, sq(tc.to)); got != tc.want {
				t.Errorf("IsLegal(%v %s -> %s) = %v, want %v\n%s", p, tc.from, tc.to, got, tc.want, b)
			}
		})
	}
}

func TestIsLegalIsPure(t *testing.T) {
	b := board.New()
	before := b.Placement()
	for _, from := range board.AllSquares() {
		p, ok := b.PieceAt(from)
		if !ok {
			continue
		}
		for _, to := range board.AllSquares() {
			first := IsLegal(b, p, from, to)
			if second := IsLegal(b, p, from, to); second != first {
				t.Fatalf("IsLegal(%v %v -> %v) not deterministic", p, from, to)
			}
		}
	}
	if after := b.Placement(); after != before {
		t.Errorf("IsLegal mutated the board: %q -> %q", before, after)
	}
}

func TestDestinations(t *testing.T) {
	b := board.Empty()
	from := sq("d4")

	if got := len(Destinations(b, whiteQueen, from)); got != 27 {
		t.Errorf("queen on d4 has %d destinations, want 27", got)
	}
	if got := len(Destinations(b, whiteRook, from)); got != 14 {
		t.Errorf("rook on d4 has %d destinations, want 14", got)
	}
	if got := len(Destinations(b, whiteBishop, from)); got != 13 {
		t.Errorf("bishop on d4 has %d destinations, want 13", got)
	}
	if got := len(Destinations(b, whiteKnight, from)); got != 8 {
		t.Errorf("knight on d4 has %d destinations, want 8", got)
	}
	if got := len(Destinations(b, whiteKing, from)); got != 8 {
		t.Errorf("king on d4 has %d destinations, want 8", got)
	}
	if got := len(Destinations(b, whiteKnight, sq("a1"))); got != 2 {
		t.Errorf("knight on a1 has %d destinations, want 2", got)
	}

	dests := Destinations(b, whiteKing, from)
	for i := 1; i < len(dests); i++ {
		if !dests[i-1].Less(dests[i]) {
			t.Errorf("destinations not in row-major order: %v", dests)
			break
		}
	}
}
