// Package rules decides whether a single piece may move between two
// squares on a given board. It covers piece geometry, path blocking and
// capture colour only: check, castling, en-passant and promotion are not
// modelled.
package rules

import "github.com/hailam/chessboard/internal/board"

// Reader is the read side of a board.
type Reader interface {
	PieceAt(sq board.Square) (board.Piece, bool)
}

// Pawn geometry per color.
var (
	pawnDir  = [2]int{-1, +1} // White moves up the grid, Black down
	pawnHome = [2]int{6, 1}
)

// IsLegal reports whether p may move from from to to on b.
//
// b is read as if p had already been lifted off from; the from square is
// never consulted. The result depends only on the arguments.
func IsLegal(b Reader, p board.Piece, from, to board.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	switch p.Type {
	case board.Pawn:
		return pawnMove(b, p.Color, from, to)
	case board.Rook, board.Knight, board.Bishop, board.Queen, board.King:
		if target, ok := b.PieceAt(to); ok && target.Color == p.Color {
			return false
		}
		return pieceMove(b, p.Type, from, to)
	}

	return false
}

// pawnMove handles single and double pushes and diagonal captures.
func pawnMove(b Reader, c board.Color, from, to board.Square) bool {
	if c > board.Black {
		return false
	}
	dir := pawnDir[c]
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	_, occupied := b.PieceAt(to)

	switch {
	case dc == 0 && dr == dir:
		return !occupied
	case dc == 0 && dr == 2*dir && from.Row == pawnHome[c]:
		_, blocked := b.PieceAt(from.Offset(dir, 0))
		return !blocked && !occupied
	case abs(dc) == 1 && dr == dir:
		target, ok := b.PieceAt(to)
		return ok && target.Color == c.Other()
	}

	return false
}

// pieceMove checks the shape of a non-pawn move and, for sliders, that
// every square strictly between from and to is empty.
func pieceMove(b Reader, pt board.PieceType, from, to board.Square) bool {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)

	switch pt {
	case board.Knight:
		return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)

	case board.King:
		return dr <= 1 && dc <= 1

	case board.Rook:
		if dr != 0 && dc != 0 {
			return false
		}
		return pathClear(b, from, to)

	case board.Bishop:
		if dr != dc {
			return false
		}
		return pathClear(b, from, to)

	case board.Queen:
		if dr != dc && dr != 0 && dc != 0 {
			return false
		}
		return pathClear(b, from, to)
	}

	return false
}

// pathClear walks from from towards to along a rank, file or diagonal and
// reports whether every intervening square is empty.
func pathClear(b Reader, from, to board.Square) bool {
	stepR := sign(to.Row - from.Row)
	stepC := sign(to.Col - from.Col)

	for sq := from.Offset(stepR, stepC); sq != to; sq = sq.Offset(stepR, stepC) {
		if _, ok := b.PieceAt(sq); ok {
			return false
		}
	}
	return true
}

// Destinations returns every square p may legally move to from from,
// in row-major order.
func Destinations(b Reader, p board.Piece, from board.Square) []board.Square {
	var out []board.Square
	for _, to := range board.AllSquares() {
		if IsLegal(b, p, from, to) {
			out = append(out, to)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
