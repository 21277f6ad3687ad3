package interact

import "github.com/hailam/chessboard/internal/board"

// Phase is the gesture state of the controller.
type Phase int

const (
	// Idle: nothing is carried.
	Idle Phase = iota
	// Selected: a piece has been lifted and the pointer has not moved yet.
	Selected
	// Dragging: a piece is carried and the pointer has moved since.
	Dragging
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Selected:
		return "Selected"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// State is what the user is currently doing with the board.
//
// Origin and Carried are set together when a piece is lifted and are
// only meaningful while Phase is not Idle. The pointer square is tracked
// in every phase.
type State struct {
	Phase   Phase
	Origin  board.Square
	Carried board.Piece

	Pointer        board.Square
	PointerOnBoard bool
}

// Selected returns the square the carried piece was lifted from.
func (s State) Selected() (board.Square, bool) {
	if s.Phase == Idle {
		return board.Square{}, false
	}
	return s.Origin, true
}

// CarriedPiece returns the piece held off the board.
func (s State) CarriedPiece() (board.Piece, bool) {
	if s.Phase == Idle {
		return board.NoPiece, false
	}
	return s.Carried, true
}

// PointerSquare returns the square under the pointer.
func (s State) PointerSquare() (board.Square, bool) {
	return s.Pointer, s.PointerOnBoard
}

// IsDragging reports whether the pointer has moved since the lift.
func (s State) IsDragging() bool {
	return s.Phase == Dragging
}

// Played is a committed move.
type Played struct {
	From, To board.Square
	Piece    board.Piece
	Captured board.Piece
}

// Snapshot is a consistent copy of everything the renderer draws.
type Snapshot struct {
	Board board.Board
	State State

	// Marks are the annotated squares, row-major.
	Marks []board.Square
	// Targets are the legal destinations of the carried piece.
	Targets []board.Square

	LastMove    Played
	HasLastMove bool
}
