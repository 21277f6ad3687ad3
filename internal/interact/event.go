package interact

import "github.com/hailam/chessboard/internal/board"

// EventKind identifies an input event.
type EventKind int

const (
	PrimaryPress EventKind = iota + 1
	SecondaryPress
	PointerMove
	PrimaryRelease
	QuitRequested
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case PrimaryPress:
		return "PrimaryPress"
	case SecondaryPress:
		return "SecondaryPress"
	case PointerMove:
		return "PointerMove"
	case PrimaryRelease:
		return "PrimaryRelease"
	case QuitRequested:
		return "QuitRequested"
	default:
		return "Unknown"
	}
}

// Event is one input event, already translated from pixels to a square
// by the caller. Square is meaningful only when OnBoard is true.
type Event struct {
	Kind    EventKind
	Square  board.Square
	OnBoard bool
}

// NewEvent builds an event from the result of a pixel-to-square lookup.
func NewEvent(kind EventKind, sq board.Square, onBoard bool) Event {
	if !onBoard || !sq.Valid() {
		return Event{Kind: kind}
	}
	return Event{Kind: kind, Square: sq, OnBoard: true}
}

// Press is a primary button press on sq.
func Press(sq board.Square) Event { return NewEvent(PrimaryPress, sq, true) }

// Mark is a secondary button press on sq.
func Mark(sq board.Square) Event { return NewEvent(SecondaryPress, sq, true) }

// Move is pointer motion onto sq.
func Move(sq board.Square) Event { return NewEvent(PointerMove, sq, true) }

// Release is a primary button release on sq.
func Release(sq board.Square) Event { return NewEvent(PrimaryRelease, sq, true) }

// OffBoard is an event of the given kind outside the 8x8 grid.
func OffBoard(kind EventKind) Event { return Event{Kind: kind} }

// Quit asks the session to end.
func Quit() Event { return Event{Kind: QuitRequested} }
