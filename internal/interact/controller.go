// Package interact turns a stream of pointer and keyboard events into
// piece selection, dragging, move commits, rollbacks and square marks.
//
// A Controller is driven from a single goroutine: each event is processed
// to completion before the next one, so the board, the mark set and the
// gesture state are never seen half-updated.
package interact

import (
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/annotate"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/rules"
)

// Outcome says what an event did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLifted
	OutcomeDragged
	OutcomeCommitted
	OutcomeRolledBack
	OutcomeMarked
	OutcomeUnmarked
	OutcomeQuit
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeLifted:
		return "Lifted"
	case OutcomeDragged:
		return "Dragged"
	case OutcomeCommitted:
		return "Committed"
	case OutcomeRolledBack:
		return "RolledBack"
	case OutcomeMarked:
		return "Marked"
	case OutcomeUnmarked:
		return "Unmarked"
	case OutcomeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Result reports an event's outcome with the squares involved.
//
//   - Lifted: From is the lift square.
//   - Committed: From, To, Piece and Captured describe the move.
//   - RolledBack: From is where the piece went back to; To is the release
//     square when ToOnBoard is set.
//   - Marked, Unmarked: To is the toggled square.
type Result struct {
	Outcome   Outcome
	From      board.Square
	To        board.Square
	ToOnBoard bool
	Piece     board.Piece
	Captured  board.Piece
}

// Controller owns the gesture state and mutates the shared board and
// mark set in response to events.
type Controller struct {
	board *board.Board
	marks *annotate.Set
	log   *zap.Logger

	state   State
	targets []board.Square

	lastMove    Played
	hasLastMove bool

	done bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController creates an idle controller over b and marks.
func NewController(b *board.Board, marks *annotate.Set, opts ...Option) *Controller {
	c := &Controller{
		board: b,
		marks: marks,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle applies one event. Events that match no transition leave the
// state unchanged and report OutcomeNone. After a quit every event is
// ignored.
func (c *Controller) Handle(ev Event) Result {
	if c.done {
		return Result{}
	}

	switch ev.Kind {
	case PrimaryPress:
		c.trackPointer(ev)
		return c.press(ev)
	case SecondaryPress:
		c.trackPointer(ev)
		return c.mark(ev)
	case PointerMove:
		c.trackPointer(ev)
		return c.motion()
	case PrimaryRelease:
		c.trackPointer(ev)
		return c.release(ev)
	case QuitRequested:
		c.done = true
		c.log.Info("quit requested", zap.Stringer("phase", c.state.Phase))
		return Result{Outcome: OutcomeQuit}
	}

	return Result{}
}

func (c *Controller) trackPointer(ev Event) {
	c.state.Pointer = ev.Square
	c.state.PointerOnBoard = ev.OnBoard
}

// press starts a new primary gesture. Marks are cleared whether or not
// a piece ends up lifted.
func (c *Controller) press(ev Event) Result {
	c.marks.Clear()

	// A previous gesture whose release never arrived.
	if c.state.Phase != Idle {
		c.log.Debug("press while carrying, returning piece",
			zap.Stringer("square", c.state.Origin),
			zap.Stringer("piece", c.state.Carried))
		c.rollback()
	}

	if !ev.OnBoard {
		return Result{}
	}

	p, ok := c.board.Remove(ev.Square)
	if !ok {
		return Result{}
	}

	c.state.Phase = Selected
	c.state.Origin = ev.Square
	c.state.Carried = p
	c.targets = rules.Destinations(c.board, p, ev.Square)

	c.log.Debug("piece lifted",
		zap.Stringer("square", ev.Square),
		zap.Stringer("piece", p),
		zap.Int("targets", len(c.targets)))

	return Result{Outcome: OutcomeLifted, From: ev.Square, Piece: p}
}

// motion turns a fresh selection into a drag.
func (c *Controller) motion() Result {
	if c.state.Phase != Selected {
		return Result{}
	}
	c.state.Phase = Dragging
	return Result{Outcome: OutcomeDragged, From: c.state.Origin, Piece: c.state.Carried}
}

// release resolves the gesture: commit when the move is legal, otherwise
// put the piece back where it came from.
func (c *Controller) release(ev Event) Result {
	if c.state.Phase == Idle {
		return Result{}
	}

	from, p := c.state.Origin, c.state.Carried

	if ev.OnBoard && rules.IsLegal(c.board, p, from, ev.Square) {
		captured, _ := c.board.PieceAt(ev.Square)
		c.board.ApplyMove(from, ev.Square, p)
		c.lastMove = Played{From: from, To: ev.Square, Piece: p, Captured: captured}
		c.hasLastMove = true
		c.endGesture()

		c.log.Debug("move committed",
			zap.Stringer("from", from),
			zap.Stringer("to", ev.Square),
			zap.Stringer("piece", p),
			zap.Stringer("captured", captured),
			zap.String("placement", c.board.Placement()))

		return Result{
			Outcome:   OutcomeCommitted,
			From:      from,
			To:        ev.Square,
			ToOnBoard: true,
			Piece:     p,
			Captured:  captured,
		}
	}

	c.rollback()

	c.log.Debug("move rolled back",
		zap.Stringer("from", from),
		zap.Stringer("to", ev.Square),
		zap.Bool("on_board", ev.OnBoard),
		zap.Stringer("piece", p))

	return Result{
		Outcome:   OutcomeRolledBack,
		From:      from,
		To:        ev.Square,
		ToOnBoard: ev.OnBoard,
		Piece:     p,
	}
}

// mark toggles the annotation on the pressed square. It never touches
// the board or the gesture state.
func (c *Controller) mark(ev Event) Result {
	if !ev.OnBoard {
		return Result{}
	}

	if c.marks.Toggle(ev.Square) {
		c.log.Debug("square marked", zap.Stringer("square", ev.Square))
		return Result{Outcome: OutcomeMarked, To: ev.Square, ToOnBoard: true}
	}
	c.log.Debug("square unmarked", zap.Stringer("square", ev.Square))
	return Result{Outcome: OutcomeUnmarked, To: ev.Square, ToOnBoard: true}
}

// rollback returns the carried piece to its origin and ends the gesture.
func (c *Controller) rollback() {
	c.board.Place(c.state.Origin, c.state.Carried)
	c.endGesture()
}

func (c *Controller) endGesture() {
	c.state.Phase = Idle
	c.state.Origin = board.Square{}
	c.state.Carried = board.NoPiece
	c.targets = nil
}

// Reset puts the board back in the starting layout, clears every mark
// and ends any gesture in progress.
func (c *Controller) Reset() {
	c.endGesture()
	c.board.Reset()
	c.marks.Clear()
	c.lastMove = Played{}
	c.hasLastMove = false
	c.log.Info("board reset")
}

// State returns a copy of the gesture state.
func (c *Controller) State() State { return c.state }

// Selected returns the square the carried piece was lifted from.
func (c *Controller) Selected() (board.Square, bool) { return c.state.Selected() }

// CarriedPiece returns the piece held off the board.
func (c *Controller) CarriedPiece() (board.Piece, bool) { return c.state.CarriedPiece() }

// PointerSquare returns the square under the pointer.
func (c *Controller) PointerSquare() (board.Square, bool) { return c.state.PointerSquare() }

// IsDragging reports whether a carried piece is being dragged.
func (c *Controller) IsDragging() bool { return c.state.IsDragging() }

// Targets returns the legal destinations of the carried piece.
func (c *Controller) Targets() []board.Square {
	return append([]board.Square(nil), c.targets...)
}

// LastMove returns the most recent committed move.
func (c *Controller) LastMove() (Played, bool) { return c.lastMove, c.hasLastMove }

// Done reports whether a quit has been requested.
func (c *Controller) Done() bool { return c.done }

// Board returns the board the controller mutates.
func (c *Controller) Board() *board.Board { return c.board }

// Annotations returns the mark set the controller mutates.
func (c *Controller) Annotations() *annotate.Set { return c.marks }

// Snapshot copies everything the renderer needs for one frame.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Board:       *c.board,
		State:       c.state,
		Marks:       c.marks.Squares(),
		Targets:     c.Targets(),
		LastMove:    c.lastMove,
		HasLastMove: c.hasLastMove,
	}
}
