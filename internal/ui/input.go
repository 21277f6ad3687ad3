package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/chessboard/internal/interact"
	"github.com/hailam/chessboard/internal/layout"
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY   int
	moved            bool
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
	otherJustPressed bool
	quit             bool
	started          bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	x, y := ebiten.CursorPosition()
	ih.moved = ih.started && (x != ih.mouseX || y != ih.mouseY)
	ih.mouseX, ih.mouseY = x, y
	ih.started = true

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ih.otherJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	ih.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}

// Events returns this frame's input as controller events, in the order
// motion, press, release, quit. Pixel positions are mapped with geom.
func (ih *InputHandler) Events(geom layout.Geometry) []interact.Event {
	var events []interact.Event
	sq, onBoard := geom.SquareAt(ih.mouseX, ih.mouseY)

	if ih.moved {
		events = append(events, interact.NewEvent(interact.PointerMove, sq, onBoard))
	}
	if ih.leftJustPressed {
		events = append(events, interact.NewEvent(interact.PrimaryPress, sq, onBoard))
	}
	if ih.otherJustPressed {
		events = append(events, interact.NewEvent(interact.SecondaryPress, sq, onBoard))
	}
	if ih.leftJustReleased {
		events = append(events, interact.NewEvent(interact.PrimaryRelease, sq, onBoard))
	}
	if ih.quit {
		events = append(events, interact.Quit())
	}
	return events
}

// QuitRequested reports whether Escape was pressed or the window is closing.
func (ih *InputHandler) QuitRequested() bool {
	return ih.quit
}

// MousePosition returns the current mouse position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
