package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/storage"
)

// Menu modal dimensions
const (
	MenuWidth  = 300
	MenuHeight = 372
	MenuPadX   = 24
)

var (
	modalOverlay = color.RGBA{0, 0, 0, 160}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// Toggle names a display preference the player can flip.
type Toggle int

const (
	ToggleNotation Toggle = iota
	ToggleHints
	ToggleSound
)

// MenuActions are the callbacks fired by the menu.
type MenuActions struct {
	Resume  func()
	Restart func()
	Exit    func()
	Toggle  func(t Toggle, on bool)
}

// Menu is the pause overlay. While it is visible the board receives no input.
type Menu struct {
	visible bool
	x, y    int
	screenW int
	screenH int
	title   string

	notation *Checkbox
	hints    *Checkbox
	sound    *Checkbox

	resumeBtn  *ModalButton
	restartBtn *ModalButton
	exitBtn    *ModalButton

	actions  MenuActions
	backdrop *Backdrop
}

// NewMenu creates a menu centred on a screen of the given size.
func NewMenu(title string, screenW, screenH int, actions MenuActions) *Menu {
	m := &Menu{
		title:    title,
		screenW:  screenW,
		screenH:  screenH,
		x:        (screenW - MenuWidth) / 2,
		y:        (screenH - MenuHeight) / 2,
		actions:  actions,
		backdrop: NewBackdrop(),
	}

	contentX := m.x + MenuPadX
	contentW := MenuWidth - MenuPadX*2

	m.notation = NewCheckbox(contentX, m.y+78, "Coordinates", true)
	m.hints = NewCheckbox(contentX, m.y+108, "Move hints", true)
	m.sound = NewCheckbox(contentX, m.y+138, "Sound effects", true)

	btnH := 38
	btnY := m.y + 190
	m.resumeBtn = NewModalButton(contentX, btnY, contentW, btnH, "Resume", true, m.handleResume)
	m.restartBtn = NewModalButton(contentX, btnY+btnH+8, contentW, btnH, "Restart", false, m.handleRestart)
	m.exitBtn = NewModalButton(contentX, btnY+2*(btnH+8), contentW, btnH, "Exit", false, m.handleExit)
	return m
}

// Show opens the menu with checkboxes reflecting prefs.
func (m *Menu) Show(prefs *storage.Preferences) {
	if prefs != nil {
		m.notation.Checked = prefs.ShowNotation
		m.hints.Checked = prefs.ShowHints
		m.sound.Checked = prefs.SoundEnabled
	}
	m.visible = true
}

// Hide closes the menu.
func (m *Menu) Hide() {
	m.visible = false
}

// IsVisible returns true if the menu is open.
func (m *Menu) IsVisible() bool {
	return m.visible
}

func (m *Menu) handleResume() {
	m.Hide()
	if m.actions.Resume != nil {
		m.actions.Resume()
	}
}

func (m *Menu) handleRestart() {
	m.Hide()
	if m.actions.Restart != nil {
		m.actions.Restart()
	}
}

func (m *Menu) handleExit() {
	m.Hide()
	if m.actions.Exit != nil {
		m.actions.Exit()
	}
}

func (m *Menu) toggle(t Toggle, on bool) {
	if m.actions.Toggle != nil {
		m.actions.Toggle(t, on)
	}
}

// Update handles menu input. It consumes all input while visible.
func (m *Menu) Update(input *InputHandler) bool {
	if !m.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEnter) {
		m.handleResume()
		return true
	}

	if m.notation.Update(input) {
		m.toggle(ToggleNotation, m.notation.Checked)
	}
	if m.hints.Update(input) {
		m.toggle(ToggleHints, m.hints.Checked)
	}
	if m.sound.Update(input) {
		m.toggle(ToggleSound, m.sound.Checked)
	}

	// Buttons close the menu, so stop at the first click.
	for _, b := range []*ModalButton{m.resumeBtn, m.restartBtn, m.exitBtn} {
		if b.Update(input) {
			break
		}
	}
	return true
}

// Draw renders the menu.
func (m *Menu) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}

	m.backdrop.Draw(screen, image.Rect(0, 0, m.screenW, m.screenH), modalOverlay, 3.0)
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), MenuWidth, MenuHeight, modalBg, false)
	vector.StrokeRect(screen, float32(m.x), float32(m.y), MenuWidth, MenuHeight, 2, modalBorder, false)
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), MenuWidth, 44, modalHeader, false)

	if face := GetBoldFace(); face != nil {
		w, h := MeasureText(m.title, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(m.x)+MenuWidth/2-w/2, float64(m.y)+22-h/2)
		op.ColorScale.ScaleWithColor(textPrimary)
		text.Draw(screen, m.title, face, op)
	}

	contentX := m.x + MenuPadX
	contentW := MenuWidth - MenuPadX*2
	DrawSectionHeader(screen, "Display", contentX, m.y+62)
	m.notation.Draw(screen)
	m.hints.Draw(screen)
	m.sound.Draw(screen)
	DrawDivider(screen, contentX, m.y+174, contentW)

	m.resumeBtn.Draw(screen)
	m.restartBtn.Draw(screen)
	m.exitBtn.Draw(screen)

	DrawSectionHeader(screen, "M menu   N coords   H hints   S sound", contentX, m.y+MenuHeight-22)
}
