package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/annotate"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/interact"
	"github.com/hailam/chessboard/internal/layout"
	"github.com/hailam/chessboard/internal/sprites"
	"github.com/hailam/chessboard/internal/storage"
)

// Game implements ebiten.Game around an interaction controller.
type Game struct {
	cfg  *config.Config
	geom layout.Geometry
	log  *zap.Logger

	controller *interact.Controller

	// Storage may be nil; preferences then live only for this run.
	storage *storage.Storage
	prefs   *storage.Preferences

	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager
	menu     *Menu

	screenW, screenH int
}

// NewGame builds the window state. store may be nil.
func NewGame(cfg *config.Config, store *storage.Storage, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	geom := layout.New(cfg.Board.TileSize, cfg.Board.OriginX, cfg.Board.OriginY)

	g := &Game{
		cfg:     cfg,
		geom:    geom,
		log:     log,
		storage: store,
		input:   NewInputHandler(),
		screenW: geom.Size() + 2*geom.OriginX,
		screenH: geom.Size() + 2*geom.OriginY,
	}
	g.controller = interact.NewController(board.New(), annotate.New(), interact.WithLogger(log.Named("interact")))

	spr := NewSpriteManager(sprites.NewCache(), geom.TileSize, log)
	g.renderer = NewRenderer(geom, ThemeFromConfig(cfg.Board), spr, cfg.Board.Font)
	g.feedback = NewFeedbackManager(g.screenW)
	g.menu = NewMenu(cfg.Title, g.screenW, g.screenH, MenuActions{
		Restart: g.restart,
		Exit:    g.exit,
		Toggle:  g.setToggle,
	})

	g.loadPreferences()
	g.checkFirstLaunch()

	if cfg.MenuOnStart {
		g.menu.Show(g.prefs)
	}
	return g
}

// ScreenSize returns the logical window size in pixels.
func (g *Game) ScreenSize() (int, int) {
	return g.screenW, g.screenH
}

// loadPreferences reads stored toggles, falling back to the config defaults.
func (g *Game) loadPreferences() {
	defaults := storage.DefaultPreferences()
	defaults.ShowNotation = g.cfg.Board.Notation
	defaults.ShowHints = g.cfg.Board.Hints
	g.prefs = defaults

	if g.storage == nil {
		return
	}
	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Warn("failed to check first launch", zap.Error(err))
	}
	if isFirst {
		g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		g.log.Warn("failed to load preferences", zap.Error(err))
	} else {
		g.prefs = prefs
	}
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences writes the current toggles to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warn("failed to save preferences", zap.Error(err))
	}
}

// checkFirstLaunch shows a short usage hint the first time the app runs.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}
	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil || !isFirst {
		return
	}
	g.feedback.Notify("Drag to move. Right-click marks a square.")
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		g.log.Warn("failed to mark first launch complete", zap.Error(err))
	}
	g.savePreferences()
}

// setToggle flips one display preference and persists it.
func (g *Game) setToggle(t Toggle, on bool) {
	var label string
	switch t {
	case ToggleNotation:
		g.prefs.ShowNotation = on
		label = "Coordinates"
	case ToggleHints:
		g.prefs.ShowHints = on
		label = "Move hints"
	case ToggleSound:
		g.prefs.SoundEnabled = on
		g.feedback.Audio().SetEnabled(on)
		label = "Sound"
	default:
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	g.feedback.Notify(label + " " + state)
	g.log.Debug("preference toggled", zap.String("name", label), zap.Bool("on", on))
	g.savePreferences()
}

func (g *Game) restart() {
	g.controller.Reset()
	g.feedback.Notify("Board reset")
}

func (g *Game) exit() {
	g.apply(interact.Quit())
}

// openMenu shows the menu. A piece still in hand goes back to its origin
// first so the board is never left with a floating piece.
func (g *Game) openMenu() {
	if _, carrying := g.controller.CarriedPiece(); carrying {
		g.controller.Handle(interact.OffBoard(interact.PrimaryRelease))
	}
	g.menu.Show(g.prefs)
}

// Update handles one tick of input.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if g.controller.Done() {
		return ebiten.Termination
	}

	if g.input.QuitRequested() {
		g.apply(interact.Quit())
		return ebiten.Termination
	}

	if IsKeyJustPressed(ebiten.KeyM) {
		if g.menu.IsVisible() {
			g.menu.Hide()
		} else {
			g.openMenu()
		}
		return nil
	}

	if g.menu.IsVisible() {
		g.menu.Update(g.input)
		g.updateCursor()
		if g.controller.Done() {
			return ebiten.Termination
		}
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyN) {
		g.setToggle(ToggleNotation, !g.prefs.ShowNotation)
	}
	if IsKeyJustPressed(ebiten.KeyH) {
		g.setToggle(ToggleHints, !g.prefs.ShowHints)
	}
	if IsKeyJustPressed(ebiten.KeyS) {
		g.setToggle(ToggleSound, !g.prefs.SoundEnabled)
	}

	for _, ev := range g.input.Events(g.geom) {
		g.apply(ev)
	}
	g.updateCursor()

	if g.controller.Done() {
		return ebiten.Termination
	}
	return nil
}

// apply feeds one event to the controller and reacts to the outcome.
func (g *Game) apply(ev interact.Event) {
	res := g.controller.Handle(ev)
	switch res.Outcome {
	case interact.OutcomeCommitted:
		g.feedback.OnCommit(!res.Captured.IsNone())
	case interact.OutcomeRolledBack:
		// Dropping a piece back where it came from is just a click.
		if !res.ToOnBoard || res.To != res.From {
			g.feedback.OnRollback(res.From, res.To, res.ToOnBoard)
		}
	case interact.OutcomeMarked, interact.OutcomeUnmarked:
		g.feedback.OnMark()
	case interact.OutcomeQuit:
		g.savePreferences()
	}
}

// updateCursor shows a grab hand over pieces and while carrying.
func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if g.menu.IsVisible() {
		for _, b := range []*ModalButton{g.menu.resumeBtn, g.menu.restartBtn, g.menu.exitBtn} {
			if b.IsHovered() {
				shape = ebiten.CursorShapePointer
			}
		}
		ebiten.SetCursorShape(shape)
		return
	}
	if _, carrying := g.controller.CarriedPiece(); carrying {
		shape = ebiten.CursorShapeMove
	} else if sq, ok := g.controller.PointerSquare(); ok {
		if _, occupied := g.controller.Board().PieceAt(sq); occupied {
			shape = ebiten.CursorShapePointer
		}
	}
	ebiten.SetCursorShape(shape)
}

// Draw renders the frame from a controller snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.controller.Snapshot()
	r := g.renderer

	screen.Fill(r.Theme().Background)
	r.DrawBoard(screen)
	if g.prefs.ShowNotation {
		r.DrawNotation(screen)
	}
	if snap.HasLastMove {
		r.DrawLastMove(screen, snap.LastMove.From, snap.LastMove.To)
	}
	r.DrawMarks(screen, snap.Marks)

	origin, selected := snap.State.Selected()
	if selected {
		r.DrawSelected(screen, origin)
		if g.prefs.ShowHints {
			r.DrawHints(screen, &snap.Board, snap.Targets)
		}
	}

	r.DrawPieces(screen, &snap.Board, g.feedback.Animations())

	if carried, ok := snap.State.CarriedPiece(); ok {
		if snap.State.IsDragging() {
			mx, my := g.input.MousePosition()
			r.DrawDraggedPiece(screen, carried, mx, my)
		} else {
			r.DrawPieceOnSquare(screen, carried, origin)
		}
	}

	g.feedback.Draw(screen, r)
	g.menu.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
