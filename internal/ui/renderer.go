package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	HintColor      color.RGBA
	LastMoveColor  color.RGBA
	MarkerFill     color.RGBA
	MarkerRing     color.RGBA
	Background     color.RGBA
}

// ThemeFromConfig builds a theme around the configured tile and marker colours.
func ThemeFromConfig(bc config.BoardConfig) *Theme {
	marker := bc.Marker.RGBA()
	return &Theme{
		LightSquare:    bc.Light.RGBA(),
		DarkSquare:     bc.Dark.RGBA(),
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		HintColor:      color.RGBA{40, 40, 40, 90},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		MarkerFill:     color.RGBA{marker.R, marker.G, marker.B, 110},
		MarkerRing:     color.RGBA{marker.R, marker.G, marker.B, 230},
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites      *SpriteManager
	theme        *Theme
	geom         layout.Geometry
	notationFace *text.GoTextFace
}

// NewRenderer creates a renderer for the given geometry.
func NewRenderer(geom layout.Geometry, theme *Theme, sprites *SpriteManager, fontName string) *Renderer {
	return &Renderer{
		sprites:      sprites,
		theme:        theme,
		geom:         geom,
		notationFace: NotationFace(fontName, geom.TileSize),
	}
}

func (r *Renderer) tileColor(sq board.Square) color.RGBA {
	if (sq.Row+sq.Col)%2 == 0 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

func (r *Renderer) otherTileColor(sq board.Square) color.RGBA {
	if (sq.Row+sq.Col)%2 == 0 {
		return r.theme.DarkSquare
	}
	return r.theme.LightSquare
}

// DrawBoard draws the 64 tiles. a8 (row 0, col 0) is light.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	ts := float32(r.geom.TileSize)
	for _, sq := range board.AllSquares() {
		x, y := r.geom.SquareToScreen(sq)
		vector.DrawFilledRect(screen, float32(x), float32(y), ts, ts, r.tileColor(sq), false)
	}
}

// DrawNotation labels ranks down the left edge and files along the bottom,
// each in the colour of the opposite tile so it reads on either shade.
func (r *Renderer) DrawNotation(screen *ebiten.Image) {
	face := r.notationFace
	if face == nil {
		return
	}
	pad := float64(r.geom.TileSize) * 0.05
	for row := 0; row < board.Size; row++ {
		sq := board.NewSquare(row, 0)
		label := string(rune('8' - row))
		x, y := r.geom.SquareToScreen(sq)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+pad, float64(y)+pad)
		op.ColorScale.ScaleWithColor(r.otherTileColor(sq))
		text.Draw(screen, label, face, op)
	}
	for col := 0; col < board.Size; col++ {
		sq := board.NewSquare(board.Size-1, col)
		label := string(rune('a' + col))
		w, h := MeasureText(label, face)
		x, y := r.geom.SquareToScreen(sq)
		ts := float64(r.geom.TileSize)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+ts-w-pad, float64(y)+ts-h-pad)
		op.ColorScale.ScaleWithColor(r.otherTileColor(sq))
		text.Draw(screen, label, face, op)
	}
}

// DrawLastMove tints the origin and destination of the last committed move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, from, to board.Square) {
	r.highlightSquare(screen, from, r.theme.LastMoveColor)
	r.highlightSquare(screen, to, r.theme.LastMoveColor)
}

// DrawSelected highlights the square a piece was lifted from.
func (r *Renderer) DrawSelected(screen *ebiten.Image, sq board.Square) {
	r.highlightSquare(screen, sq, r.theme.SelectedSquare)
}

// DrawMarks draws every annotated square as a translucent fill with a ring.
func (r *Renderer) DrawMarks(screen *ebiten.Image, marks []board.Square) {
	ts := float32(r.geom.TileSize)
	stroke := ts * 0.06
	for _, sq := range marks {
		r.highlightSquare(screen, sq, r.theme.MarkerFill)
		cx, cy := r.geom.Center(sq)
		vector.StrokeCircle(screen, float32(cx), float32(cy), ts/2-stroke, stroke, r.theme.MarkerRing, true)
	}
}

// DrawHints draws a dot on every square the carried piece may move to.
// Occupied targets get a ring instead so the piece stays visible.
func (r *Renderer) DrawHints(screen *ebiten.Image, b *board.Board, targets []board.Square) {
	ts := float32(r.geom.TileSize)
	for _, sq := range targets {
		cx, cy := r.geom.Center(sq)
		if _, occupied := b.PieceAt(sq); occupied {
			vector.StrokeCircle(screen, float32(cx), float32(cy), ts*0.45, ts*0.07, r.theme.HintColor, true)
			continue
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), ts*0.15, r.theme.HintColor, true)
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.Valid() {
		return
	}
	x, y := r.geom.SquareToScreen(sq)
	ts := float32(r.geom.TileSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), ts, ts, c, false)
}

// DrawPieces draws every piece on b, applying any active shake offsets.
// A carried piece is not on b, so it is never drawn here.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for _, sq := range board.AllSquares() {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := r.geom.SquareToScreen(sq)
		fx, fy := float64(x), float64(y)
		if anims != nil {
			dx, dy := anims.GetShakeOffset(sq)
			fx += dx
			fy += dy
		}
		r.sprites.DrawPieceAt(screen, p, fx, fy)
	}
}

// DrawPieceOnSquare draws p on sq, used for a lifted piece that has not moved.
func (r *Renderer) DrawPieceOnSquare(screen *ebiten.Image, p board.Piece, sq board.Square) {
	x, y := r.geom.SquareToScreen(sq)
	r.sprites.DrawPieceAt(screen, p, float64(x), float64(y))
}

// DrawDraggedPiece draws p centred on the cursor.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, p board.Piece, mouseX, mouseY int) {
	half := float64(r.geom.TileSize) / 2
	r.sprites.DrawPieceAt(screen, p, float64(mouseX)-half, float64(mouseY)-half)
}

// Geometry returns the board geometry.
func (r *Renderer) Geometry() layout.Geometry {
	return r.geom
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
