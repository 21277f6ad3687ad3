package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/sprites"
)

// renderScale rasterizes SVGs larger than the tile so downscaling stays sharp.
const renderScale = 3

// SpriteManager holds one GPU image per piece, rendered for a tile size.
type SpriteManager struct {
	pieces map[board.Piece]*ebiten.Image
	size   int
}

// NewSpriteManager rasterizes every piece through cache. Pieces that fail
// to render are logged and drawn as nothing.
func NewSpriteManager(cache *sprites.Cache, size int, log *zap.Logger) *SpriteManager {
	sm := &SpriteManager{
		pieces: make(map[board.Piece]*ebiten.Image),
		size:   size,
	}
	for _, p := range sprites.AllPieces() {
		img, err := cache.Piece(p, size*renderScale)
		if err != nil {
			log.Warn("piece sprite unavailable", zap.Stringer("piece", p), zap.Error(err))
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(img)
	}
	return sm
}

// GetPiece returns the sprite for a piece, or nil.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	img := sm.pieces[p]
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := float64(sm.size) / float64(img.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// Size returns the display size of a piece in pixels.
func (sm *SpriteManager) Size() int {
	return sm.size
}
