// Package sprites rasterizes the embedded SVG piece set.
package sprites

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

type cacheKey struct {
	piece board.Piece
	size  int
}

// Cache renders piece images on demand and keeps them by (piece, size).
type Cache struct {
	mu     sync.RWMutex
	images map[cacheKey]*image.RGBA
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{images: make(map[cacheKey]*image.RGBA)}
}

// Piece returns p rendered into a size x size image.
func (c *Cache) Piece(p board.Piece, size int) (*image.RGBA, error) {
	key := cacheKey{piece: p, size: size}

	c.mu.RLock()
	img, ok := c.images[key]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := Render(p, size)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()

	return img, nil
}

// Render rasterizes p's SVG into a new size x size image.
func Render(p board.Piece, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}

	name, err := AssetName(p)
	if err != nil {
		return nil, err
	}
	data, err := pieceAssets.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// AssetName returns the embedded file path for p.
func AssetName(p board.Piece) (string, error) {
	if p.IsNone() {
		return "", fmt.Errorf("no asset for empty square")
	}

	prefix := "w"
	if p.Color == board.Black {
		prefix = "b"
	}

	var suffix string
	switch p.Type {
	case board.King:
		suffix = "K"
	case board.Queen:
		suffix = "Q"
	case board.Rook:
		suffix = "R"
	case board.Bishop:
		suffix = "B"
	case board.Knight:
		suffix = "N"
	case board.Pawn:
		suffix = "P"
	default:
		return "", fmt.Errorf("no asset for piece type %v", p.Type)
	}

	return fmt.Sprintf("assets/pieces/%s%s.svg", prefix, suffix), nil
}

// AllPieces lists the twelve colour/type combinations.
func AllPieces() []board.Piece {
	types := []board.PieceType{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King}
	pieces := make([]board.Piece, 0, 12)
	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range types {
			pieces = append(pieces, board.NewPiece(pt, c))
		}
	}
	return pieces
}
