// Package ui draws the board and routes Ebitengine input into the
// interaction controller.
package ui

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularSrc  *text.GoTextFaceSource
	boldSrc     *text.GoTextFaceSource
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularSrc, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("load regular font: %w", fontErr)
			return
		}
		boldSrc, fontErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("load bold font: %w", fontErr)
			return
		}
		regularFace = &text.GoTextFace{Source: regularSrc, Size: defaultFontSize}
		boldFace = &text.GoTextFace{Source: boldSrc, Size: titleFontSize}
	})
	return fontErr
}

// GetRegularFace returns the regular font face, or nil if fonts failed to load.
func GetRegularFace() *text.GoTextFace {
	if loadFonts() != nil {
		return nil
	}
	return regularFace
}

// GetBoldFace returns the bold font face, or nil if fonts failed to load.
func GetBoldFace() *text.GoTextFace {
	if loadFonts() != nil {
		return nil
	}
	return boldFace
}

// NotationFace returns a face for rank and file labels sized to the tile.
// name selects "bold"; anything else is regular.
func NotationFace(name string, tileSize int) *text.GoTextFace {
	if loadFonts() != nil {
		return nil
	}
	src := regularSrc
	if name == "bold" {
		src = boldSrc
	}
	size := float64(tileSize) * 0.16
	if size < 8 {
		size = 8
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
