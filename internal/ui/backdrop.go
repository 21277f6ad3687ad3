package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 9-tap separable Gaussian. Dir is (Sigma, 0) for the horizontal pass and
// (0, Sigma) for the vertical one.
var blurShaderSrc = []byte(`
//kage:unit pixels

package main

var Dir vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    var result vec4
    result += imageSrc0At(srcPos - 4*Dir) * 0.0162
    result += imageSrc0At(srcPos - 3*Dir) * 0.0540
    result += imageSrc0At(srcPos - 2*Dir) * 0.1218
    result += imageSrc0At(srcPos - 1*Dir) * 0.1954
    result += imageSrc0At(srcPos) * 0.2252
    result += imageSrc0At(srcPos + 1*Dir) * 0.1954
    result += imageSrc0At(srcPos + 2*Dir) * 0.1218
    result += imageSrc0At(srcPos + 3*Dir) * 0.0540
    result += imageSrc0At(srcPos + 4*Dir) * 0.0162
    return result
}
`)

// Backdrop blurs whatever is already on screen behind a modal. Without
// shader support it falls back to a flat tint.
type Backdrop struct {
	blur    *ebiten.Shader
	tempA   *ebiten.Image
	tempB   *ebiten.Image
	enabled bool
}

// NewBackdrop compiles the blur shader.
func NewBackdrop() *Backdrop {
	b := &Backdrop{}
	s, err := ebiten.NewShader(blurShaderSrc)
	if err != nil {
		return b
	}
	b.blur = s
	b.enabled = true
	return b
}

// IsEnabled returns whether the blur is available.
func (b *Backdrop) IsEnabled() bool {
	return b != nil && b.enabled
}

func (b *Backdrop) ensureImages(w, h int) {
	if b.tempA == nil || b.tempA.Bounds().Dx() != w || b.tempA.Bounds().Dy() != h {
		b.tempA = ebiten.NewImage(w, h)
		b.tempB = ebiten.NewImage(w, h)
	}
}

// Draw blurs rect of screen by sigma pixels and lays tint over it.
func (b *Backdrop) Draw(screen *ebiten.Image, rect image.Rectangle, tint color.RGBA, sigma float64) {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if b.IsEnabled() {
		b.ensureImages(w, h)

		b.tempA.Clear()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(-rect.Min.X), float64(-rect.Min.Y))
		b.tempA.DrawImage(screen, op)

		b.pass(b.tempB, b.tempA, float32(sigma), 0)
		b.pass(b.tempA, b.tempB, 0, float32(sigma))

		back := &ebiten.DrawImageOptions{}
		back.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		screen.DrawImage(b.tempA, back)
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(w), float32(h), tint, false)
}

func (b *Backdrop) pass(dst, src *ebiten.Image, dx, dy float32) {
	dst.Clear()
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	dst.DrawRectShader(w, h, b.blur, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{"Dir": []float32{dx, dy}},
		Images:   [4]*ebiten.Image{src},
	})
}
