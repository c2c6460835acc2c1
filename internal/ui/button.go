// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/pkg/palette"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.Color
	BgColor   color.RGBA
	Face      text.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, bg color.RGBA, face text.Face) *Button {
	return &Button{
		Rect:      rect,
		Text:      label,
		TextColor: config.TextLightColor,
		BgColor:   bg,
		Face:      face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; под курсором она темнее.
func (b *Button) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = palette.DarkenColor(bg)
	}
	// Тень, заливка, рамка
	vector.DrawFilledRect(screen, x+6, y+6, w, h, config.OutlineColor, false)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 4, config.OutlineColor, false)

	render.Label{
		Face:      b.Face,
		Color:     b.TextColor,
		Outline:   config.OutlineColor,
		Thickness: 2,
		Align:     render.AlignCenter,
	}.Draw(screen, b.Text, float64(x+w/2), float64(y+h/2))
}
