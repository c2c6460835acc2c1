// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Align is the horizontal anchor of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a piece of text with an optional outline.
type Label struct {
	Face      text.Face
	Color     color.Color
	Outline   color.Color // nil: no outline
	Thickness int
	Align     Align
	Rotation  float64
}

// Draw renders the label with its anchor at (x, y), vertically centred.
func (l Label) Draw(dst *ebiten.Image, s string, x, y float64) {
	if l.Outline != nil && l.Thickness > 0 {
		for dy := -l.Thickness; dy <= l.Thickness; dy++ {
			for dx := -l.Thickness; dx <= l.Thickness; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				l.drawOnce(dst, s, x, y, float64(dx), float64(dy), l.Outline)
			}
		}
	}
	l.drawOnce(dst, s, x, y, 0, 0, l.Color)
}

func (l Label) drawOnce(dst *ebiten.Image, s string, x, y, dx, dy float64, clr color.Color) {
	op := &text.DrawOptions{}
	switch l.Align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(dx, dy)
	if l.Rotation != 0 {
		op.GeoM.Rotate(l.Rotation)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, l.Face, op)
}
