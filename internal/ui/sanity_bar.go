// internal/ui/sanity_bar.go
package ui

import (
	"fmt"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SanityBar отображает рассудок игрока полосой по центру верха поля.
type SanityBar struct {
	X, Y          float32
	Width, Height float32
	Face          text.Face
}

// NewSanityBar создает полосу рассудка по центру экрана.
func NewSanityBar(face text.Face) *SanityBar {
	return &SanityBar{
		X:      float32(config.ScreenWidth-config.SanityBarWidth) / 2,
		Y:      config.SanityBarY,
		Width:  config.SanityBarWidth,
		Height: config.SanityBarHeight,
		Face:   face,
	}
}

func (b *SanityBar) Draw(screen *ebiten.Image, sanity int) {
	fill := b.Width * float32(sanity) / config.MaxSanity

	vector.DrawFilledRect(screen, b.X+5, b.Y+5, b.Width, b.Height, config.BarShadowColor, false)
	vector.DrawFilledRect(screen, b.X-4, b.Y-4, b.Width+8, b.Height+8, config.OutlineColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.SanityTrackColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, fill, b.Height, config.SanityColor(sanity), false)

	render.Label{
		Face:      b.Face,
		Color:     config.TextLightColor,
		Outline:   config.OutlineColor,
		Thickness: 2,
		Align:     render.AlignCenter,
	}.Draw(screen, fmt.Sprintf("SANITY: %d%%", sanity), float64(b.X+b.Width/2), float64(b.Y+b.Height/2))
}
