// internal/ui/dpad.go
package ui

import (
	"image/color"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/pkg/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dpadKey    = 44
	dpadMargin = 24
	fireRadius = 40
)

type dpadKeyRect struct {
	cmd  input.Command
	x, y float32
}

// DPad: экранные стрелки и кнопка огня для сенсорного ввода и мыши.
// Видна только после первого касания.
type DPad struct {
	keys    []dpadKeyRect
	fireX   float32
	fireY   float32
	Visible bool
}

func NewDPad() *DPad {
	cx := float32(dpadMargin + dpadKey*1.5)
	cy := float32(config.ScreenHeight - dpadMargin - dpadKey*1.5)
	half := float32(dpadKey) / 2
	return &DPad{
		keys: []dpadKeyRect{
			{input.MoveUp, cx - half, cy - half - dpadKey},
			{input.MoveDown, cx - half, cy + half},
			{input.MoveLeft, cx - half - dpadKey, cy - half},
			{input.MoveRight, cx + half, cy - half},
		},
		fireX: config.ScreenWidth - dpadMargin - fireRadius,
		fireY: cy,
	}
}

// HitTest возвращает команду под точкой: направление или огонь.
func (d *DPad) HitTest(x, y int) (input.Command, bool) {
	fx, fy := float32(x), float32(y)
	for _, k := range d.keys {
		if fx >= k.x && fx < k.x+dpadKey && fy >= k.y && fy < k.y+dpadKey {
			return k.cmd, true
		}
	}
	if inCircle(x, y, d.fireX, d.fireY, fireRadius) {
		return input.Fire, true
	}
	return 0, false
}

// Draw рисует стрелки; held: удерживаемые сейчас направления.
func (d *DPad) Draw(screen *ebiten.Image, held func(input.Command) bool) {
	if !d.Visible {
		return
	}
	pressed := palette.WithAlpha(config.TextLightColor, 0.45)
	for _, k := range d.keys {
		var clr color.Color = config.DPadColor
		if held(k.cmd) {
			clr = pressed
		}
		vector.DrawFilledRect(screen, k.x, k.y, dpadKey, dpadKey, clr, false)
		vector.StrokeRect(screen, k.x, k.y, dpadKey, dpadKey, 2, config.TextLightColor, false)
	}
	vector.DrawFilledCircle(screen, d.fireX, d.fireY, fireRadius, config.DPadColor, true)
	vector.StrokeCircle(screen, d.fireX, d.fireY, fireRadius, 2, config.TextLightColor, true)
}
