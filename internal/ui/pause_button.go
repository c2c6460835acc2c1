// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-sanity-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton: круглая кнопка паузы в нижней панели. На паузе рисует «play».
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: config.PauseButtonColor,
		PlayColor:  config.PlayButtonColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size*0.8, b.Y-size)
		path.LineTo(b.X-size*0.8, b.Y+size)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		strokePath(screen, &path, config.TextLightColor)
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	for _, x := range []float32{left, right} {
		vector.DrawFilledRect(screen, x, top, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, top, width, height, 1, config.TextLightColor, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.3)
}

// SetPaused меняет иконку и запускает анимацию нажатия при смене состояния
func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
