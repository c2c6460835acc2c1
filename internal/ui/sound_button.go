// internal/ui/sound_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-sanity-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundButton: динамик с волнами; без звука волны заменяются крестом.
type SoundButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Muted         bool
	OnColor       color.Color
	OffColor      color.Color
}

func NewSoundButton(x, y, size float32, muted bool) *SoundButton {
	return &SoundButton{
		X:        x,
		Y:        y,
		Size:     size,
		Muted:    muted,
		OnColor:  config.SoundOnColor,
		OffColor: config.SoundOffColor,
	}
}

func (b *SoundButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	clr := b.OnColor
	if b.Muted {
		clr = b.OffColor
	}

	// Корпус динамика и раструб
	var path vector.Path
	path.MoveTo(b.X-s, b.Y-s*0.4)
	path.LineTo(b.X-s*0.5, b.Y-s*0.4)
	path.LineTo(b.X, b.Y-s)
	path.LineTo(b.X, b.Y+s)
	path.LineTo(b.X-s*0.5, b.Y+s*0.4)
	path.LineTo(b.X-s, b.Y+s*0.4)
	path.Close()
	fillPath(screen, &path, clr)
	strokePath(screen, &path, config.TextLightColor)

	if b.Muted {
		vector.StrokeLine(screen, b.X+s*0.3, b.Y-s*0.5, b.X+s, b.Y+s*0.5, 3, config.LoseTitleColor, true)
		vector.StrokeLine(screen, b.X+s*0.3, b.Y+s*0.5, b.X+s, b.Y-s*0.5, 3, config.LoseTitleColor, true)
		return
	}
	for i, r := range []float32{s * 0.5, s * 0.9} {
		var arc vector.Path
		arc.Arc(b.X, b.Y, r, -math.Pi/4, math.Pi/4, vector.Clockwise)
		strokeOpen(screen, &arc, clr, float32(3-i))
	}
}

func (b *SoundButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SoundButton) SetMuted(muted bool) {
	if b.Muted != muted {
		b.LastClickTime = time.Now()
	}
	b.Muted = muted
}
