// internal/ui/status_bar.go
package ui

import (
	"fmt"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatusBar: нижняя панель под полем: уровень, счёт и кнопки.
// Значения приходят только из уведомлений игры.
type StatusBar struct {
	Level       int
	ScoreText   string
	PauseButton *PauseButton
	SoundButton *SoundButton
	label       render.Label
}

func NewStatusBar(face text.Face, muted bool) *StatusBar {
	y := float32(config.ScreenHeight + config.HUDHeight/2)
	return &StatusBar{
		Level:       1,
		ScoreText:   "0",
		PauseButton: NewPauseButton(config.ScreenWidth-40, y, config.ButtonSize/2),
		SoundButton: NewSoundButton(config.ScreenWidth-90, y, config.ButtonSize/2, muted),
		label:       render.Label{Face: face, Color: config.TextLightColor},
	}
}

// Subscribe подписывает панель на уведомления
func (s *StatusBar) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.LevelChanged, event.ScoreChanged, event.MuteToggled,
		event.PauseOverlay, event.Resumed)
}

func (s *StatusBar) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelChanged:
		if data, ok := e.Data.(event.LevelData); ok {
			s.Level = data.Level
		}
	case event.ScoreChanged:
		if data, ok := e.Data.(event.ScoreData); ok {
			s.ScoreText = data.Text
		}
	case event.MuteToggled:
		if data, ok := e.Data.(event.MuteData); ok {
			s.SoundButton.SetMuted(data.Muted)
		}
	case event.PauseOverlay:
		s.PauseButton.SetPaused(true)
	case event.Resumed:
		s.PauseButton.SetPaused(false)
	}
}

func (s *StatusBar) Draw(screen *ebiten.Image) {
	top := float32(config.ScreenHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	vector.StrokeLine(screen, 0, top, config.ScreenWidth, top, 2, config.OutlineColor, false)

	y := float64(top + config.HUDHeight/2)
	s.label.Draw(screen, fmt.Sprintf("LEVEL: %d/%d", s.Level, config.MaxLevel), 20, y)
	s.label.Draw(screen, "SCORE: "+s.ScoreText, 220, y)
	s.PauseButton.Draw(screen)
	s.SoundButton.Draw(screen)
}
