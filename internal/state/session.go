// internal/state/session.go
package state

import (
	"time"

	"go-sanity-survival/internal/app"
	"go-sanity-survival/internal/assets"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/internal/ui"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Session: всё, что экраны хоста делят между собой: ядро игры,
// очередь ввода, часы кадров и виджеты.
type Session struct {
	Game     *app.Game
	Queue    *input.Queue
	Clock    *app.FrameClock
	Controls *Controls
	Renderer *render.WorldRenderer
	Fonts    *assets.FontManager
	Status   *ui.StatusBar
	Sanity   *ui.SanityBar
	Level    *ui.LevelIndicator
	Overlays *ui.Overlays
	DPad     *ui.DPad
	Logger   zerolog.Logger
}

func NewSession(game *app.Game, fonts *assets.FontManager, logger zerolog.Logger) *Session {
	s := &Session{
		Game:     game,
		Queue:    input.NewQueue(),
		Clock:    &app.FrameClock{},
		Controls: NewControls(),
		Renderer: render.NewWorldRenderer(game.Catalog, fonts.Face),
		Fonts:    fonts,
		Status:   ui.NewStatusBar(fonts.Face(18), game.Muted()),
		Sanity:   ui.NewSanityBar(fonts.Face(16)),
		Level:    ui.NewLevelIndicator(fonts.Face(24)),
		Overlays: ui.NewOverlays(fonts),
		DPad:     ui.NewDPad(),
		Logger:   logger,
	}
	s.Status.Subscribe(game.EventDispatcher)
	return s
}

// Step отдаёт ядру накопленный ввод. После снятия паузы и старта уровня
// часы кадров синхронизируются, чтобы пауза не попала в следующий кадр.
func (s *Session) Step(elapsedMillis float64) []event.Event {
	events := s.Game.Step(elapsedMillis, s.Queue.Drain())
	for _, e := range events {
		switch e.Type {
		case event.Resumed, event.LevelStarted:
			s.Clock.Reset(time.Now())
		}
	}
	return events
}

// HandleCommonInput: кнопки, доступные на любом экране: звук.
func (s *Session) HandleCommonInput() {
	if s.Controls.MutePressed() {
		s.Queue.Trigger(input.ToggleMute)
	}
	if x, y, ok := s.Controls.JustClicked(); ok && s.Status.SoundButton.IsClicked(x, y) {
		s.Queue.Trigger(input.ToggleMute)
	}
}

// DrawWorld рисует поле, индикаторы поверх него и нижнюю панель.
func (s *Session) DrawWorld(screen *ebiten.Image) {
	w := s.Game.World
	s.Renderer.Draw(screen, w)
	s.Sanity.Draw(screen, w.Player.Sanity)
	s.Level.Draw(screen, w.Run.Level, w.Run.LevelTimeRemaining)
	s.DPad.Draw(screen, s.Controls.Held)
	s.Status.Draw(screen)
}
