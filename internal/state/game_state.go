// internal/state/game_state.go
package state

import (
	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState: экран игры: уровень идёт или показывается переход.
type GameState struct {
	sm        *StateMachine
	session   *Session
	nextLevel int
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	g.session.Logger.Debug().Str("run", g.session.Game.RunID()).Msg("game screen")
}

func (g *GameState) Update(elapsedMillis float64) {
	s := g.session
	s.HandleCommonInput()
	s.Controls.PollMovement(s.Queue, s.DPad)
	if s.Controls.PausePressed() {
		s.Queue.Trigger(input.Pause)
	}
	if x, y, ok := s.Controls.JustClicked(); ok && s.Status.PauseButton.IsClicked(x, y) {
		s.Queue.Trigger(input.Pause)
	}

	for _, e := range s.Step(elapsedMillis) {
		switch e.Type {
		case event.LevelUpOverlay:
			if data, ok := e.Data.(event.LevelData); ok {
				g.nextLevel = data.Level
			}
		case event.PauseOverlay:
			g.sm.SetState(NewPauseState(g.sm, g, s))
			return
		case event.GameOverOverlay:
			if data, ok := e.Data.(event.GameOverData); ok {
				g.sm.SetState(NewGameOverState(g.sm, s, data))
				return
			}
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.DrawWorld(screen)
	if g.session.Game.Phase() == component.PhaseLevelUp {
		run := g.session.Game.World.Run
		progress := 1 - run.LevelUpRemaining/config.LevelUpDuration
		g.session.Overlays.DrawLevelUp(screen, g.nextLevel, progress)
	}
}

func (g *GameState) Exit() {}
