// internal/state/gameover_state.go
package state

import (
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState: итог забега и кнопка новой игры
type GameOverState struct {
	sm      *StateMachine
	session *Session
	result  event.GameOverData
}

func NewGameOverState(sm *StateMachine, session *Session, result event.GameOverData) *GameOverState {
	return &GameOverState{sm: sm, session: session, result: result}
}

func (g *GameOverState) Enter() {
	g.session.Controls.ReleaseAll(g.session.Queue)
}

func (g *GameOverState) Update(elapsedMillis float64) {
	s := g.session
	s.HandleCommonInput()
	if s.Controls.ConfirmPressed() {
		s.Queue.Trigger(input.Start)
	}
	if x, y, ok := s.Controls.JustClicked(); ok && s.Overlays.ReplayButton.Contains(x, y) {
		s.Queue.Trigger(input.Start)
	}

	for _, e := range s.Step(elapsedMillis) {
		if e.Type == event.RunStarted {
			g.sm.SetState(NewGameState(g.sm, s))
			return
		}
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	g.session.DrawWorld(screen)
	g.session.Overlays.DrawGameOver(screen, g.result.Win, g.result.Level, g.result.FinalScore)
}

func (g *GameOverState) Exit() {}
