// internal/state/pause_state.go
package state

import (
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState показывает замороженное поле и ждёт продолжения.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	session       *Session
}

func NewPauseState(sm *StateMachine, prevState State, session *Session) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		session:       session,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(elapsedMillis float64) {
	ss := s.session
	ss.HandleCommonInput()
	if ss.Controls.PausePressed() {
		ss.Queue.Trigger(input.Resume)
	}
	if x, y, ok := ss.Controls.JustClicked(); ok {
		if ss.Overlays.ResumeButton.Contains(x, y) || ss.Status.PauseButton.IsClicked(x, y) {
			ss.Queue.Trigger(input.Resume)
		}
	}

	for _, e := range ss.Step(elapsedMillis) {
		if e.Type == event.Resumed {
			s.stateMachine.SetState(s.previousState)
			return
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.session.DrawWorld(screen)
	s.session.Overlays.DrawPause(screen)
}

func (s *PauseState) Exit() {}
