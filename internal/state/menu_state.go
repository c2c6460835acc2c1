// internal/state/menu_state.go
package state

import (
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState: титульный экран до первого забега
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(elapsedMillis float64) {
	s := m.session
	s.HandleCommonInput()
	if s.Controls.ConfirmPressed() {
		s.Queue.Trigger(input.Start)
	}
	if x, y, ok := s.Controls.JustClicked(); ok && s.Overlays.StartButton.Contains(x, y) {
		s.Queue.Trigger(input.Start)
	}

	for _, e := range s.Step(elapsedMillis) {
		if e.Type == event.RunStarted {
			m.sm.SetState(NewGameState(m.sm, s))
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.DrawWorld(screen)
	m.session.Overlays.DrawMenu(screen)
}

func (m *MenuState) Exit() {}
