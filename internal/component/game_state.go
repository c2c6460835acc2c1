// internal/component/game_state.go
package component

// Phase — фаза игры
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseLevelUp
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelUp:
		return "levelup"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Run — состояние текущего забега
type Run struct {
	Level              int     // [1, MaxLevel]
	Score              int     // накопленный ("банкованный") счёт
	GameTime           float64 // секунд с начала забега
	LevelTimeRemaining float64 // секунд до конца уровня
	FireCooldown       float64 // кадров до следующего выстрела
	LevelUpRemaining   float64 // мс до начала следующего уровня
	Won                bool
}
