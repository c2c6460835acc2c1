// internal/event/types.go
package event

import "go-sanity-survival/internal/component"

// Уведомления для UI
const (
	LevelChanged    EventType = "LevelChanged"    // Номер уровня изменился
	ScoreChanged    EventType = "ScoreChanged"    // Строка текущего счёта
	PauseOverlay    EventType = "PauseOverlay"    // Показать паузу
	Resumed         EventType = "Resumed"         // Пауза снята, часы нужно синхронизировать
	LevelUpOverlay  EventType = "LevelUpOverlay"  // Показать переход на следующий уровень
	LevelStarted    EventType = "LevelStarted"    // Уровень инициализирован и запущен
	GameOverOverlay EventType = "GameOverOverlay" // Конец игры
	MuteToggled     EventType = "MuteToggled"     // Звук включён/выключен
	RunStarted      EventType = "RunStarted"      // Новый забег
)

// Игровые сигналы (для звука и частиц)
const (
	BulletFired      EventType = "BulletFired"
	EnemyDestroyed   EventType = "EnemyDestroyed"
	PlayerHit        EventType = "PlayerHit"
	OrbCollected     EventType = "OrbCollected"
	PowerUpCollected EventType = "PowerUpCollected"
)

// LevelData — данные LevelChanged / LevelStarted / LevelUpOverlay
type LevelData struct {
	Level int
}

// ScoreData — данные ScoreChanged
type ScoreData struct {
	Score int
	Text  string
}

// GameOverData — данные GameOverOverlay
type GameOverData struct {
	Win        bool
	FinalScore int
	Level      int
}

// MuteData — данные MuteToggled
type MuteData struct {
	Muted bool
}

// RunData — данные RunStarted
type RunData struct {
	RunID string
}

// PowerUpData — данные PowerUpCollected
type PowerUpData struct {
	Kind component.PowerUpKind
}

// Recorder накапливает события, пока кто-то не заберёт их через Flush.
type Recorder struct {
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Flush возвращает накопленные события и очищает буфер
func (r *Recorder) Flush() []Event {
	out := r.events
	r.events = nil
	return out
}
