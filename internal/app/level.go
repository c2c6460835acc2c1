// internal/app/level.go
package app

import (
	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/event"
)

// advanceLevel запускает следующий уровень после перехода.
// Рассудок частично восстанавливается, но не выше максимума.
func (g *Game) advanceLevel(level int) {
	g.World.Player.AdjustSanity(config.LevelSanityRestore, config.MaxSanity)
	g.initLevel(level)
}

// initLevel очищает поле, возвращает игрока в центр и заселяет уровень.
func (g *Game) initLevel(level int) {
	run := &g.World.Run
	run.Level = level
	run.LevelTimeRemaining = config.LevelDuration
	run.LevelUpRemaining = 0

	g.World.ClearEntities()
	g.World.ResetPlayer()
	g.SpawnSystem.PopulateLevel()

	g.World.Phase = component.PhasePlaying
	g.resync = true
	g.recorder.Emit(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: level}})
	g.logger.Debug().
		Int("level", level).
		Int("enemies", len(g.World.Enemies)).
		Int("sanity", g.World.Player.Sanity).
		Msg("level started")
}
