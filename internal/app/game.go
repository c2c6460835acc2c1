// internal/app/game.go
package app

import (
	"math"
	"strconv"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/defs"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/internal/system"
	"go-sanity-survival/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options: параметры создания игры
type Options struct {
	Seed    int64 // 0: сид от времени
	Muted   bool
	Catalog *defs.Catalog // nil: встроенный каталог
	Logger  zerolog.Logger
}

// Game holds the simulation core: world, systems and phase machine.
// Ввод поступает только через Step, наружу уходят только события.
type Game struct {
	World              *entity.World
	Catalog            *defs.Catalog
	Rng                *utils.PRNGService
	EventDispatcher    *event.Dispatcher
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PickupSystem       *system.PickupSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	SpawnSystem        *system.SpawnSystem

	recorder *event.Recorder
	logger   zerolog.Logger
	runID    string
	muted    bool
	// Следующий кадр в фазе Playing не симулируется: его длительность
	// включает время паузы или перехода.
	resync bool

	lastLevel int
	lastScore string
}

// NewGame initializes a new game instance in the menu phase.
func NewGame(opts Options) *Game {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = defs.MustLoadBuiltin()
	}

	world := entity.NewWorld()
	rng := utils.NewPRNGService(opts.Seed)
	recorder := &event.Recorder{}
	g := &Game{
		World:              world,
		Catalog:            catalog,
		Rng:                rng,
		EventDispatcher:    event.NewDispatcher(),
		MovementSystem:     system.NewMovementSystem(world),
		ProjectileSystem:   system.NewProjectileSystem(world, rng, recorder),
		CombatSystem:       system.NewCombatSystem(world, rng, recorder),
		PickupSystem:       system.NewPickupSystem(world, rng, recorder),
		VisualEffectSystem: system.NewVisualEffectSystem(world),
		PlayerSystem:       system.NewPlayerSystem(world),
		SpawnSystem:        system.NewSpawnSystem(world, rng, catalog.EnemyCount()),
		recorder:           recorder,
		logger:             opts.Logger,
		muted:              opts.Muted,
	}
	g.logger.Debug().Int64("seed", rng.Seed()).Msg("game created")
	return g
}

// Step продвигает игру на один кадр хоста. elapsedMillis: реальное время
// с прошлого кадра, snap: ввод, накопленный за кадр. Возвращает события
// кадра; те же события рассылаются через EventDispatcher.
func (g *Game) Step(elapsedMillis float64, snap input.Snapshot) []event.Event {
	for _, cmd := range snap.Triggers {
		g.handleCommand(cmd)
	}

	switch g.World.Phase {
	case component.PhasePlaying:
		g.stepPlaying(elapsedMillis, snap)
	case component.PhaseLevelUp:
		g.stepLevelUp(elapsedMillis)
	}

	g.emitHUD()

	events := g.recorder.Flush()
	for _, e := range events {
		g.EventDispatcher.Dispatch(e)
	}
	return events
}

func (g *Game) handleCommand(cmd input.Command) {
	switch cmd {
	case input.Start:
		if g.World.Phase == component.PhaseMenu || g.World.Phase == component.PhaseGameOver {
			g.StartRun()
		}
	case input.Pause:
		g.Pause()
	case input.Resume:
		g.Resume()
	case input.ToggleMute:
		g.ToggleMute()
	case input.Fire:
		if g.World.Phase == component.PhasePlaying {
			g.ProjectileSystem.Fire()
		}
	}
}

// StartRun начинает забег с первого уровня: счёт, время и рассудок
// сбрасываются полностью.
func (g *Game) StartRun() {
	run := &g.World.Run
	*run = component.Run{}
	g.World.Player.SetSanity(config.MaxSanity, config.MaxSanity)
	g.World.Effects = component.Effects{}
	g.runID = uuid.NewString()
	g.lastLevel, g.lastScore = 0, ""

	g.recorder.Emit(event.Event{Type: event.RunStarted, Data: event.RunData{RunID: g.runID}})
	g.logger.Info().Str("run", g.runID).Msg("run started")
	g.initLevel(1)
}

// Pause работает только во время игры. Повторная пауза ничего не меняет.
func (g *Game) Pause() {
	if g.World.Phase != component.PhasePlaying {
		return
	}
	g.World.Phase = component.PhasePaused
	g.recorder.Emit(event.Event{Type: event.PauseOverlay})
	g.logger.Debug().Int("level", g.World.Run.Level).Msg("paused")
}

// Resume снимает паузу. Время, проведённое на паузе, не засчитывается.
func (g *Game) Resume() {
	if g.World.Phase != component.PhasePaused {
		return
	}
	g.World.Phase = component.PhasePlaying
	g.resync = true
	g.recorder.Emit(event.Event{Type: event.Resumed})
	g.logger.Debug().Int("level", g.World.Run.Level).Msg("resumed")
}

func (g *Game) ToggleMute() {
	g.muted = !g.muted
	g.recorder.Emit(event.Event{Type: event.MuteToggled, Data: event.MuteData{Muted: g.muted}})
}

func (g *Game) stepPlaying(elapsedMillis float64, snap input.Snapshot) {
	if g.resync {
		g.resync = false
		return
	}
	// Слишком длинный кадр (вкладка была скрыта) выбрасывается целиком
	if math.IsNaN(elapsedMillis) || elapsedMillis <= 0 || elapsedMillis > config.MaxFrameElapsed {
		return
	}

	run := &g.World.Run
	dt := elapsedMillis / 1000
	run.LevelTimeRemaining -= dt
	run.GameTime += dt
	factor := elapsedMillis / config.FrameDuration

	g.MovementSystem.Update(factor, snap)
	g.ProjectileSystem.Update(factor)
	if g.CombatSystem.Update(factor) {
		g.endRun(false, 0)
		return
	}
	g.PickupSystem.Update(factor)
	g.VisualEffectSystem.Update(factor)
	g.PlayerSystem.Update(factor)
	g.VisualEffectSystem.UpdateScreen(factor)
	g.SpawnSystem.Update(factor)

	if run.LevelTimeRemaining <= 0 {
		g.completeLevel()
	}
}

func (g *Game) stepLevelUp(elapsedMillis float64) {
	if math.IsNaN(elapsedMillis) || elapsedMillis < 0 {
		return
	}
	run := &g.World.Run
	run.LevelUpRemaining -= elapsedMillis
	if run.LevelUpRemaining > 0 {
		return
	}
	run.LevelUpRemaining = 0
	g.advanceLevel(run.Level + 1)
}

// completeLevel банкует счёт уровня и либо показывает переход,
// либо завершает забег победой на последнем уровне.
func (g *Game) completeLevel() {
	run := &g.World.Run
	sanity := g.World.Player.Sanity
	if run.Level >= config.MaxLevel {
		g.endRun(sanity > 0, sanity)
		return
	}

	run.Score = system.FinalScore(run, sanity)
	run.LevelTimeRemaining = 0
	run.LevelUpRemaining = config.LevelUpDuration
	g.World.Phase = component.PhaseLevelUp
	g.recorder.Emit(event.Event{Type: event.LevelUpOverlay, Data: event.LevelData{Level: run.Level + 1}})
	g.logger.Info().Int("level", run.Level).Int("score", run.Score).Msg("level complete")
}

func (g *Game) endRun(win bool, sanity int) {
	run := &g.World.Run
	run.Score = system.FinalScore(run, sanity)
	run.Won = win
	g.World.Phase = component.PhaseGameOver
	g.recorder.Emit(event.Event{
		Type: event.GameOverOverlay,
		Data: event.GameOverData{Win: win, FinalScore: run.Score, Level: run.Level},
	})
	g.logger.Info().
		Str("run", g.runID).
		Bool("win", win).
		Int("level", run.Level).
		Int("score", run.Score).
		Msg("run finished")
}

// emitHUD отправляет уровень и строку счёта, только если они изменились.
// После конца забега строка счёта совпадает с итоговым счётом.
func (g *Game) emitHUD() {
	if g.World.Phase == component.PhaseMenu {
		return
	}
	run := &g.World.Run
	if run.Level != g.lastLevel {
		g.lastLevel = run.Level
		g.recorder.Emit(event.Event{Type: event.LevelChanged, Data: event.LevelData{Level: run.Level}})
	}
	score := system.LiveScore(run)
	if g.World.Phase == component.PhaseGameOver {
		// Итоговый счёт уже посчитан в endRun, бонусы второй раз не добавляются
		score = run.Score
	}
	text := strconv.Itoa(score)
	if text != g.lastScore {
		g.lastScore = text
		g.recorder.Emit(event.Event{Type: event.ScoreChanged, Data: event.ScoreData{Score: score, Text: text}})
	}
}

func (g *Game) Phase() component.Phase { return g.World.Phase }

func (g *Game) Muted() bool { return g.muted }

// RunID: идентификатор текущего забега, пустой до первого старта
func (g *Game) RunID() string { return g.runID }

// LiveScore: счёт, который показывает HUD
func (g *Game) LiveScore() int { return system.LiveScore(&g.World.Run) }
