package app

import (
	"strconv"
	"testing"
	"time"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/internal/system"

	"github.com/rs/zerolog"
)

const frame = config.FrameDuration

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{Seed: 42, Logger: zerolog.Nop()})
}

func trig(cmds ...input.Command) input.Snapshot {
	return input.Snapshot{Triggers: cmds}
}

func count(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func find(events []event.Event, typ event.EventType) (event.Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return event.Event{}, false
}

// startPlaying запускает забег и убирает с поля всё, кроме игрока.
func startPlaying(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Step(frame, trig(input.Start))
	if g.Phase() != component.PhasePlaying {
		t.Fatalf("phase after start = %v, want playing", g.Phase())
	}
	g.World.ClearEntities()
	return g
}

func placeEnemyOnPlayer(g *Game) {
	p := g.World.Player
	g.World.Enemies = append(g.World.Enemies, &component.Enemy{
		ID:    g.World.NewEntity(),
		Body:  component.Body{Position: p.Position, Size: config.EnemySize},
		Speed: system.EnemySpeed(g.World.Run.Level),
	})
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)
	if g.Phase() != component.PhaseMenu {
		t.Fatalf("phase = %v, want menu", g.Phase())
	}

	events := g.Step(frame, input.Snapshot{Up: true})
	if len(events) != 0 {
		t.Errorf("menu step emitted %d events", len(events))
	}
	if g.World.Run.GameTime != 0 {
		t.Errorf("menu step advanced time")
	}
}

func TestStartRunInitializesLevel(t *testing.T) {
	g := newTestGame(t)
	events := g.Step(frame, trig(input.Start))

	if count(events, event.RunStarted) != 1 || count(events, event.LevelStarted) != 1 {
		t.Fatalf("unexpected events: %+v", events)
	}
	if g.RunID() == "" {
		t.Error("run id is empty")
	}
	w := g.World
	if w.Run.Level != 1 || w.Run.Score != 0 || w.Player.Sanity != config.MaxSanity {
		t.Errorf("run = %+v, sanity = %d", w.Run, w.Player.Sanity)
	}
	if got, want := len(w.Enemies), system.InitialEnemyCount(1); got != want {
		t.Errorf("enemies = %d, want %d", got, want)
	}
	if len(w.Orbs) != config.InitialOrbs {
		t.Errorf("orbs = %d, want %d", len(w.Orbs), config.InitialOrbs)
	}
	if w.Player.X != config.ScreenWidth/2 || w.Player.Y != config.ScreenHeight/2 {
		t.Errorf("player at (%v, %v), want centre", w.Player.X, w.Player.Y)
	}
	if w.Run.GameTime != 0 {
		t.Errorf("start frame advanced time to %v", w.Run.GameTime)
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame, trig(input.Start))
	id := g.RunID()

	g.Step(frame, input.Snapshot{})
	before := g.World.Run.GameTime

	events := g.Step(frame, trig(input.Start))
	if count(events, event.RunStarted) != 0 {
		t.Error("second start restarted the run")
	}
	if g.RunID() != id {
		t.Error("run id changed")
	}
	if g.World.Run.GameTime <= before {
		t.Error("simulation did not continue after ignored start")
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	g := startPlaying(t)
	g.Step(frame, input.Snapshot{})

	events := g.Step(frame, trig(input.Pause, input.Pause))
	if count(events, event.PauseOverlay) != 1 {
		t.Fatalf("pause overlays = %d, want 1", count(events, event.PauseOverlay))
	}

	snapshot := *g.World
	player := g.World.Player
	for i := 0; i < 10; i++ {
		events = g.Step(frame, trig(input.Pause, input.Fire))
		if count(events, event.PauseOverlay) != 0 || count(events, event.BulletFired) != 0 {
			t.Fatalf("paused step emitted %+v", events)
		}
	}
	if g.World.Run != snapshot.Run {
		t.Errorf("run changed while paused: %+v -> %+v", snapshot.Run, g.World.Run)
	}
	if g.World.Player != player {
		t.Errorf("player changed while paused")
	}
}

func TestResumeDiscardsPausedTime(t *testing.T) {
	g := startPlaying(t)
	g.Step(frame, trig(input.Pause))
	before := g.World.Run.GameTime

	events := g.Step(400, trig(input.Resume))
	if count(events, event.Resumed) != 1 {
		t.Fatalf("resume not emitted: %+v", events)
	}
	if g.World.Run.GameTime != before {
		t.Errorf("resume frame advanced time by %v", g.World.Run.GameTime-before)
	}

	g.Step(frame, input.Snapshot{})
	if g.World.Run.GameTime <= before {
		t.Error("simulation did not continue after resume")
	}

	if count(g.Step(frame, trig(input.Resume)), event.Resumed) != 0 {
		t.Error("resume while playing emitted an event")
	}
}

func TestLongFramesAreDiscarded(t *testing.T) {
	g := startPlaying(t)
	before := g.World.Run

	for _, elapsed := range []float64{config.MaxFrameElapsed + 1, 0, -5} {
		g.Step(elapsed, input.Snapshot{Right: true})
	}
	if g.World.Run != before {
		t.Errorf("run changed on discarded frames: %+v", g.World.Run)
	}
	if g.World.Player.X != config.ScreenWidth/2 {
		t.Errorf("player moved on discarded frames")
	}
}

func TestElapsedScalesMovement(t *testing.T) {
	g := startPlaying(t)
	g.Step(2*frame, input.Snapshot{Right: true})

	want := config.ScreenWidth/2 + 2*config.PlayerSpeed
	if got := g.World.Player.X; got != want {
		t.Errorf("player x = %v, want %v", got, want)
	}
}

func TestContactDealsTenDamageOncePerInvulnerability(t *testing.T) {
	g := startPlaying(t)
	placeEnemyOnPlayer(g)

	events := g.Step(frame, input.Snapshot{})
	if count(events, event.PlayerHit) != 1 {
		t.Fatalf("hits = %d, want 1", count(events, event.PlayerHit))
	}
	if got := g.World.Player.Sanity; got != config.MaxSanity-config.EnemyContactDamage {
		t.Errorf("sanity = %d, want %d", got, config.MaxSanity-config.EnemyContactDamage)
	}
	if g.World.Effects.GlitchTimer <= 0 || g.World.Effects.ShakeAmount <= 0 {
		t.Errorf("hit effects missing: %+v", g.World.Effects)
	}

	hits := 0
	for i := 0; i < int(config.InvulnerableFrames)-1; i++ {
		hits += count(g.Step(frame, input.Snapshot{}), event.PlayerHit)
	}
	if hits != 0 {
		t.Errorf("hits during invulnerability = %d", hits)
	}
}

func TestSanityStaysInBounds(t *testing.T) {
	g := startPlaying(t)
	for i := 0; i < 300; i++ {
		if i%7 == 0 {
			placeEnemyOnPlayer(g)
		}
		if i%11 == 0 {
			p := g.World.Player
			g.World.Orbs = append(g.World.Orbs, &component.Orb{
				ID:   g.World.NewEntity(),
				Body: component.Body{Position: p.Position, Size: config.OrbSize},
			})
		}
		g.Step(frame, input.Snapshot{})
		if s := g.World.Player.Sanity; s < 0 || s > config.MaxSanity {
			t.Fatalf("sanity %d out of bounds at tick %d", s, i)
		}
		if g.Phase() == component.PhaseGameOver {
			return
		}
	}
}

func TestDefeatEndsRunWithoutSanityBonus(t *testing.T) {
	g := startPlaying(t)
	g.Step(frame, input.Snapshot{})
	g.World.Player.Sanity = config.EnemyContactDamage
	placeEnemyOnPlayer(g)
	placeEnemyOnPlayer(g)

	events := g.Step(frame, input.Snapshot{})
	if count(events, event.PlayerHit) != 1 {
		t.Errorf("hits = %d, want 1 (tick ends on defeat)", count(events, event.PlayerHit))
	}
	e, ok := find(events, event.GameOverOverlay)
	if !ok {
		t.Fatalf("no game over in %+v", events)
	}
	data := e.Data.(event.GameOverData)
	if data.Win {
		t.Error("defeat reported as win")
	}
	if want := system.FinalScore(&component.Run{Level: 1, GameTime: g.World.Run.GameTime}, 0); data.FinalScore != want {
		t.Errorf("final score = %d, want %d", data.FinalScore, want)
	}
	if g.Phase() != component.PhaseGameOver {
		t.Errorf("phase = %v", g.Phase())
	}

	before := g.World.Run
	g.Step(frame, trig(input.Fire, input.Pause))
	if g.World.Run != before {
		t.Error("game over state changed without restart")
	}
}

func TestGameOverScoreTextMatchesFinalScore(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		win   bool
	}{
		{"loss", func(g *Game) {
			g.World.Player.Sanity = config.EnemyContactDamage
			placeEnemyOnPlayer(g)
		}, false},
		{"win", func(g *Game) {
			g.World.Run.Level = config.MaxLevel
			g.World.Run.LevelTimeRemaining = 0.001
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			var lastText string
			g.EventDispatcher.Subscribe(event.ScoreChanged, event.ListenerFunc(func(e event.Event) {
				lastText = e.Data.(event.ScoreData).Text
			}))
			g.Step(frame, trig(input.Start))
			g.World.ClearEntities()
			for i := 0; i < 10; i++ {
				g.Step(frame, input.Snapshot{})
			}
			tt.setup(g)

			e, ok := find(g.Step(frame, input.Snapshot{}), event.GameOverOverlay)
			if !ok {
				t.Fatal("run did not end")
			}
			data := e.Data.(event.GameOverData)
			if data.Win != tt.win {
				t.Errorf("win = %v, want %v", data.Win, tt.win)
			}
			if want := strconv.Itoa(data.FinalScore); lastText != want {
				t.Errorf("HUD score = %q, final score = %q", lastText, want)
			}

			g.Step(frame, input.Snapshot{})
			if want := strconv.Itoa(data.FinalScore); lastText != want {
				t.Errorf("HUD score after game over = %q, want %q", lastText, want)
			}
		})
	}
}

func TestFireCooldownLimitsBullets(t *testing.T) {
	g := startPlaying(t)

	fired := 0
	for i := 0; i < 20; i++ {
		fired += count(g.Step(frame, trig(input.Fire)), event.BulletFired)
	}
	if fired != 2 {
		t.Errorf("bullets fired in 20 ticks = %d, want 2", fired)
	}
}

func TestLevelCompletesAfterThirtySeconds(t *testing.T) {
	g := startPlaying(t)

	ticks := 0
	for g.Phase() == component.PhasePlaying && ticks < 2000 {
		g.World.ClearEnemies()
		g.Step(frame, input.Snapshot{})
		ticks++
	}
	if g.Phase() != component.PhaseLevelUp {
		t.Fatalf("phase = %v after %d ticks, want levelup", g.Phase(), ticks)
	}
	if ticks < 1799 || ticks > 1801 {
		t.Errorf("level lasted %d ticks, want about 1800", ticks)
	}
}

func TestLevelUpBanksScoreAndRestoresSanity(t *testing.T) {
	g := startPlaying(t)
	g.World.Player.Sanity = 50
	g.World.Run.LevelTimeRemaining = 0.001
	g.World.Run.Score = 250

	events := g.Step(frame, input.Snapshot{})
	e, ok := find(events, event.LevelUpOverlay)
	if !ok {
		t.Fatalf("no level up overlay in %+v", events)
	}
	if lvl := e.Data.(event.LevelData).Level; lvl != 2 {
		t.Errorf("overlay level = %d, want 2", lvl)
	}
	want := system.FinalScore(&component.Run{Score: 250, Level: 1, GameTime: g.World.Run.GameTime}, 50)
	if g.World.Run.Score != want {
		t.Errorf("banked score = %d, want %d", g.World.Run.Score, want)
	}

	g.Step(config.LevelUpDuration/2, trig(input.Fire))
	if g.Phase() != component.PhaseLevelUp {
		t.Fatal("transition ended early")
	}

	events = g.Step(config.LevelUpDuration, input.Snapshot{})
	if count(events, event.LevelStarted) != 1 || count(events, event.LevelChanged) != 1 {
		t.Fatalf("level 2 not started: %+v", events)
	}
	if g.World.Run.Level != 2 || g.Phase() != component.PhasePlaying {
		t.Errorf("level = %d, phase = %v", g.World.Run.Level, g.Phase())
	}
	if g.World.Player.Sanity != 70 {
		t.Errorf("sanity = %d, want 70", g.World.Player.Sanity)
	}
	if got, want := len(g.World.Enemies), system.InitialEnemyCount(2); got != want {
		t.Errorf("enemies = %d, want %d", got, want)
	}
}

func TestLevelUpSanityIsCapped(t *testing.T) {
	g := startPlaying(t)
	g.World.Player.Sanity = 95
	g.World.Run.LevelTimeRemaining = 0.001
	g.Step(frame, input.Snapshot{})
	g.Step(config.LevelUpDuration, input.Snapshot{})

	if g.World.Player.Sanity != config.MaxSanity {
		t.Errorf("sanity = %d, want %d", g.World.Player.Sanity, config.MaxSanity)
	}
}

func TestFinalLevelEndsInWin(t *testing.T) {
	g := startPlaying(t)
	g.World.Run.Level = config.MaxLevel
	g.World.Run.LevelTimeRemaining = 0.001

	events := g.Step(frame, input.Snapshot{})
	e, ok := find(events, event.GameOverOverlay)
	if !ok {
		t.Fatalf("no game over in %+v", events)
	}
	data := e.Data.(event.GameOverData)
	if !data.Win || data.Level != config.MaxLevel {
		t.Errorf("game over = %+v, want win at level %d", data, config.MaxLevel)
	}
	if count(events, event.LevelUpOverlay) != 0 {
		t.Error("final level showed level up overlay")
	}
	if !g.World.Run.Won {
		t.Error("run not marked as won")
	}
}

func TestBombClearsEnemies(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame, trig(input.Start))
	if len(g.World.Enemies) == 0 {
		t.Fatal("no enemies to clear")
	}
	p := g.World.Player
	g.World.PowerUps = append(g.World.PowerUps, &component.PowerUp{
		ID:   g.World.NewEntity(),
		Body: component.Body{Position: p.Position, Size: config.PowerUpSize},
		Kind: component.PowerUpBomb,
	})

	events := g.Step(frame, input.Snapshot{})
	e, ok := find(events, event.PowerUpCollected)
	if !ok {
		t.Fatalf("power-up not collected: %+v", events)
	}
	if kind := e.Data.(event.PowerUpData).Kind; kind != component.PowerUpBomb {
		t.Errorf("kind = %v", kind)
	}
	if n := len(g.World.Enemies); n != 0 {
		t.Errorf("enemies after bomb = %d", n)
	}
	if g.World.Effects.ShakeAmount <= config.HitShake {
		t.Errorf("shake = %v, want bomb shake", g.World.Effects.ShakeAmount)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := startPlaying(t)
	for i := 0; i < 30; i++ {
		g.Step(frame, input.Snapshot{Left: true})
	}
	g.World.Run.Score = 900
	g.World.Player.Sanity = config.EnemyContactDamage
	placeEnemyOnPlayer(g)
	g.Step(frame, input.Snapshot{})
	if g.Phase() != component.PhaseGameOver {
		t.Fatalf("phase = %v, want gameover", g.Phase())
	}
	oldID := g.RunID()

	events := g.Step(frame, trig(input.Start))
	if count(events, event.RunStarted) != 1 {
		t.Fatal("restart did not start a run")
	}
	run := g.World.Run
	if run.Level != 1 || run.Score != 0 || run.GameTime != 0 || run.Won {
		t.Errorf("run after restart = %+v", run)
	}
	if g.World.Player.Sanity != config.MaxSanity {
		t.Errorf("sanity after restart = %d", g.World.Player.Sanity)
	}
	if g.RunID() == oldID {
		t.Error("restart reused run id")
	}
	if e, ok := find(events, event.ScoreChanged); !ok || e.Data.(event.ScoreData).Score != config.LevelScoreBonus {
		t.Errorf("score notification after restart = %+v", e)
	}
}

func TestLiveScoreNeverDecreasesWithinLevel(t *testing.T) {
	g := startPlaying(t)
	last := g.LiveScore()
	for i := 0; i < 200; i++ {
		g.World.ClearEnemies()
		snap := input.Snapshot{Up: i%40 < 20, Left: i%60 < 30}
		if i%3 == 0 {
			snap.Triggers = []input.Command{input.Fire}
		}
		g.Step(frame, snap)
		score := g.LiveScore()
		if score < last {
			t.Fatalf("score dropped from %d to %d at tick %d", last, score, i)
		}
		last = score
	}
}

func TestScoreNotificationsOnlyOnChange(t *testing.T) {
	g := startPlaying(t)
	g.Step(frame, trig(input.Pause))

	events := g.Step(frame, input.Snapshot{})
	if count(events, event.ScoreChanged) != 0 || count(events, event.LevelChanged) != 0 {
		t.Errorf("paused step repeated HUD notifications: %+v", events)
	}
}

func TestToggleMuteInAnyPhase(t *testing.T) {
	g := newTestGame(t)
	events := g.Step(frame, trig(input.ToggleMute))
	e, ok := find(events, event.MuteToggled)
	if !ok || !e.Data.(event.MuteData).Muted || !g.Muted() {
		t.Fatalf("mute not toggled: %+v", events)
	}

	g.Step(frame, trig(input.Start, input.ToggleMute))
	if g.Muted() {
		t.Error("second toggle did not unmute")
	}
}

func TestEventsAreDispatched(t *testing.T) {
	g := newTestGame(t)
	var got []event.EventType
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Type)
	}), event.RunStarted, event.LevelStarted)

	g.Step(frame, trig(input.Start))
	if len(got) != 2 || got[0] != event.RunStarted || got[1] != event.LevelStarted {
		t.Errorf("dispatched = %v", got)
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)

	if got := c.Tick(t0); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
	if got := c.Tick(t0.Add(20 * time.Millisecond)); got != 20 {
		t.Errorf("tick = %v, want 20", got)
	}
	c.Reset(t0.Add(time.Second))
	if got := c.Tick(t0.Add(time.Second + 5*time.Millisecond)); got != 5 {
		t.Errorf("tick after reset = %v, want 5", got)
	}
	if got := c.Tick(t0); got != 0 {
		t.Errorf("backwards tick = %v, want 0", got)
	}
}
