// internal/audio/manager.go
package audio

import (
	"fmt"

	"go-sanity-survival/internal/event"

	"github.com/rs/zerolog"
)

// Backend воспроизводит готовый PCM (16 бит, стерео, SampleRate).
type Backend interface {
	PlayOnce(pcm []byte)
	SetLoop(pcm []byte) error
	SetLoopPlaying(on bool)
}

// Manager озвучивает игровые события: фоновая музыка и короткие эффекты.
// Без бэкенда работает в беззвучном режиме, но состояние ведёт так же.
type Manager struct {
	backend Backend
	cues    [cueCount][]byte
	logger  zerolog.Logger

	muted     bool
	wantMusic bool // игра идёт, музыка должна звучать, если звук включён
	playing   bool
}

// NewManager синтезирует все звуки. backend == nil: беззвучный режим.
func NewManager(backend Backend, muted bool, logger zerolog.Logger) (*Manager, error) {
	m := &Manager{backend: backend, muted: muted, logger: logger}
	if backend == nil {
		logger.Info().Msg("audio disabled")
		return m, nil
	}

	for c := Cue(0); c < cueCount; c++ {
		m.cues[c] = Render(cueStreamer(c))
	}
	if err := backend.SetLoop(Render(musicStreamer())); err != nil {
		return nil, fmt.Errorf("failed to load music: %w", err)
	}
	logger.Debug().Int("cues", int(cueCount)).Msg("audio ready")
	return m, nil
}

// Subscribe подписывает менеджер на события, которые он озвучивает
func (m *Manager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(m,
		event.RunStarted, event.LevelStarted, event.Resumed, event.PauseOverlay,
		event.LevelUpOverlay, event.GameOverOverlay, event.MuteToggled,
		event.BulletFired, event.EnemyDestroyed, event.PlayerHit,
		event.OrbCollected, event.PowerUpCollected,
	)
}

// Detach отписывает менеджер и глушит музыку; дальнейшие события не озвучиваются
func (m *Manager) Detach(d *event.Dispatcher) {
	d.Unsubscribe(m)
	m.wantMusic = false
	m.syncMusic()
}

func (m *Manager) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted, event.LevelStarted, event.Resumed:
		m.wantMusic = true
	case event.PauseOverlay:
		m.wantMusic = false
	case event.LevelUpOverlay:
		m.Play(CueLevelUp)
	case event.GameOverOverlay:
		m.wantMusic = false
		if data, ok := e.Data.(event.GameOverData); ok && data.Win {
			m.Play(CueWin)
		} else {
			m.Play(CueLose)
		}
	case event.MuteToggled:
		if data, ok := e.Data.(event.MuteData); ok {
			m.muted = data.Muted
		}
	case event.BulletFired:
		m.Play(CueShoot)
	case event.EnemyDestroyed:
		m.Play(CueEnemyDestroyed)
	case event.PlayerHit:
		m.Play(CuePlayerHit)
	case event.OrbCollected:
		m.Play(CueOrb)
	case event.PowerUpCollected:
		m.Play(CuePowerUp)
	}
	m.syncMusic()
}

// Play проигрывает эффект, если звук включён. Возвращает true, если эффект запущен.
func (m *Manager) Play(c Cue) bool {
	if m.muted || c < 0 || c >= cueCount {
		return false
	}
	if m.backend != nil {
		m.backend.PlayOnce(m.cues[c])
	}
	return true
}

func (m *Manager) syncMusic() {
	on := m.MusicPlaying()
	if on == m.playing {
		return
	}
	m.playing = on
	if m.backend != nil {
		m.backend.SetLoopPlaying(on)
	}
	m.logger.Debug().Bool("on", on).Msg("music")
}

// MusicPlaying сообщает, должна ли сейчас звучать музыка
func (m *Manager) MusicPlaying() bool {
	return m.wantMusic && !m.muted
}

func (m *Manager) Muted() bool { return m.muted }
