// internal/audio/sounds.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue: короткий звуковой эффект
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyDestroyed
	CuePlayerHit
	CueOrb
	CuePowerUp
	CueLevelUp
	CueWin
	CueLose
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueEnemyDestroyed:
		return "enemy_destroyed"
	case CuePlayerHit:
		return "player_hit"
	case CueOrb:
		return "orb"
	case CuePowerUp:
		return "powerup"
	case CueLevelUp:
		return "levelup"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

const ms = time.Millisecond

// cueStreamer собирает звук эффекта из осцилляторов.
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueShoot:
		return Volume(Envelope(Sweep(1200, 600, 70*ms, WaveSquare), 70*ms, 2*ms, 50*ms), 0.12)
	case CueEnemyDestroyed:
		return beep.Mix(
			Volume(Envelope(Sweep(300, 60, 160*ms, WaveSaw), 160*ms, 2*ms, 120*ms), 0.2),
			Volume(Envelope(Tone(0, 120*ms, WaveNoise), 120*ms, 1*ms, 100*ms), 0.1),
		)
	case CuePlayerHit:
		return beep.Mix(
			Volume(Envelope(Sweep(180, 40, 250*ms, WaveSquare), 250*ms, 2*ms, 200*ms), 0.25),
			Volume(Envelope(Tone(0, 200*ms, WaveNoise), 200*ms, 1*ms, 150*ms), 0.15),
		)
	case CueOrb:
		return beep.Seq(Note(660, 60*ms, WaveSine, 0.3), Note(990, 90*ms, WaveSine, 0.3))
	case CuePowerUp:
		return beep.Seq(
			Note(523.25, 60*ms, WaveTriangle, 0.3),
			Note(659.25, 60*ms, WaveTriangle, 0.3),
			Note(783.99, 60*ms, WaveTriangle, 0.3),
			Note(1046.5, 120*ms, WaveTriangle, 0.3),
		)
	case CueLevelUp:
		return beep.Seq(
			Note(392, 120*ms, WaveSquare, 0.12),
			Note(523.25, 120*ms, WaveSquare, 0.12),
			Note(659.25, 120*ms, WaveSquare, 0.12),
			Note(783.99, 300*ms, WaveSquare, 0.12),
		)
	case CueWin:
		return beep.Seq(
			Note(523.25, 150*ms, WaveTriangle, 0.3),
			Note(659.25, 150*ms, WaveTriangle, 0.3),
			Note(783.99, 150*ms, WaveTriangle, 0.3),
			Note(1046.5, 500*ms, WaveTriangle, 0.3),
		)
	case CueLose:
		return beep.Seq(
			Note(311.13, 250*ms, WaveSaw, 0.15),
			Note(277.18, 250*ms, WaveSaw, 0.15),
			Note(233.08, 600*ms, WaveSaw, 0.15),
		)
	}
	return Rest(10 * ms)
}

// Тревожное арпеджио в ля миноре поверх низкого гула
var musicNotes = []float64{220, 261.63, 329.63, 261.63, 207.65, 246.94, 329.63, 246.94}

const musicStep = 250 * ms

// musicStreamer: один такт фоновой музыки; воспроизводится по кругу.
func musicStreamer() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, f := range musicNotes {
		notes = append(notes, Note(f, musicStep, WaveTriangle, 0.12))
	}
	length := musicStep * time.Duration(len(musicNotes))
	drone := Volume(Envelope(Tone(55, length, WaveSine), length, 50*ms, 50*ms), 0.15)
	return beep.Mix(beep.Seq(notes...), drone)
}
