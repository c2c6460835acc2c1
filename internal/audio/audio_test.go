package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"go-sanity-survival/internal/event"

	"github.com/rs/zerolog"
)

func newSilent(t *testing.T, muted bool) *Manager {
	t.Helper()
	m, err := NewManager(nil, muted, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestRenderLength(t *testing.T) {
	pcm := Render(Tone(440, 100*time.Millisecond, WaveSine))
	if want := SampleRate.N(100*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}
}

func TestRenderClampsAndIsAudible(t *testing.T) {
	pcm := Render(Volume(Tone(440, 50*time.Millisecond, WaveSquare), 4))
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak != 32767 {
		t.Errorf("peak = %d, want clipped 32767", peak)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	s := Envelope(Tone(440, 50*time.Millisecond, WaveSquare), 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
	buf := make([][2]float64, 1)
	if n, _ := s.Stream(buf); n != 1 || buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
}

func TestAllCuesRender(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		if len(Render(cueStreamer(c))) == 0 {
			t.Errorf("cue %v rendered empty", c)
		}
	}
	if len(Render(musicStreamer())) == 0 {
		t.Error("music rendered empty")
	}
}

func TestMusicFollowsGameEvents(t *testing.T) {
	m := newSilent(t, false)

	steps := []struct {
		ev   event.Event
		want bool
	}{
		{event.Event{Type: event.RunStarted}, true},
		{event.Event{Type: event.PauseOverlay}, false},
		{event.Event{Type: event.Resumed}, true},
		{event.Event{Type: event.LevelUpOverlay}, true},
		{event.Event{Type: event.MuteToggled, Data: event.MuteData{Muted: true}}, false},
		{event.Event{Type: event.MuteToggled, Data: event.MuteData{Muted: false}}, true},
		{event.Event{Type: event.GameOverOverlay, Data: event.GameOverData{}}, false},
	}
	for i, s := range steps {
		m.OnEvent(s.ev)
		if got := m.MusicPlaying(); got != s.want {
			t.Errorf("step %d (%s): music = %v, want %v", i, s.ev.Type, got, s.want)
		}
	}
}

func TestMutedManagerSkipsCues(t *testing.T) {
	m := newSilent(t, true)
	if m.Play(CueShoot) {
		t.Error("muted manager played a cue")
	}
	m.OnEvent(event.Event{Type: event.MuteToggled, Data: event.MuteData{Muted: false}})
	if !m.Play(CueShoot) {
		t.Error("unmuted manager refused a cue")
	}
}

type fakeBackend struct {
	once    int
	loop    []byte
	toggles []bool
}

func (f *fakeBackend) PlayOnce([]byte)          { f.once++ }
func (f *fakeBackend) SetLoop(pcm []byte) error { f.loop = pcm; return nil }
func (f *fakeBackend) SetLoopPlaying(on bool)   { f.toggles = append(f.toggles, on) }

func TestBackendReceivesSounds(t *testing.T) {
	fb := &fakeBackend{}
	m, err := NewManager(fb, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if len(fb.loop) == 0 {
		t.Fatal("music loop not loaded")
	}

	m.OnEvent(event.Event{Type: event.RunStarted})
	m.OnEvent(event.Event{Type: event.LevelStarted})
	m.OnEvent(event.Event{Type: event.BulletFired})
	m.OnEvent(event.Event{Type: event.PauseOverlay})

	if fb.once != 1 {
		t.Errorf("cues played = %d, want 1", fb.once)
	}
	if len(fb.toggles) != 2 || !fb.toggles[0] || fb.toggles[1] {
		t.Errorf("music toggles = %v, want [true false]", fb.toggles)
	}
}

func TestSubscribe(t *testing.T) {
	m := newSilent(t, false)
	d := event.NewDispatcher()
	m.Subscribe(d)

	d.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: 2}})
	if !m.MusicPlaying() {
		t.Error("dispatcher did not reach the manager")
	}
}

func TestDetachStopsMusicAndCues(t *testing.T) {
	fb := &fakeBackend{}
	m, err := NewManager(fb, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	d := event.NewDispatcher()
	m.Subscribe(d)
	d.Dispatch(event.Event{Type: event.RunStarted})

	m.Detach(d)
	if m.MusicPlaying() {
		t.Error("music still wanted after Detach")
	}
	d.Dispatch(event.Event{Type: event.BulletFired})
	d.Dispatch(event.Event{Type: event.Resumed})
	if fb.once != 0 || m.MusicPlaying() {
		t.Errorf("detached manager reacted: cues=%d music=%v", fb.once, m.MusicPlaying())
	}
	if len(fb.toggles) != 2 || !fb.toggles[0] || fb.toggles[1] {
		t.Errorf("music toggles = %v, want [true false]", fb.toggles)
	}
}
