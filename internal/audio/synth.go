// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate: частота дискретизации всех звуков игры
const SampleRate = beep.SampleRate(44100)

// Wave: форма волны осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator генерирует тон, частота которого линейно скользит от freq до endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	total         int
	wave          Wave
	rng           *rand.Rand
}

// Tone возвращает стример тона фиксированной частоты
func Tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Sweep(freq, freq, d, wave)
}

// Sweep возвращает стример тона со скольжением частоты
func Sweep(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &oscillator{
		freq:    from,
		endFreq: to,
		total:   SampleRate.N(d),
		wave:    wave,
		rng:     rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.position) / float64(o.total)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope: упрощённая огибающая: линейная атака и линейное затухание.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Envelope накладывает атаку и затухание на стример длительностью d
func Envelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Volume масштабирует громкость; vol <= 0: тишина.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Note: тон с огибающей, готовый к склейке через beep.Seq
func Note(freq float64, d time.Duration, wave Wave, vol float64) beep.Streamer {
	return Volume(Envelope(Tone(freq, d, wave), d, 5*time.Millisecond, d/2), vol)
}

// Rest: пауза заданной длительности
func Rest(d time.Duration) beep.Streamer {
	return beep.Silence(SampleRate.N(d))
}

// Render вычитывает стример целиком в 16-битный стерео PCM little-endian,
// который понимает ebiten/audio.
func Render(s beep.Streamer) []byte {
	var (
		out []byte
		buf = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
