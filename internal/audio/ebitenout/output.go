// internal/audio/ebitenout/output.go
package ebitenout

import (
	"bytes"
	"fmt"

	"go-sanity-survival/internal/audio"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Output проигрывает звуки через аудиоконтекст ebiten
type Output struct {
	ctx   *ebaudio.Context
	music *ebaudio.Player
}

// New создаёт контекст с частотой audio.SampleRate. Контекст в процессе
// может быть только один.
func New() *Output {
	return &Output{ctx: ebaudio.NewContext(int(audio.SampleRate))}
}

func (o *Output) PlayOnce(pcm []byte) {
	o.ctx.NewPlayerFromBytes(pcm).Play()
}

func (o *Output) SetLoop(pcm []byte) error {
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := o.ctx.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("failed to create loop player: %w", err)
	}
	if o.music != nil {
		o.music.Close()
	}
	o.music = player
	return nil
}

func (o *Output) SetLoopPlaying(on bool) {
	if o.music == nil {
		return
	}
	if on {
		o.music.Play()
	} else {
		o.music.Pause()
	}
}

// Close освобождает плеер музыки
func (o *Output) Close() error {
	if o.music == nil {
		return nil
	}
	return o.music.Close()
}
