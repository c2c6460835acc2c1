// internal/state/controls.go
package state

import (
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = [...][]ebiten.Key{
	input.MoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.MoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Controls переводит клавиатуру, мышь и касания в команды очереди ввода.
type Controls struct {
	held      [len(directionKeys)]bool
	fireTicks int
	touches   []ebiten.TouchID
	justTouch []ebiten.TouchID
}

func NewControls() *Controls {
	return &Controls{}
}

// Held: удерживается ли направление с точки зрения хоста
func (c *Controls) Held(cmd input.Command) bool {
	if !cmd.IsDirection() {
		return false
	}
	return c.held[cmd]
}

// PollMovement сообщает очереди о смене удержания направлений и о выстрелах.
// Огонь срабатывает по нажатию и повторяется, пока кнопка удерживается.
func (c *Controls) PollMovement(q *input.Queue, dpad *ui.DPad) {
	if !ebiten.IsFocused() {
		c.ReleaseAll(q)
		return
	}

	var pointer [len(directionKeys)]bool
	firePointer := false
	c.touches = ebiten.AppendTouchIDs(c.touches[:0])
	if len(c.touches) > 0 {
		dpad.Visible = true
	}
	hit := func(x, y int) {
		cmd, ok := dpad.HitTest(x, y)
		switch {
		case !ok:
		case cmd == input.Fire:
			firePointer = true
		case cmd.IsDirection():
			pointer[cmd] = true
		}
	}
	for _, id := range c.touches {
		hit(ebiten.TouchPosition(id))
	}
	if dpad.Visible && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		hit(ebiten.CursorPosition())
	}

	for cmd := input.MoveUp; cmd <= input.MoveRight; cmd++ {
		now := pointer[cmd]
		for _, k := range directionKeys[cmd] {
			now = now || ebiten.IsKeyPressed(k)
		}
		if now == c.held[cmd] {
			continue
		}
		c.held[cmd] = now
		if now {
			q.Press(cmd)
		} else {
			q.Release(cmd)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) || firePointer {
		c.fireTicks++
	} else {
		c.fireTicks = 0
	}
	if shouldFire(c.fireTicks) {
		q.Trigger(input.Fire)
	}
}

// shouldFire: первый тик удержания и далее каждые FireRepeatPeriod после задержки
func shouldFire(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks > config.FireRepeatDelay && (ticks-config.FireRepeatDelay)%config.FireRepeatPeriod == 0
}

// ReleaseAll отпускает все направления, например при потере фокуса окна
func (c *Controls) ReleaseAll(q *input.Queue) {
	for cmd := input.MoveUp; cmd <= input.MoveRight; cmd++ {
		if c.held[cmd] {
			q.Release(cmd)
			c.held[cmd] = false
		}
	}
	c.fireTicks = 0
}

// JustClicked возвращает точку клика мышью или нового касания в этом кадре
func (c *Controls) JustClicked() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	c.justTouch = inpututil.AppendJustPressedTouchIDs(c.justTouch[:0])
	if len(c.justTouch) > 0 {
		x, y = ebiten.TouchPosition(c.justTouch[0])
		return x, y, true
	}
	return 0, 0, false
}

func (c *Controls) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (c *Controls) MutePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func (c *Controls) ConfirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
