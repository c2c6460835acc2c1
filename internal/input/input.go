// internal/input/input.go
package input

// Command: дискретная команда от внешнего слоя ввода
type Command int

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	Fire
	Pause
	Resume
	Start
	ToggleMute
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Fire:
		return "fire"
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	case Start:
		return "start"
	case ToggleMute:
		return "mute"
	}
	return "unknown"
}

// IsDirection: является ли команда направлением (удерживаемой)
func (c Command) IsDirection() bool {
	return c >= MoveUp && c <= MoveRight
}

// Snapshot: ввод, собранный один раз на тик
type Snapshot struct {
	Up, Down, Left, Right bool
	Triggers              []Command // разовые команды в порядке поступления
}

// Held сообщает, удерживается ли направление
func (s Snapshot) Held(c Command) bool {
	switch c {
	case MoveUp:
		return s.Up
	case MoveDown:
		return s.Down
	case MoveLeft:
		return s.Left
	case MoveRight:
		return s.Right
	}
	return false
}

type queued struct {
	cmd     Command
	pressed bool
}

// Queue собирает события ввода между тиками и хранит состояние удержания
// направлений.
type Queue struct {
	pending []queued
	held    [4]bool
}

func NewQueue() *Queue {
	return &Queue{}
}

// Press: направление нажато
func (q *Queue) Press(c Command) {
	if c.IsDirection() {
		q.pending = append(q.pending, queued{cmd: c, pressed: true})
	}
}

// Release: направление отпущено
func (q *Queue) Release(c Command) {
	if c.IsDirection() {
		q.pending = append(q.pending, queued{cmd: c, pressed: false})
	}
}

// Trigger: разовая команда (огонь, пауза, старт и т.д.)
func (q *Queue) Trigger(c Command) {
	if !c.IsDirection() {
		q.pending = append(q.pending, queued{cmd: c, pressed: true})
	}
}

// ReleaseAll отпускает все направления (например, при потере фокуса)
func (q *Queue) ReleaseAll() {
	for c := MoveUp; c <= MoveRight; c++ {
		q.Release(c)
	}
}

// Drain применяет накопленные события и возвращает снимок для одного тика.
// Направление, нажатое и отпущенное в пределах одного тика, считается
// удержанным в этом тике, чтобы короткие касания не терялись.
func (q *Queue) Drain() Snapshot {
	var touched [4]bool
	snap := Snapshot{}
	for _, ev := range q.pending {
		if ev.cmd.IsDirection() {
			q.held[ev.cmd] = ev.pressed
			if ev.pressed {
				touched[ev.cmd] = true
			}
			continue
		}
		snap.Triggers = append(snap.Triggers, ev.cmd)
	}
	q.pending = q.pending[:0]

	snap.Up = q.held[MoveUp] || touched[MoveUp]
	snap.Down = q.held[MoveDown] || touched[MoveDown]
	snap.Left = q.held[MoveLeft] || touched[MoveLeft]
	snap.Right = q.held[MoveRight] || touched[MoveRight]
	return snap
}
