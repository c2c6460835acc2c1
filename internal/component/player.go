// internal/component/player.go
package component

// Player — аватар игрока. Ровно один на мир.
type Player struct {
	Body
	Speed             float64
	Sanity            int     // всегда в [0, MaxSanity]
	SpeedBoostTimer   float64 // кадров до конца ускорения
	InvulnerableTimer float64 // кадров неуязвимости
}

// AdjustSanity изменяет рассудок и сразу ограничивает его диапазоном [0, max].
func (p *Player) AdjustSanity(delta, max int) {
	p.SetSanity(p.Sanity+delta, max)
}

// SetSanity устанавливает рассудок с ограничением диапазона
func (p *Player) SetSanity(value, max int) {
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	p.Sanity = value
}

// IsInvulnerable — активен ли таймер неуязвимости
func (p *Player) IsInvulnerable() bool {
	return p.InvulnerableTimer > 0
}

// IsBoosted — активно ли ускорение
func (p *Player) IsBoosted() bool {
	return p.SpeedBoostTimer > 0
}
