// internal/system/movement.go
package system

import (
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/input"
	"go-sanity-survival/internal/utils"
)

// MovementSystem двигает игрока по удерживаемым направлениям
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(factor float64, snap input.Snapshot) {
	p := &s.world.Player
	moveSpeed := p.Speed * factor
	if p.IsBoosted() {
		moveSpeed *= config.SpeedBoostFactor
	}

	half := p.Size / 2
	if snap.Held(input.MoveUp) {
		p.Y -= moveSpeed
	}
	if snap.Held(input.MoveDown) {
		p.Y += moveSpeed
	}
	if snap.Held(input.MoveLeft) {
		p.X -= moveSpeed
	}
	if snap.Held(input.MoveRight) {
		p.X += moveSpeed
	}
	p.X = utils.Clamp(p.X, half, s.world.Width-half)
	p.Y = utils.Clamp(p.Y, half, s.world.Height-half)
}
