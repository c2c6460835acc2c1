// internal/system/player_system.go
package system

import (
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/utils"
)

// PlayerSystem гасит временные таймеры игрока и перезарядку оружия.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Update(factor float64) {
	p := &s.world.Player
	p.InvulnerableTimer = utils.Decay(p.InvulnerableTimer, factor)
	p.SpeedBoostTimer = utils.Decay(p.SpeedBoostTimer, factor)
	s.world.Run.FireCooldown = utils.Decay(s.world.Run.FireCooldown, factor)
}
