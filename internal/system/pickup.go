// internal/system/pickup.go
package system

import (
	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/utils"
)

// PickupSystem обрабатывает подбор сфер и усилений.
type PickupSystem struct {
	world   *entity.World
	rng     *utils.PRNGService
	emitter Emitter
}

func NewPickupSystem(world *entity.World, rng *utils.PRNGService, emitter Emitter) *PickupSystem {
	return &PickupSystem{world: world, rng: rng, emitter: emitter}
}

func (s *PickupSystem) Update(factor float64) {
	s.updateOrbs(factor)
	s.updatePowerUps(factor)
}

func (s *PickupSystem) updateOrbs(factor float64) {
	p := &s.world.Player
	orbs := s.world.Orbs[:0]
	for _, o := range s.world.Orbs {
		o.Pulse += config.OrbPulseSpeed * factor
		if CheckCollision(&p.Body, &o.Body) {
			p.AdjustSanity(config.OrbSanityRestore, config.MaxSanity)
			EmitParticles(s.world, s.rng, o.X, o.Y, config.OrbColor, config.OrbParticles)
			s.emitter.Emit(event.Event{Type: event.OrbCollected, Data: p.Sanity})
			continue
		}
		orbs = append(orbs, o)
	}
	clearTail(s.world.Orbs, len(orbs))
	s.world.Orbs = orbs
}

func (s *PickupSystem) updatePowerUps(factor float64) {
	p := &s.world.Player
	powerUps := s.world.PowerUps[:0]
	for _, pu := range s.world.PowerUps {
		pu.Rotation = utils.NormalizeAngle(pu.Rotation + config.PowerUpRotationSpeed*factor)
		if CheckCollision(&p.Body, &pu.Body) {
			ApplyPowerUp(s.world, s.rng, pu)
			s.emitter.Emit(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Kind: pu.Kind}})
			continue
		}
		powerUps = append(powerUps, pu)
	}
	clearTail(s.world.PowerUps, len(powerUps))
	s.world.PowerUps = powerUps
}

// ApplyPowerUp применяет эффект усиления к миру.
func ApplyPowerUp(w *entity.World, rng *utils.PRNGService, pu *component.PowerUp) {
	switch pu.Kind {
	case component.PowerUpCalm:
		w.Player.SetSanity(config.MaxSanity, config.MaxSanity)
		EmitParticles(w, rng, pu.X, pu.Y, config.CalmColor, config.CalmParticles)
	case component.PowerUpSpeed:
		w.Player.SpeedBoostTimer = config.SpeedBoostDuration
		EmitParticles(w, rng, pu.X, pu.Y, config.SpeedColor, config.SpeedParticles)
	case component.PowerUpBomb:
		w.ClearEnemies()
		w.Effects.ShakeAmount = config.BombShake
		EmitParticles(w, rng, pu.X, pu.Y, config.BombColor, config.BombParticles)
	default:
		panic("unhandled power-up kind " + pu.Kind.String())
	}
}
