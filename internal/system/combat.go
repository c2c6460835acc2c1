// internal/system/combat.go
package system

import (
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/utils"
)

// CombatSystem двигает врагов к игроку и обрабатывает их касания.
type CombatSystem struct {
	world   *entity.World
	rng     *utils.PRNGService
	emitter Emitter
}

func NewCombatSystem(world *entity.World, rng *utils.PRNGService, emitter Emitter) *CombatSystem {
	return &CombatSystem{world: world, rng: rng, emitter: emitter}
}

// Update возвращает true, если рассудок игрока иссяк. В этом случае остальные
// враги в этом тике уже не обрабатываются.
func (s *CombatSystem) Update(factor float64) (defeated bool) {
	p := &s.world.Player
	for _, e := range s.world.Enemies {
		dx, dy, _ := utils.Direction(e.X, e.Y, p.X, p.Y)
		e.X += dx * e.Speed * factor
		e.Y += dy * e.Speed * factor
		e.Rotation = utils.NormalizeAngle(e.Rotation + config.EnemyRotationSpeed*factor)

		if p.IsInvulnerable() || !CheckCollision(&p.Body, &e.Body) {
			continue
		}
		if s.hitPlayer() {
			return true
		}
	}
	return false
}

func (s *CombatSystem) hitPlayer() bool {
	p := &s.world.Player
	p.AdjustSanity(-config.EnemyContactDamage, config.MaxSanity)
	p.InvulnerableTimer = config.InvulnerableFrames
	s.world.Effects.ShakeAmount = config.HitShake
	s.world.Effects.GlitchTimer = config.HitGlitch
	EmitParticles(s.world, s.rng, p.X, p.Y, config.PlayerHitColor, config.PlayerHitParticles)
	s.emitter.Emit(event.Event{Type: event.PlayerHit, Data: p.Sanity})
	return p.Sanity <= 0
}
