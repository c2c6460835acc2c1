// internal/system/visual_effect.go
package system

import (
	"math"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/utils"
	"go-sanity-survival/pkg/palette"
)

// VisualEffectSystem управляет частицами и экранными эффектами.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update двигает частицы (с «гравитацией») и удаляет угасшие.
func (s *VisualEffectSystem) Update(factor float64) {
	particles := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.X += p.VX * factor
		p.Y += p.VY * factor
		p.VY += config.ParticleGravity * factor
		p.Life -= config.ParticleDecay * factor
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clearTail(s.world.Particles, len(particles))
	s.world.Particles = particles
}

// UpdateScreen сдвигает оттенок фона и гасит тряску и глитч.
func (s *VisualEffectSystem) UpdateScreen(factor float64) {
	fx := &s.world.Effects
	fx.BackgroundHue = palette.WrapHue(fx.BackgroundHue + config.HueSpeed*factor)
	fx.GlitchTimer = utils.Decay(fx.GlitchTimer, factor)
	if fx.ShakeAmount > 0 {
		fx.ShakeAmount *= math.Pow(config.ShakeDecay, factor)
		if fx.ShakeAmount < 0.1 {
			fx.ShakeAmount = 0
		}
	}
}
