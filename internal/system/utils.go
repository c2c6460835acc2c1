// internal/system/utils.go
package system

import (
	"image/color"
	"math"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/utils"
)

// Emitter принимает события, порождённые системами за тик.
type Emitter interface {
	Emit(e event.Event)
}

// CheckCollision: пересечение двух кругов: расстояние между центрами строго
// меньше полусуммы диаметров. Касание границ столкновением не считается.
func CheckCollision(a, b *component.Body) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < (a.Size+b.Size)/2
}

// EmitParticles создаёт вспышку частиц в точке (x, y).
func EmitParticles(w *entity.World, rng *utils.PRNGService, x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		w.Particles = append(w.Particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				VX: rng.Spread(config.ParticleSpread),
				VY: rng.Spread(config.ParticleSpread),
			},
			Size:  config.ParticleMinSize + rng.Float64()*config.ParticleMaxExtra,
			Color: c,
			Life:  1,
		})
	}
}
