// internal/system/projectile.go
package system

import (
	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/event"
	"go-sanity-survival/internal/utils"
)

// ProjectileSystem управляет выстрелами игрока и попаданиями во врагов
type ProjectileSystem struct {
	world   *entity.World
	rng     *utils.PRNGService
	emitter Emitter
}

func NewProjectileSystem(world *entity.World, rng *utils.PRNGService, emitter Emitter) *ProjectileSystem {
	return &ProjectileSystem{world: world, rng: rng, emitter: emitter}
}

// Fire выпускает снаряд из верхнего края игрока, если перезарядка закончилась.
func (s *ProjectileSystem) Fire() bool {
	if s.world.Run.FireCooldown > 0 {
		return false
	}
	p := &s.world.Player
	b := &component.Bullet{
		ID: s.world.NewEntity(),
		Body: component.Body{
			Position: component.Position{X: p.X, Y: p.Y - p.Size/2},
			Size:     config.BulletSize,
		},
		Speed: config.BulletSpeed,
	}
	s.world.Bullets = append(s.world.Bullets, b)
	s.world.Run.FireCooldown = config.FireRateDelay
	s.emitter.Emit(event.Event{Type: event.BulletFired})
	return true
}

// Update двигает снаряды вверх и проверяет попадания. Снаряд поражает не
// больше одного врага за тик: первого по порядку обхода.
func (s *ProjectileSystem) Update(factor float64) {
	bullets := s.world.Bullets[:0]
	for _, b := range s.world.Bullets {
		b.Y -= b.Speed * factor

		if s.hitFirstEnemy(b) {
			continue
		}
		if b.Y < -b.Size/2 {
			continue // улетел за экран
		}
		bullets = append(bullets, b)
	}
	clearTail(s.world.Bullets, len(bullets))
	s.world.Bullets = bullets
}

func (s *ProjectileSystem) hitFirstEnemy(b *component.Bullet) bool {
	for i, e := range s.world.Enemies {
		if !CheckCollision(&b.Body, &e.Body) {
			continue
		}
		EmitParticles(s.world, s.rng, e.X, e.Y, config.EnemyHitColor, config.EnemyKillParticles)
		s.world.Enemies = append(s.world.Enemies[:i], s.world.Enemies[i+1:]...)
		s.world.Run.Score += config.EnemyKillScore
		s.emitter.Emit(event.Event{Type: event.EnemyDestroyed, Data: e.ID})
		return true
	}
	return false
}

// clearTail обнуляет хвост среза после фильтрации на месте, чтобы не держать
// ссылки на удалённые сущности.
func clearTail[T any](s []*T, keep int) {
	for i := keep; i < len(s); i++ {
		s[i] = nil
	}
}
