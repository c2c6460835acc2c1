// internal/entity/ecs.go
package entity

import (
	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/types"
)

// World: единственная запись состояния симуляции. Её явно передают системам,
// глобального состояния нет.
type World struct {
	NextID    types.EntityID
	Phase     component.Phase
	Player    component.Player
	Enemies   []*component.Enemy
	Orbs      []*component.Orb
	PowerUps  []*component.PowerUp
	Bullets   []*component.Bullet
	Particles []*component.Particle
	Run       component.Run
	Effects   component.Effects
	Width     float64
	Height    float64
}

func NewWorld() *World {
	w := &World{
		NextID: 1,
		Phase:  component.PhaseMenu,
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
	}
	w.ResetPlayer()
	w.Player.Sanity = config.MaxSanity
	w.Run.Level = 1
	w.Run.LevelTimeRemaining = config.LevelDuration
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// ResetPlayer возвращает игрока в центр поля и снимает временные эффекты.
// Рассудок не трогает: правило его восстановления решает вызывающий.
func (w *World) ResetPlayer() {
	w.Player.X = w.Width / 2
	w.Player.Y = w.Height / 2
	w.Player.Size = config.PlayerSize
	w.Player.Speed = config.PlayerSpeed
	w.Player.SpeedBoostTimer = 0
	w.Player.InvulnerableTimer = 0
}

// ClearEntities удаляет всех врагов, сферы, усиления, снаряды и частицы.
func (w *World) ClearEntities() {
	w.Enemies = w.Enemies[:0]
	w.Orbs = w.Orbs[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Bullets = w.Bullets[:0]
	w.Particles = w.Particles[:0]
}

// ClearEnemies удаляет всех врагов
func (w *World) ClearEnemies() {
	w.Enemies = w.Enemies[:0]
}
