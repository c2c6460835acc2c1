// internal/system/spawn.go
package system

import (
	"math"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/utils"
)

// SpawnSystem создаёт врагов, сферы и усиления по таймерам.
type SpawnSystem struct {
	world       *entity.World
	rng         *utils.PRNGService
	spriteCount int

	enemyTimer   float64
	orbTimer     float64
	powerUpTimer float64
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, spriteCount int) *SpawnSystem {
	if spriteCount < 1 {
		spriteCount = 1
	}
	return &SpawnSystem{world: world, rng: rng, spriteCount: spriteCount}
}

// InitialEnemyCount: сколько врагов появляется в начале уровня
func InitialEnemyCount(level int) int {
	n := config.InitialEnemiesBase + config.InitialEnemiesLevel*level
	if n > config.MaxInitialEnemies {
		return config.MaxInitialEnemies
	}
	return n
}

// EnemySpawnInterval: интервал появления врагов в кадрах для уровня
func EnemySpawnInterval(level int) float64 {
	return math.Max(config.EnemySpawnBase-config.EnemySpawnPerLevel*float64(level), config.MinEnemySpawn)
}

// EnemySpeed: скорость врага на уровне
func EnemySpeed(level int) float64 {
	return config.EnemyBaseSpeed + config.EnemySpeedPerLevel*float64(level)
}

// PopulateLevel сбрасывает таймеры и создаёт стартовых врагов и сферы.
func (s *SpawnSystem) PopulateLevel() {
	s.ResetTimers()
	for i := 0; i < InitialEnemyCount(s.world.Run.Level); i++ {
		s.SpawnEnemy()
	}
	for i := 0; i < config.InitialOrbs; i++ {
		s.SpawnOrb()
	}
}

func (s *SpawnSystem) ResetTimers() {
	s.enemyTimer = 0
	s.orbTimer = 0
	s.powerUpTimer = 0
}

// Update продвигает таймеры появления на factor кадров.
func (s *SpawnSystem) Update(factor float64) {
	s.enemyTimer += factor
	if s.enemyTimer > EnemySpawnInterval(s.world.Run.Level) {
		s.SpawnEnemy()
		s.enemyTimer = 0
	}

	s.orbTimer += factor
	if s.orbTimer > config.OrbSpawnInterval && len(s.world.Orbs) < config.MaxOrbs {
		s.SpawnOrb()
		s.orbTimer = 0
	}

	s.powerUpTimer += factor
	if s.powerUpTimer > config.PowerUpSpawnInterval && len(s.world.PowerUps) < config.MaxPowerUps {
		s.SpawnPowerUp()
		s.powerUpTimer = 0
	}
}

// SpawnEnemy создаёт врага за одной из четырёх сторон экрана.
func (s *SpawnSystem) SpawnEnemy() *component.Enemy {
	w, h := s.world.Width, s.world.Height
	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // сверху
		x, y = s.rng.Float64()*w, -config.EnemySpawnOffset
	case 1: // справа
		x, y = w+config.EnemySpawnOffset, s.rng.Float64()*h
	case 2: // снизу
		x, y = s.rng.Float64()*w, h+config.EnemySpawnOffset
	default: // слева
		x, y = -config.EnemySpawnOffset, s.rng.Float64()*h
	}

	e := &component.Enemy{
		ID: s.world.NewEntity(),
		Body: component.Body{
			Position: component.Position{X: x, Y: y},
			Size:     config.EnemySize,
		},
		Speed:  EnemySpeed(s.world.Run.Level),
		Sprite: s.rng.Intn(s.spriteCount),
	}
	s.world.Enemies = append(s.world.Enemies, e)
	return e
}

// SpawnOrb создаёт сферу во внутренней области поля. Лимит проверяет Update.
func (s *SpawnSystem) SpawnOrb() *component.Orb {
	x, y := s.interiorPoint()
	o := &component.Orb{
		ID: s.world.NewEntity(),
		Body: component.Body{
			Position: component.Position{X: x, Y: y},
			Size:     config.OrbSize,
		},
	}
	s.world.Orbs = append(s.world.Orbs, o)
	return o
}

// SpawnPowerUp создаёт усиление случайного типа.
func (s *SpawnSystem) SpawnPowerUp() *component.PowerUp {
	kinds := component.PowerUpKinds()
	x, y := s.interiorPoint()
	pu := &component.PowerUp{
		ID: s.world.NewEntity(),
		Body: component.Body{
			Position: component.Position{X: x, Y: y},
			Size:     config.PowerUpSize,
		},
		Kind: kinds[s.rng.Intn(len(kinds))],
	}
	s.world.PowerUps = append(s.world.PowerUps, pu)
	return pu
}

func (s *SpawnSystem) interiorPoint() (float64, float64) {
	m := config.SpawnMargin
	return s.rng.Range(m, s.world.Width-m), s.rng.Range(m, s.world.Height-m)
}
