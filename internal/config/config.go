// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	HUDHeight    = 48 // Нижняя панель с уровнем и счётом

	MaxLevel         = 20
	LevelDuration    = 30.0   // секунд на уровень
	LevelUpDuration  = 2000.0 // мс праздничного перехода
	TargetFPS        = 60
	FrameDuration    = 1000.0 / TargetFPS // мс на номинальный кадр
	MaxFrameElapsed  = 500.0              // кадры длиннее отбрасываются целиком
	FireRateDelay    = 10.0               // кадров между выстрелами
	FireRepeatDelay  = 15                 // тиков до автоповтора огня при удержании
	FireRepeatPeriod = 5

	PlayerSize          = 40.0
	PlayerSpeed         = 4.0
	MaxSanity           = 100
	LevelSanityRestore  = 20
	SpeedBoostFactor    = 1.8
	SpeedBoostDuration  = 300.0 // кадров
	InvulnerableFrames  = 60.0
	EnemyContactDamage  = 10
	OrbSanityRestore    = 15
	EnemyKillScore      = 50
	LevelScoreBonus     = 1000
	TimeScorePerSecond  = 60
	SanityScoreMultiple = 100

	EnemySize           = 40.0
	EnemyBaseSpeed      = 1.0
	EnemySpeedPerLevel  = 0.3
	EnemySpawnOffset    = 40.0
	EnemyRotationSpeed  = 0.05
	InitialEnemiesBase  = 3
	InitialEnemiesLevel = 2
	MaxInitialEnemies   = 30
	EnemySpawnBase      = 60.0
	EnemySpawnPerLevel  = 2.0
	MinEnemySpawn       = 20.0

	OrbSize          = 20.0
	OrbPulseSpeed    = 0.1
	InitialOrbs      = 3
	MaxOrbs          = 5
	OrbSpawnInterval = 180.0
	SpawnMargin      = 50.0

	PowerUpSize          = 30.0
	PowerUpRotationSpeed = 0.05
	MaxPowerUps          = 2
	PowerUpSpawnInterval = 300.0

	BulletSize  = 10.0
	BulletSpeed = 10.0

	ParticleSpread   = 8.0
	ParticleMinSize  = 2.0
	ParticleMaxExtra = 8.0
	ParticleGravity  = 0.2
	ParticleDecay    = 0.02

	HitShake      = 20.0
	BombShake     = 30.0
	HitGlitch     = 30.0
	ShakeDecay    = 0.9
	HueSpeed      = 2.0
	EnemyHueShift = 30.0

	SanityBarWidth  = 300
	SanityBarHeight = 30
	SanityBarY      = 20
	SanityHighMark  = 60
	SanityLowMark   = 30

	ButtonSize = 18.0
)

// Количество частиц для каждого эффекта
const (
	EnemyKillParticles = 20
	PlayerHitParticles = 15
	OrbParticles       = 12
	CalmParticles      = 20
	SpeedParticles     = 20
	BombParticles      = 30
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	HUDColor          = color.RGBA{17, 17, 27, 255}
	PlayerColor       = color.RGBA{0, 255, 0, 255}
	BoostRingColor    = color.RGBA{0, 255, 255, 255}
	BulletColor       = color.RGBA{255, 0, 255, 255}
	OrbColor          = color.RGBA{0, 255, 136, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 128}
	OutlineColor      = color.RGBA{0, 0, 0, 255}
	EnemyHitColor     = color.RGBA{255, 255, 255, 255}
	PlayerHitColor    = color.RGBA{255, 0, 102, 255}
	CalmColor         = color.RGBA{255, 255, 0, 255}
	SpeedColor        = color.RGBA{0, 255, 255, 255}
	BombColor         = color.RGBA{255, 0, 0, 255}
	SanityHighColor   = color.RGBA{0, 255, 0, 255}
	SanityMidColor    = color.RGBA{255, 255, 0, 255}
	SanityLowColor    = color.RGBA{255, 0, 0, 255}
	SanityTrackColor  = color.RGBA{51, 51, 51, 255}
	BarShadowColor    = color.RGBA{0, 0, 0, 178}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	PauseTitleColor   = color.RGBA{250, 204, 21, 255}
	LevelUpTextColor  = color.RGBA{6, 182, 212, 255}
	WinTitleColor     = color.RGBA{0, 255, 136, 255}
	LoseTitleColor    = color.RGBA{239, 68, 68, 255}
	StartButtonColor  = color.RGBA{34, 197, 94, 255}
	ReplayButtonColor = color.RGBA{6, 182, 212, 255}
	OverlayDimColor   = color.RGBA{0, 0, 0, 204}
	GameOverDimColor  = color.RGBA{0, 0, 0, 242}
	LevelUpWashColors = []color.NRGBA{
		{124, 58, 237, 242},  // фиолетовый
		{236, 72, 153, 242},  // розовый
		{250, 204, 21, 242},  // жёлтый
	}
	PauseButtonColor = colornames.Orange
	PlayButtonColor  = colornames.Limegreen
	SoundOnColor     = colornames.Deepskyblue
	SoundOffColor    = colornames.Dimgray
	DPadColor        = color.NRGBA{255, 255, 255, 48}
)

// SanityColor: зелёный выше SanityHighMark, жёлтый выше SanityLowMark, иначе красный
func SanityColor(sanity int) color.RGBA {
	switch {
	case sanity > SanityHighMark:
		return SanityHighColor
	case sanity > SanityLowMark:
		return SanityMidColor
	}
	return SanityLowColor
}
