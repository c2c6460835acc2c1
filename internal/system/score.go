// internal/system/score.go
package system

import (
	"math"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/internal/config"
)

// LiveScore: оценка счёта во время игры: банк плюс бонусы уровня и времени.
// Бонусы ещё не «забанкованы», поэтому при переходе уровня число скачет.
func LiveScore(run *component.Run) int {
	return sanitizeScore(float64(run.Score) + levelTimeBonus(run))
}

// FinalScore: итоговый счёт уровня или игры. Результат становится новым банком.
func FinalScore(run *component.Run, sanity int) int {
	return sanitizeScore(float64(run.Score) + levelTimeBonus(run) + float64(sanity*config.SanityScoreMultiple))
}

func levelTimeBonus(run *component.Run) float64 {
	return float64(run.Level*config.LevelScoreBonus) + math.Floor(run.GameTime*config.TimeScorePerSecond)
}

// sanitizeScore приводит NaN, бесконечности и отрицательные значения к нулю.
func sanitizeScore(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
