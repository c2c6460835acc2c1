// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// Direction возвращает единичный вектор от (fromX, fromY) к (toX, toY) и расстояние.
// При совпадении точек возвращает нулевой вектор.
func Direction(fromX, fromY, toX, toY float64) (dx, dy, dist float64) {
	dx = toX - fromX
	dy = toY - fromY
	dist = math.Hypot(dx, dy)
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// Decay уменьшает таймер на step, не опуская его ниже нуля
func Decay(timer, step float64) float64 {
	if timer <= step {
		return 0
	}
	return timer - step
}
