// internal/app/clock.go
package app

import "time"

// FrameClock измеряет реальное время между кадрами хоста в миллисекундах.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick возвращает миллисекунды с прошлого вызова. Первый вызов даёт 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.Reset(now)
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(time.Millisecond)
}

// Reset делает now точкой отсчёта следующего Tick
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
	c.started = true
}
