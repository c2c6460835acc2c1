// internal/component/visual.go
package component

import "image/color"

// Particle — косметическая частица, на игру не влияет.
type Particle struct {
	Position
	Velocity
	Size  float64
	Color color.RGBA
	Life  float64 // 1 -> 0
}

// Effects — экранные эффекты: тряска, глитч и цикл оттенка фона.
type Effects struct {
	ShakeAmount   float64
	GlitchTimer   float64
	BackgroundHue float64 // градусы [0, 360)
}
