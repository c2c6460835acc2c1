// internal/component/movement.go
package component

// Position — компонент позиции (центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	VX, VY float64
}

// Body — круглое тело для проверки столкновений
type Body struct {
	Position
	Size float64 // диаметр
}

// Center возвращает центр тела
func (b *Body) Center() (float64, float64) {
	return b.X, b.Y
}

// Diameter возвращает размер тела
func (b *Body) Diameter() float64 {
	return b.Size
}
