// internal/component/enemy.go
package component

import "go-sanity-survival/internal/types"

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID       types.EntityID
	Body
	Speed    float64
	Sprite   int     // индекс в каталоге спрайтов defs
	Rotation float64 // радианы
}
