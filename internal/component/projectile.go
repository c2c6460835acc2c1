// internal/component/projectile.go
package component

import "go-sanity-survival/internal/types"

// Bullet — снаряд игрока, летит строго вверх.
type Bullet struct {
	ID types.EntityID
	Body
	Speed float64
}
