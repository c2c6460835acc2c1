// internal/component/powerup.go
package component

import "go-sanity-survival/internal/types"

// PowerUpKind — тип усиления
type PowerUpKind int

const (
	PowerUpCalm PowerUpKind = iota
	PowerUpSpeed
	PowerUpBomb
	powerUpKindCount
)

// PowerUpKinds перечисляет все типы в порядке объявления
func PowerUpKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, powerUpKindCount)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpCalm:
		return "calm"
	case PowerUpSpeed:
		return "speed"
	case PowerUpBomb:
		return "bomb"
	}
	return "unknown"
}

// PowerUp — подбираемое усиление
type PowerUp struct {
	ID types.EntityID
	Body
	Kind     PowerUpKind
	Rotation float64
}
