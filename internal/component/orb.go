// internal/component/orb.go
package component

import "go-sanity-survival/internal/types"

// Orb — сфера, восстанавливающая рассудок
type Orb struct {
	ID types.EntityID
	Body
	Pulse float64 // фаза пульсации
}
