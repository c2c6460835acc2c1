// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в пределах забега
type EntityID uint64
