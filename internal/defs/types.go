// internal/defs/types.go
package defs

import (
	"image/color"

	"go-sanity-survival/internal/component"
)

// EnemySprite: внешний вид одного вида врага.
type EnemySprite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Face string `json:"face"` // короткая подпись, рисуется поверх квадрата
}

// PowerUpVisual: внешний вид усиления.
type PowerUpVisual struct {
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
	Color string `json:"color"` // #rrggbb
}

// Catalog: все визуальные определения игры.
type Catalog struct {
	Enemies  []EnemySprite
	PowerUps map[component.PowerUpKind]PowerUpStyle
}

// PowerUpStyle: разобранный PowerUpVisual
type PowerUpStyle struct {
	Glyph string
	Color color.RGBA
}

// EnemyCount возвращает число видов врагов
func (c *Catalog) EnemyCount() int {
	return len(c.Enemies)
}

// Enemy возвращает спрайт по индексу; индекс вне диапазона берётся по модулю.
func (c *Catalog) Enemy(i int) EnemySprite {
	n := len(c.Enemies)
	if n == 0 {
		return EnemySprite{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return c.Enemies[i]
}

// PowerUp возвращает стиль усиления
func (c *Catalog) PowerUp(kind component.PowerUpKind) PowerUpStyle {
	return c.PowerUps[kind]
}
