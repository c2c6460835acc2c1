// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go-sanity-survival/internal/component"
	"go-sanity-survival/pkg/palette"
)

//go:embed data/sprites.json
var builtinSprites []byte

type catalogFile struct {
	Enemies  []EnemySprite   `json:"enemies"`
	PowerUps []PowerUpVisual `json:"powerups"`
}

// LoadBuiltin разбирает встроенный каталог.
func LoadBuiltin() (*Catalog, error) {
	return Parse(builtinSprites)
}

// LoadFile читает каталог из файла.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite catalog: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и проверяет JSON каталога.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sprite catalog: %w", err)
	}
	if len(file.Enemies) == 0 {
		return nil, fmt.Errorf("sprite catalog has no enemies")
	}

	byName := make(map[string]component.PowerUpKind)
	for _, k := range component.PowerUpKinds() {
		byName[k.String()] = k
	}

	cat := &Catalog{
		Enemies:  file.Enemies,
		PowerUps: make(map[component.PowerUpKind]PowerUpStyle),
	}
	for _, v := range file.PowerUps {
		kind, ok := byName[v.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown power-up kind %q", v.Kind)
		}
		c, err := palette.ParseHex(v.Color)
		if err != nil {
			return nil, fmt.Errorf("power-up %s: %w", v.Kind, err)
		}
		cat.PowerUps[kind] = PowerUpStyle{Glyph: v.Glyph, Color: c}
	}
	for _, k := range component.PowerUpKinds() {
		if _, ok := cat.PowerUps[k]; !ok {
			return nil, fmt.Errorf("power-up %s has no visual", k)
		}
	}
	return cat, nil
}

// MustLoadBuiltin: как LoadBuiltin, но паникует. Встроенный файл
// проверяется тестами, поэтому ошибка здесь означает сломанную сборку.
func MustLoadBuiltin() *Catalog {
	cat, err := LoadBuiltin()
	if err != nil {
		panic(err)
	}
	return cat
}
