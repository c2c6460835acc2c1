// internal/assets/font_manager.go
package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// FontManager загружает источник шрифта один раз и кэширует начертания по размеру.
type FontManager struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFontManager создает менеджер на основе встроенного Go Bold.
func NewFontManager() (*FontManager, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontManager{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face возвращает начертание нужного размера
func (m *FontManager) Face(size float64) *text.GoTextFace {
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: m.source, Size: size}
	m.faces[size] = f
	return f
}
