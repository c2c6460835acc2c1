// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-sanity-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	MenuButtonWidth  = 260
	MenuButtonHeight = 64
)

// NewMenuButton создает крупную кнопку по центру экрана на высоте centerY.
func NewMenuButton(label string, centerY int, bg color.RGBA, face text.Face) *Button {
	x := (config.ScreenWidth - MenuButtonWidth) / 2
	y := centerY - MenuButtonHeight/2
	return NewButton(image.Rect(x, y, x+MenuButtonWidth, y+MenuButtonHeight), label, bg, face)
}
