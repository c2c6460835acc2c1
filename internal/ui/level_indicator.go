// internal/ui/level_indicator.go
package ui

import (
	"fmt"
	"math"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const hudTextY = 80

// LevelIndicator отображает номер уровня в левом верхнем углу поля
// и оставшееся время в правом.
type LevelIndicator struct {
	level render.Label
	timer render.Label
}

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(face text.Face) *LevelIndicator {
	base := render.Label{
		Face:      face,
		Color:     config.TextLightColor,
		Outline:   config.OutlineColor,
		Thickness: 2,
	}
	timer := base
	timer.Align = render.AlignRight
	return &LevelIndicator{level: base, timer: timer}
}

// TimeText: «TIME: 12s», после окончания уровня «TIME: CLEAR!»
func TimeText(remaining float64) string {
	if remaining <= 0 {
		return "TIME: CLEAR!"
	}
	return fmt.Sprintf("TIME: %ds", int(math.Ceil(remaining)))
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level int, remaining float64) {
	if level <= 0 {
		return
	}
	i.level.Draw(screen, fmt.Sprintf("LEVEL %d", level), 20, hudTextY)
	i.timer.Draw(screen, TimeText(remaining), config.ScreenWidth-20, hudTextY)
}
