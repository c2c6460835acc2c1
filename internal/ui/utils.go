// internal/ui/utils.go
package ui

import (
	"image/color"
	"math"

	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var shapes render.Shapes

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	shapes.FillPath(screen, path, clr)
}

func strokePath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	shapes.StrokePath(screen, path, 1.5, clr)
}

func strokeOpen(screen *ebiten.Image, path *vector.Path, clr color.Color, width float32) {
	shapes.StrokePath(screen, path, width, clr)
}

// inCircle проверяет попадание точки в круг
func inCircle(x, y int, cx, cy, r float32) bool {
	return math.Hypot(float64(float32(x)-cx), float64(float32(y)-cy)) <= float64(r)
}
