// pkg/render/shapes.go
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Shapes draws filled primitives, reusing vertex buffers between calls.
type Shapes struct {
	vs []ebiten.Vertex
	is []uint16
}

// FillRotatedSquare fills a square of the given side centred at (cx, cy)
// and rotated by angle radians.
func (s *Shapes) FillRotatedSquare(dst *ebiten.Image, cx, cy, side, angle float64, clr color.Color) {
	if angle == 0 {
		half := side / 2
		vector.DrawFilledRect(dst, float32(cx-half), float32(cy-half), float32(side), float32(side), clr, false)
		return
	}

	half := side / 2
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}

	var path vector.Path
	for i, c := range corners {
		x := cx + c[0]*cos - c[1]*sin
		y := cy + c[0]*sin + c[1]*cos
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	s.FillPath(dst, &path, clr)
}

// FillPath fills a closed path with a solid color.
func (s *Shapes) FillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(dst, clr)
}

// StrokePath outlines a path with lines of the given width.
func (s *Shapes) StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	s.draw(dst, clr)
}

func (s *Shapes) draw(dst *ebiten.Image, clr color.Color) {
	r, g, b, a := straight(clr)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

// straight returns non-premultiplied components in [0, 1].
func straight(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
