// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/defs"
	"go-sanity-survival/internal/entity"
	"go-sanity-survival/internal/utils"
	"go-sanity-survival/pkg/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует игровое поле. Мир только читается: вся случайность
// тряски и глитча берётся из собственного генератора рендерера.
type WorldRenderer struct {
	catalog *defs.Catalog
	rng     *utils.PRNGService
	shapes  Shapes
	layer   *ebiten.Image
	face    func(size float64) *text.GoTextFace
}

func NewWorldRenderer(catalog *defs.Catalog, face func(size float64) *text.GoTextFace) *WorldRenderer {
	return &WorldRenderer{
		catalog: catalog,
		rng:     utils.NewPRNGService(0),
		layer:   ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		face:    face,
	}
}

// Draw рисует фон и все сущности мира на screen.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	r.layer.Clear()
	r.drawBackground(r.layer, w)
	r.drawGlitch(r.layer, w)
	r.drawBullets(r.layer, w)
	r.drawEnemies(r.layer, w)
	r.drawOrbs(r.layer, w)
	r.drawPowerUps(r.layer, w)
	r.drawParticles(r.layer, w)
	r.drawPlayer(r.layer, w)

	op := &ebiten.DrawImageOptions{}
	if shake := w.Effects.ShakeAmount; shake > 0 {
		op.GeoM.Translate(r.rng.Spread(shake), r.rng.Spread(shake))
	}
	screen.DrawImage(r.layer, op)
}

func (r *WorldRenderer) drawBackground(dst *ebiten.Image, w *entity.World) {
	dst.Fill(config.BackgroundColor)
	wash := palette.HSLA(w.Effects.BackgroundHue, 0.8, 0.15, 0.3)
	vector.DrawFilledRect(dst, 0, 0, float32(w.Width), float32(w.Height), wash, false)
}

func (r *WorldRenderer) drawGlitch(dst *ebiten.Image, w *entity.World) {
	if w.Effects.GlitchTimer <= 0 || r.rng.Float64() <= 0.7 {
		return
	}
	c := color.NRGBA{R: 255, G: 0, B: uint8(r.rng.Intn(256)), A: 26}
	vector.DrawFilledRect(dst,
		float32(r.rng.Float64()*w.Width), float32(r.rng.Float64()*w.Height),
		float32(r.rng.Float64()*200), float32(r.rng.Float64()*50), c, false)
}

func (r *WorldRenderer) drawBullets(dst *ebiten.Image, w *entity.World) {
	for _, b := range w.Bullets {
		half := b.Size / 2
		vector.DrawFilledRect(dst, float32(b.X-half), float32(b.Y-half), float32(b.Size), float32(b.Size), config.BulletColor, false)
	}
}

func (r *WorldRenderer) drawEnemies(dst *ebiten.Image, w *entity.World) {
	for i, e := range w.Enemies {
		r.shapes.FillRotatedSquare(dst, e.X+3, e.Y+3, e.Size, e.Rotation, config.ShadowColor)
		r.shapes.FillRotatedSquare(dst, e.X, e.Y, e.Size+4, e.Rotation, config.OutlineColor)
		hue := w.Effects.BackgroundHue + float64(i)*config.EnemyHueShift
		r.shapes.FillRotatedSquare(dst, e.X, e.Y, e.Size, e.Rotation, palette.HSLA(hue, 1, 0.5, 1))

		sprite := r.catalog.Enemy(e.Sprite)
		Label{
			Face:     r.face(e.Size * 0.4),
			Color:    config.TextDarkColor,
			Align:    AlignCenter,
			Rotation: e.Rotation,
		}.Draw(dst, sprite.Face, e.X, e.Y)
	}
}

func (r *WorldRenderer) drawOrbs(dst *ebiten.Image, w *entity.World) {
	for _, o := range w.Orbs {
		size := o.Size + math.Sin(o.Pulse)*5
		cx, cy := float32(o.X), float32(o.Y)
		vector.DrawFilledCircle(dst, cx, cy, float32(size/2+10), palette.WithAlpha(config.OrbColor, 0.15), true)
		vector.DrawFilledCircle(dst, cx, cy, float32(size/2+3), config.OutlineColor, true)
		vector.DrawFilledCircle(dst, cx, cy, float32(size/2), config.OrbColor, true)
	}
}

func (r *WorldRenderer) drawPowerUps(dst *ebiten.Image, w *entity.World) {
	for _, p := range w.PowerUps {
		style := r.catalog.PowerUp(p.Kind)
		r.shapes.FillRotatedSquare(dst, p.X+4, p.Y+4, p.Size, p.Rotation, config.ShadowColor)
		r.shapes.FillRotatedSquare(dst, p.X, p.Y, p.Size+6, p.Rotation, config.OutlineColor)
		r.shapes.FillRotatedSquare(dst, p.X, p.Y, p.Size, p.Rotation, style.Color)
		Label{
			Face:     r.face(p.Size * 0.7),
			Color:    config.TextDarkColor,
			Align:    AlignCenter,
			Rotation: p.Rotation,
		}.Draw(dst, style.Glyph, p.X, p.Y)
	}
}

func (r *WorldRenderer) drawParticles(dst *ebiten.Image, w *entity.World) {
	for _, p := range w.Particles {
		half := p.Size / 2
		vector.DrawFilledRect(dst, float32(p.X-half), float32(p.Y-half), float32(p.Size), float32(p.Size),
			palette.WithAlpha(p.Color, p.Life), false)
	}
}

func (r *WorldRenderer) drawPlayer(dst *ebiten.Image, w *entity.World) {
	p := &w.Player
	alpha := 1.0
	// Мигание во время неуязвимости
	if p.IsInvulnerable() && int(math.Floor(p.InvulnerableTimer/10))%2 == 1 {
		alpha = 0.5
	}

	cx, cy := float32(p.X), float32(p.Y)
	if p.IsBoosted() {
		vector.StrokeCircle(dst, cx, cy, float32(p.Size/2+10), 3, palette.WithAlpha(config.BoostRingColor, alpha), true)
	}
	half := p.Size / 2
	vector.DrawFilledRect(dst, float32(p.X-half+4), float32(p.Y-half+4), float32(p.Size), float32(p.Size),
		palette.WithAlpha(config.ShadowColor, alpha), false)
	vector.DrawFilledRect(dst, float32(p.X-half-3), float32(p.Y-half-3), float32(p.Size+6), float32(p.Size+6),
		palette.WithAlpha(config.OutlineColor, alpha), false)
	vector.DrawFilledRect(dst, float32(p.X-half), float32(p.Y-half), float32(p.Size), float32(p.Size),
		palette.WithAlpha(config.PlayerColor, alpha), false)
	Label{
		Face:  r.face(p.Size * 0.45),
		Color: palette.WithAlpha(config.TextDarkColor, alpha),
		Align: AlignCenter,
	}.Draw(dst, "B)", p.X, p.Y)
}
