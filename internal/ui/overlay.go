// internal/ui/overlay.go
package ui

import (
	"fmt"
	"image/color"

	"go-sanity-survival/internal/assets"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/utils"
	"go-sanity-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlays рисует полноэкранные заставки поверх поля.
type Overlays struct {
	fonts        *assets.FontManager
	ResumeButton *Button
	ReplayButton *Button
	StartButton  *Button
}

func NewOverlays(fonts *assets.FontManager) *Overlays {
	face := fonts.Face(28)
	return &Overlays{
		fonts:        fonts,
		ResumeButton: NewMenuButton("RESUME", config.ScreenHeight/2+60, config.StartButtonColor, face),
		ReplayButton: NewMenuButton("PLAY AGAIN", config.ScreenHeight/2+170, config.ReplayButtonColor, face),
		StartButton:  NewMenuButton("START", config.ScreenHeight/2+90, config.StartButtonColor, face),
	}
}

func (o *Overlays) title(size float64, clr color.Color) render.Label {
	return render.Label{
		Face:      o.fonts.Face(size),
		Color:     clr,
		Outline:   config.OutlineColor,
		Thickness: 3,
		Align:     render.AlignCenter,
	}
}

func dim(screen *ebiten.Image, clr color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, clr, false)
}

// DrawMenu: заставка до первого старта
func (o *Overlays) DrawMenu(screen *ebiten.Image) {
	dim(screen, config.OverlayDimColor)
	cx := float64(config.ScreenWidth / 2)
	o.title(56, config.WinTitleColor).Draw(screen, "SANITY SURVIVAL", cx, 170)
	hint := o.title(20, config.TextLightColor)
	hint.Thickness = 1
	hint.Draw(screen, "Survive 20 levels of 30 seconds each", cx, 240)
	hint.Draw(screen, "WASD / arrows to move, SPACE to shoot, P to pause", cx, 270)
	o.StartButton.Draw(screen)
}

func (o *Overlays) DrawPause(screen *ebiten.Image) {
	dim(screen, config.OverlayDimColor)
	o.title(48, config.PauseTitleColor).Draw(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-40)
	o.ResumeButton.Draw(screen)
}

// DrawLevelUp: переливающаяся заставка перехода. progress растёт от 0 до 1.
func (o *Overlays) DrawLevelUp(screen *ebiten.Image, nextLevel int, progress float64) {
	bands := config.LevelUpWashColors
	h := float32(config.ScreenHeight) / float32(len(bands))
	for i, c := range bands {
		vector.DrawFilledRect(screen, 0, float32(i)*h, config.ScreenWidth, h+1, c, false)
	}
	cx := float64(config.ScreenWidth / 2)
	scale := utils.Lerp(1.1, 1, progress)
	o.title(56*scale, config.TextLightColor).Draw(screen, "LEVEL UP!", cx, config.ScreenHeight/2-30)
	o.title(32, config.LevelUpTextColor).Draw(screen, fmt.Sprintf("LEVEL %d", nextLevel), cx, config.ScreenHeight/2+40)
}

func (o *Overlays) DrawGameOver(screen *ebiten.Image, win bool, level, score int) {
	dim(screen, config.GameOverDimColor)
	cx := float64(config.ScreenWidth / 2)

	title, clr := "YOU LOST YOUR MIND!", config.LoseTitleColor
	if win {
		title, clr = "YOU ESCAPED THE VIRUS!", config.WinTitleColor
	}
	o.title(44, clr).Draw(screen, title, cx, config.ScreenHeight/2-90)
	o.title(28, config.PauseTitleColor).Draw(screen, fmt.Sprintf("LEVEL REACHED: %d", level), cx, config.ScreenHeight/2)
	o.title(28, config.LevelUpTextColor).Draw(screen, fmt.Sprintf("SCORE: %d", score), cx, config.ScreenHeight/2+50)
	o.ReplayButton.Draw(screen)
}
