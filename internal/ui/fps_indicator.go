// internal/ui/fps_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"eternity-background/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FPSIndicator выводит в углу экрана сглаженный FPS, текущий dt и число объектов.
type FPSIndicator struct {
	X, Y     int
	fontFace font.Face
	color    color.RGBA
}

func NewFPSIndicator() *FPSIndicator {
	return &FPSIndicator{
		X:        config.IndicatorOffsetX,
		Y:        config.IndicatorOffsetY,
		fontFace: basicfont.Face7x13,
		color:    config.TextLightColor,
	}
}

// Lines возвращает строки индикатора.
func (i *FPSIndicator) Lines(fps, dt float64, live int) []string {
	return []string{
		fmt.Sprintf("FPS: %.1f", fps),
		fmt.Sprintf("dt: %.3f", dt),
		fmt.Sprintf("objects: %d", live),
	}
}

func (i *FPSIndicator) Draw(screen *ebiten.Image, fps, dt float64, live int) {
	y := i.Y
	for _, line := range i.Lines(fps, dt, live) {
		text.Draw(screen, line, i.fontFace, i.X, y, i.color)
		y += config.IndicatorLineSize
	}
}
