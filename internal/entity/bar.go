// internal/entity/bar.go
package entity

import (
	"image/color"
	"math"

	"eternity-background/internal/component"
	"eternity-background/internal/config"
	"eternity-background/internal/lifecycle"
	"eternity-background/pkg/render"

	"github.com/peterstace/simplefeatures/geom"
)

// BarConfig — параметры популяции полос.
type BarConfig struct {
	Color      color.RGBA
	HaloColor  color.RGBA     // A == 0 отключает ореол
	HaloStroke float64        // 0 — FilledHaloStroke*HaloStrokeScale
	Sprite     render.Surface // если задан, заменяет залитый прямоугольник ядра
}

// BarParams — значения, выбранные при спавне.
type BarParams struct {
	Center          geom.XY
	Velocity        geom.XY
	Width, Length   float64
	Rotation        float64
	AngularVelocity float64
}

type BarFactory struct {
	cfg     BarConfig
	backend render.Backend
}

func NewBarFactory(cfg BarConfig, backend render.Backend) *BarFactory {
	if cfg.HaloStroke <= 0 {
		cfg.HaloStroke = config.FilledHaloStroke * config.HaloStrokeScale
	}
	return &BarFactory{cfg: cfg, backend: backend}
}

func (f *BarFactory) New(p BarParams) *BarBody {
	b := &BarBody{
		Body:   component.Body{Position: p.Center, Velocity: p.Velocity},
		Spin:   component.Spin{Rotation: p.Rotation, AngularVelocity: p.AngularVelocity},
		width:  p.Width,
		length: p.Length,
	}
	if f.cfg.Sprite != nil {
		b.core = f.cfg.Sprite
		w, h := f.cfg.Sprite.Size()
		b.width, b.length = float64(w), float64(h)
	} else {
		b.core = f.backend.NewSurface(int(math.Ceil(p.Width)), int(math.Ceil(p.Length)))
		b.core.FillRect(centeredRect(b.core, p.Width, p.Length), f.cfg.Color)
	}
	if render.Visible(f.cfg.HaloColor) {
		hs := f.cfg.HaloStroke
		b.halo = f.backend.NewSurface(int(math.Ceil(b.width+hs)), int(math.Ceil(b.length+hs)))
		b.halo.StrokeRect(centeredRect(b.halo, b.width, b.length), hs, f.cfg.HaloColor)
	}
	return b
}

// BarBody — большая вращающаяся полоса, дрейфующая по диагонали к левому верхнему углу.
type BarBody struct {
	component.Body
	component.Spin

	width, length float64
	core          render.Surface
	halo          render.Surface
}

func (b *BarBody) Advance(dt float64) {
	b.Body.Advance(dt)
	b.Spin.Advance(dt)
}

// Bounds — неповёрнутый прямоугольник полосы.
func (b *BarBody) Bounds() component.Rect {
	return component.RectFromCenter(b.Position, b.width, b.length)
}

func (b *BarBody) Culled(c lifecycle.Culler, viewport component.Rect) bool {
	return c.Departed(b.Bounds(), viewport)
}

func (b *BarBody) Draw(dst render.Surface) {
	angle := b.Angle()
	if b.halo != nil {
		dst.Draw(b.halo, b.Position, render.DrawOptions{Rotation: angle, Blend: render.BlendAdditive})
	}
	dst.Draw(b.core, b.Position, render.DrawOptions{Rotation: angle})
}
