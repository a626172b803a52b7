// internal/entity/rect.go
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

// RectConfig — общие параметры популяции прямоугольников.
type RectConfig struct {
	Color            color.RGBA
	HaloColor        color.RGBA // A == 0 отключает ореол
	FilledHaloStroke float64    // условная толщина обводки залитого прямоугольника для расчёта ореола
	HaloStrokeScale  float64
}

func (c RectConfig) withDefaults() RectConfig {
	if c.FilledHaloStroke <= 0 {
		c.FilledHaloStroke = config.FilledHaloStroke
	}
	if c.HaloStrokeScale <= 0 {
		c.HaloStrokeScale = config.HaloStrokeScale
	}
	return c
}

// RectParams — конкретные значения, выбранные при спавне.
type RectParams struct {
	Center          geom.XY
	Velocity        geom.XY
	Size            float64
	Rotation        float64
	AngularVelocity float64
	Stroke          float64 // 0 — залитый квадрат
}

// RectFactory создаёт прямоугольники одной популяции.
type RectFactory struct {
	cfg     RectConfig
	backend render.Backend
}

func NewRectFactory(cfg RectConfig, backend render.Backend) *RectFactory {
	return &RectFactory{cfg: cfg.withDefaults(), backend: backend}
}

// HaloStroke возвращает толщину ореола: HaloStrokeScale × обводка,
// для залитого прямоугольника (stroke == 0) берётся FilledHaloStroke.
func (f *RectFactory) HaloStroke(stroke float64) float64 {
	if stroke > 0 {
		return f.cfg.HaloStrokeScale * stroke
	}
	return f.cfg.HaloStrokeScale * f.cfg.FilledHaloStroke
}

// New предрендеривает картинки ядра и ореола и возвращает готовый объект.
func (f *RectFactory) New(p RectParams) *RectBody {
	r := &RectBody{
		Body:   component.Body{Position: p.Center, Velocity: p.Velocity},
		Spin:   component.Spin{Rotation: p.Rotation, AngularVelocity: p.AngularVelocity},
		size:   p.Size,
		stroke: p.Stroke,
	}
	r.core, r.coreExtent = f.square(p.Size, p.Stroke, f.cfg.Color)
	r.haloExtent = r.coreExtent
	if render.Visible(f.cfg.HaloColor) {
		r.halo, r.haloExtent = f.square(p.Size, f.HaloStroke(p.Stroke), f.cfg.HaloColor)
	}
	return r
}

func (f *RectFactory) square(size, stroke float64, c color.RGBA) (render.Surface, float64) {
	extent := size + stroke
	s := f.backend.NewSurface(int(math.Ceil(extent)), int(math.Ceil(extent)))
	box := centeredRect(s, size, size)
	if stroke > 0 {
		s.StrokeRect(box, stroke, c)
	} else {
		s.FillRect(box, c)
	}
	return s, extent
}

// RectBody — вращающийся прямоугольник с ореолом, всплывающий снизу вверх.
type RectBody struct {
	component.Body // Position — центр
	component.Spin

	size       float64
	stroke     float64
	core       render.Surface
	halo       render.Surface // nil, если ореол выключен
	coreExtent float64
	haloExtent float64
}

func (r *RectBody) Advance(dt float64) {
	r.Body.Advance(dt)
	r.Spin.Advance(dt)
}

// Bounds — неповёрнутый прямоугольник ореола вокруг центра.
func (r *RectBody) Bounds() component.Rect {
	return component.RectFromCenter(r.Position, r.haloExtent, r.haloExtent)
}

// CoreBounds — неповёрнутый прямоугольник ядра.
func (r *RectBody) CoreBounds() component.Rect {
	return component.RectFromCenter(r.Position, r.coreExtent, r.coreExtent)
}

func (r *RectBody) Culled(c lifecycle.Culler, viewport component.Rect) bool {
	return c.ShouldCullMoving(r.Bounds(), r.Velocity, viewport)
}

func (r *RectBody) Draw(dst render.Surface) {
	angle := r.Angle()
	if r.halo != nil {
		dst.Draw(r.halo, r.Position, render.DrawOptions{Rotation: angle, Blend: render.BlendAdditive})
	}
	dst.Draw(r.core, r.Position, render.DrawOptions{Rotation: angle})
}

func (r *RectBody) Size() float64   { return r.size }
func (r *RectBody) Stroke() float64 { return r.stroke }
