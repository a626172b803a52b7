// internal/entity/particle.go
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

// ParticleState — стадия жизненного цикла частицы.
type ParticleState int

const (
	Alive ParticleState = iota
	Expired
)

func (s ParticleState) String() string {
	if s == Expired {
		return "expired"
	}
	return "alive"
}

// ParticleConfig — параметры одного поколения частиц.
type ParticleConfig struct {
	Color       color.RGBA
	HaloColor   color.RGBA // A == 0 отключает ореол
	RadiusDecay float64    // уменьшение радиуса за один вызов Advance, от dt не зависит
	HaloScale   float64    // радиус ореола относительно радиуса ядра
}

func (c ParticleConfig) withDefaults() ParticleConfig {
	if c.HaloScale <= 0 {
		c.HaloScale = config.ParticleHaloScale
	}
	return c
}

// ParticleParams — значения, выбранные при спавне.
type ParticleParams struct {
	Center   geom.XY
	Velocity geom.XY
	Radius   float64
}

// ParticleFactory создаёт частицы одного поколения.
type ParticleFactory struct {
	cfg     ParticleConfig
	backend render.Backend
}

func NewParticleFactory(cfg ParticleConfig, backend render.Backend) *ParticleFactory {
	return &ParticleFactory{cfg: cfg.withDefaults(), backend: backend}
}

// HaloRadius возвращает радиус ореола для радиуса ядра.
func (f *ParticleFactory) HaloRadius(radius float64) float64 {
	if !render.Visible(f.cfg.HaloColor) {
		return radius
	}
	return radius * f.cfg.HaloScale
}

func (f *ParticleFactory) New(p ParticleParams) *ParticleBody {
	pt := &ParticleBody{
		Body:     component.Body{Position: p.Center, Velocity: p.Velocity},
		radius:   p.Radius,
		initial:  p.Radius,
		decay:    f.cfg.RadiusDecay,
		haloRate: 1,
	}
	pt.core = f.disc(p.Radius, f.cfg.Color)
	if render.Visible(f.cfg.HaloColor) {
		pt.halo = f.disc(p.Radius*f.cfg.HaloScale, f.cfg.HaloColor)
		pt.haloRate = f.cfg.HaloScale
	}
	if p.Radius <= 0 {
		pt.radius = 0
		pt.state = Expired
	}
	return pt
}

func (f *ParticleFactory) disc(radius float64, c color.RGBA) render.Surface {
	d := int(math.Ceil(2 * radius))
	s := f.backend.NewSurface(d, d)
	cx, cy := surfaceCenter(s)
	s.FillCircle(geom.XY{X: cx, Y: cy}, radius, c)
	return s
}

// ParticleBody — круглая частица с ореолом, радиус которой убывает до нуля.
type ParticleBody struct {
	component.Body

	radius   float64
	initial  float64
	decay    float64
	haloRate float64
	state    ParticleState
	core     render.Surface
	halo     render.Surface
}

// Advance двигает частицу на velocity*dt и уменьшает радиус на фиксированный шаг.
// Достижение нуля — терминальный переход.
func (p *ParticleBody) Advance(dt float64) {
	if p.state == Expired {
		return
	}
	p.Body.Advance(dt)
	p.radius -= p.decay
	if p.radius <= 0 {
		p.radius = 0
		p.state = Expired
	}
}

func (p *ParticleBody) Radius() float64      { return p.radius }
func (p *ParticleBody) State() ParticleState { return p.state }
func (p *ParticleBody) Expired() bool        { return p.state == Expired }

// Bounds — квадрат, описанный вокруг текущего ореола.
func (p *ParticleBody) Bounds() component.Rect {
	d := 2 * p.radius * p.haloRate
	return component.RectFromCenter(p.Position, d, d)
}

func (p *ParticleBody) Culled(c lifecycle.Culler, viewport component.Rect) bool {
	return p.Expired() || c.ShouldCullMoving(p.Bounds(), p.Velocity, viewport)
}

func (p *ParticleBody) Draw(dst render.Surface) {
	if p.Expired() {
		return
	}
	scale := p.radius / p.initial
	if p.halo != nil {
		dst.Draw(p.halo, p.Position, render.DrawOptions{Scale: scale, Blend: render.BlendAdditive})
	}
	dst.Draw(p.core, p.Position, render.DrawOptions{Scale: scale})
}
