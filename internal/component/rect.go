// internal/component/rect.go
package component

import "github.com/peterstace/simplefeatures/geom"

// Rect — прямоугольник с вещественными координатами, (X, Y) — левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter строит прямоугольник заданного размера с центром в c.
func RectFromCenter(c geom.XY, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() geom.XY {
	return geom.XY{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps сообщает, пересекаются ли прямоугольники. Касание рёбрами пересечением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
