// internal/component/motion.go
package component

import (
	"math"

	"github.com/peterstace/simplefeatures/geom"
)

// Body — минимальное физическое состояние: позиция и скорость (пиксели за кадр при dt == 1).
type Body struct {
	Position geom.XY
	Velocity geom.XY
}

// Advance сдвигает позицию на velocity*dt.
func (b *Body) Advance(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Spin — угол поворота и угловая скорость в градусах.
// Угол копится без ограничений, по модулю 360 берётся только при отрисовке.
type Spin struct {
	Rotation        float64
	AngularVelocity float64
}

// Advance поворачивает на angularVelocity*dt.
func (s *Spin) Advance(dt float64) {
	s.Rotation += s.AngularVelocity * dt
}

// Angle возвращает угол в диапазоне [0, 360).
func (s Spin) Angle() float64 {
	a := math.Mod(s.Rotation, 360)
	if a < 0 {
		a += 360
	}
	return a
}
