// internal/system/movement.go
package system

import (
	"eternity-background/internal/component"
	"eternity-background/internal/entity"
	"eternity-background/internal/lifecycle"
	"eternity-background/pkg/render"
)

// MovementSystem выполняет проход кадра: отрисовка, шаг симуляции, отсечение.
type MovementSystem struct {
	world  *entity.World
	culler lifecycle.Culler
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Step рисует каждый объект в текущем состоянии, затем продвигает его на dt
// и проверяет условие удаления. Удаление отложено до конца прохода по набору.
// dst == nil — проход без отрисовки. Возвращает число удалённых объектов.
func (s *MovementSystem) Step(dst render.Surface, dt float64) int {
	vp := s.world.Viewport
	culled := step(s.world.Rects, dst, dt, s.culler, vp)
	culled += step(s.world.Particles, dst, dt, s.culler, vp)
	culled += step(s.world.Bars, dst, dt, s.culler, vp)
	return culled
}

func step[T entity.Entity](set *entity.Set[T], dst render.Surface, dt float64, c lifecycle.Culler, vp component.Rect) int {
	return set.Sweep(func(e T) bool {
		if dst != nil {
			e.Draw(dst)
		}
		e.Advance(dt)
		return e.Culled(c, vp)
	})
}
