// internal/lifecycle/culler.go
package lifecycle

import (
	"eternity-background/internal/component"

	"github.com/peterstace/simplefeatures/geom"
)

// Culler решает, когда объект окончательно покинул видимую область.
// Объекты появляются снизу или у краёв экрана и летят вверх или по диагонали,
// поэтому хватает односторонних проверок.
type Culler struct{}

// ShouldCull — box целиком выше верхнего края.
func (Culler) ShouldCull(box, viewport component.Rect) bool {
	return box.Bottom() < viewport.Top()
}

// ShouldCullMoving — общее правило прямоугольников и частиц: ушёл выше верхнего края
// или ниже нижнего, продолжая двигаться вниз.
func (c Culler) ShouldCullMoving(box component.Rect, velocity geom.XY, viewport component.Rect) bool {
	if c.ShouldCull(box, viewport) {
		return true
	}
	return velocity.Y > 0 && box.Top() > viewport.Bottom()
}

// Departed — правило для полос. Полоса появляется за правым нижним углом, где она
// тоже не пересекается с экраном, так что одно «не пересекается» удалило бы её сразу.
// Удаляется, только когда и центр ушёл за левый верхний угол.
func (Culler) Departed(rect, viewport component.Rect) bool {
	c := rect.Center()
	return !rect.Overlaps(viewport) && c.X < viewport.Left() && c.Y < viewport.Top()
}
