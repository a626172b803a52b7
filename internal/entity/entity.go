// internal/entity/entity.go
package entity

import (
	"eternity-background/internal/component"
	"eternity-background/internal/lifecycle"
	"eternity-background/pkg/render"
)

// Entity — общий контракт всех видимых объектов. Набор вариантов закрыт:
// RectBody, ParticleBody, BarBody.
type Entity interface {
	// Advance продвигает состояние на dt кадров.
	Advance(dt float64)
	// Bounds — ограничивающий прямоугольник отрисовки, по нему идёт отсечение.
	Bounds() component.Rect
	// Culled сообщает, что объект пора удалить из набора.
	Culled(c lifecycle.Culler, viewport component.Rect) bool
	// Draw рисует объект в текущем состоянии.
	Draw(dst render.Surface)
}

var (
	_ Entity = (*RectBody)(nil)
	_ Entity = (*ParticleBody)(nil)
	_ Entity = (*BarBody)(nil)
)

// centeredRect возвращает прямоугольник w×h по центру поверхности.
func centeredRect(s render.Surface, w, h float64) component.Rect {
	sw, sh := s.Size()
	return component.Rect{X: (float64(sw) - w) / 2, Y: (float64(sh) - h) / 2, W: w, H: h}
}

func surfaceCenter(s render.Surface) (float64, float64) {
	sw, sh := s.Size()
	return float64(sw) / 2, float64(sh) / 2
}
