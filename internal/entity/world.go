// internal/entity/world.go
package entity

import "eternity-background/internal/component"

// World хранит три набора активных объектов и видимую область.
// Порядок отрисовки: прямоугольники, частицы, полосы.
type World struct {
	Viewport  component.Rect
	Rects     *Set[*RectBody]
	Particles *Set[*ParticleBody]
	Bars      *Set[*BarBody]
}

func NewWorld(width, height int) *World {
	return &World{
		Viewport:  component.Rect{W: float64(width), H: float64(height)},
		Rects:     NewSet[*RectBody](),
		Particles: NewSet[*ParticleBody](),
		Bars:      NewSet[*BarBody](),
	}
}

// Live возвращает общее число активных объектов.
func (w *World) Live() int {
	return w.Rects.Len() + w.Particles.Len() + w.Bars.Len()
}
