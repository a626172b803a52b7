// pkg/render/surface.go
package render

import (
	"image"
	"image/color"
	"math"

	"eternity-background/internal/component"

	"github.com/peterstace/simplefeatures/geom"
)

// BlendMode — способ наложения картинки на поверхность.
type BlendMode int

const (
	BlendNormal   BlendMode = iota // обычное наложение поверх
	BlendAdditive                  // сложение каналов с насыщением на 255
)

// DrawOptions — параметры Surface.Draw.
type DrawOptions struct {
	Rotation float64 // градусы, против часовой стрелки на экране
	Scale    float64 // 0 означает 1
	Blend    BlendMode
}

// ScaleFactor возвращает масштаб с учётом нулевого значения.
func (o DrawOptions) ScaleFactor() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// Surface — поверхность для рисования. Экран и предрендеренные картинки
// объектов реализуют один и тот же интерфейс.
type Surface interface {
	Size() (w, h int)
	Fill(c color.Color)
	FillRect(r component.Rect, c color.Color)
	// StrokeRect рисует контур r, обводка центрирована по рёбрам.
	StrokeRect(r component.Rect, width float64, c color.Color)
	FillCircle(center geom.XY, radius float64, c color.Color)
	// Draw накладывает src так, что его центр попадает в center.
	Draw(src Surface, center geom.XY, opts DrawOptions)
}

// Backend создаёт поверхности одного вида. Поверхности разных бэкендов не смешиваются.
type Backend interface {
	NewSurface(w, h int) Surface
	FromImage(img image.Image) Surface
}

// RotatedSize — габариты прямоугольника w×h после поворота на deg градусов.
func RotatedSize(w, h, deg float64) (float64, float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	return w*cos + h*sin, w*sin + h*cos
}

// pixels округляет размер вверх до целых пикселей, игнорируя шум float, но не меньше 1.
func pixels(v float64) int {
	n := int(math.Ceil(v - 1e-9))
	if n < 1 {
		return 1
	}
	return n
}
