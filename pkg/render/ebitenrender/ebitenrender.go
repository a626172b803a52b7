// pkg/render/ebitenrender/ebitenrender.go
package ebitenrender

import (
	"image"
	"image/color"
	"math"

	"eternity-background/internal/component"
	"eternity-background/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/peterstace/simplefeatures/geom"
)

var (
	_ render.Backend = Backend{}
	_ render.Surface = (*Surface)(nil)
)

// Backend создаёт поверхности на GPU-изображениях ebiten.
type Backend struct{}

func (Backend) NewSurface(w, h int) render.Surface {
	return NewSurface(ebiten.NewImage(max(w, 1), max(h, 1)))
}

func (Backend) FromImage(img image.Image) render.Surface {
	return NewSurface(ebiten.NewImageFromImage(img))
}

// Surface оборачивает *ebiten.Image: экран или предрендеренную картинку.
type Surface struct {
	img *ebiten.Image
}

func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *Surface) FillRect(r component.Rect, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func (s *Surface) StrokeRect(r component.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, true)
}

func (s *Surface) FillCircle(center geom.XY, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (s *Surface) Draw(src render.Surface, center geom.XY, opts render.DrawOptions) {
	es, ok := src.(*Surface)
	if !ok {
		panic("ebitenrender: Surface can only draw Surface sources")
	}
	b := es.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if sc := opts.ScaleFactor(); sc != 1 {
		op.GeoM.Scale(sc, sc)
	}
	// ebiten вращает по часовой стрелке, угол же задан против
	op.GeoM.Rotate(-opts.Rotation * math.Pi / 180)
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	if opts.Blend == render.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}
	s.img.DrawImage(es.img, op)
}
