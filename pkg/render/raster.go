// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"math"

	"eternity-background/internal/component"

	"github.com/peterstace/simplefeatures/geom"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// kappa — смещение контрольных точек кубической кривой для четверти окружности
const kappa = 0.5522847498

// RasterBackend рисует в память (*image.RGBA). Нужен для headless-режима и тестов.
type RasterBackend struct{}

func (RasterBackend) NewSurface(w, h int) Surface {
	return NewRasterSurface(w, h)
}

func (RasterBackend) FromImage(img image.Image) Surface {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return &RasterSurface{img: rgba}
}

// RasterSurface — программная поверхность поверх *image.RGBA.
type RasterSurface struct {
	img *image.RGBA
}

func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{img: image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))}
}

// Image возвращает нижележащее изображение (для сохранения кадра).
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// RGBAAt возвращает пиксель в предумноженном виде.
func (s *RasterSurface) RGBAAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func (s *RasterSurface) Fill(c color.Color) {
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

func (s *RasterSurface) rasterizer() *vector.Rasterizer {
	w, h := s.Size()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = xdraw.Over
	return z
}

func (s *RasterSurface) paint(z *vector.Rasterizer, c color.Color) {
	z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

func rectPath(z *vector.Rasterizer, x0, y0, x1, y1 float64, reverse bool) {
	z.MoveTo(float32(x0), float32(y0))
	if reverse {
		z.LineTo(float32(x0), float32(y1))
		z.LineTo(float32(x1), float32(y1))
		z.LineTo(float32(x1), float32(y0))
	} else {
		z.LineTo(float32(x1), float32(y0))
		z.LineTo(float32(x1), float32(y1))
		z.LineTo(float32(x0), float32(y1))
	}
	z.ClosePath()
}

func (s *RasterSurface) FillRect(r component.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	z := s.rasterizer()
	rectPath(z, r.Left(), r.Top(), r.Right(), r.Bottom(), false)
	s.paint(z, c)
}

func (s *RasterSurface) StrokeRect(r component.Rect, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	half := width / 2
	z := s.rasterizer()
	rectPath(z, r.Left()-half, r.Top()-half, r.Right()+half, r.Bottom()+half, false)
	// внутренний контур в обратную сторону вырезает дыру
	if r.W > width && r.H > width {
		rectPath(z, r.Left()+half, r.Top()+half, r.Right()-half, r.Bottom()-half, true)
	}
	s.paint(z, c)
}

func (s *RasterSurface) FillCircle(center geom.XY, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	k := float32(kappa) * r
	z := s.rasterizer()
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	s.paint(z, c)
}

func (s *RasterSurface) Draw(src Surface, center geom.XY, opts DrawOptions) {
	rs, ok := src.(*RasterSurface)
	if !ok {
		panic("render: RasterSurface can only draw RasterSurface sources")
	}
	img := rs.img
	if opts.Rotation != 0 || opts.ScaleFactor() != 1 {
		img = Rotate(img, opts.Rotation, opts.ScaleFactor())
	}
	b := img.Bounds()
	x0 := int(math.Round(center.X - float64(b.Dx())/2))
	y0 := int(math.Round(center.Y - float64(b.Dy())/2))
	dr := image.Rect(x0, y0, x0+b.Dx(), y0+b.Dy())

	switch opts.Blend {
	case BlendAdditive:
		addBlit(s.img, dr, img, b.Min)
	default:
		xdraw.Draw(s.img, dr, img, b.Min, xdraw.Over)
	}
}

// addBlit складывает предумноженные каналы src с dst с насыщением.
func addBlit(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point) {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	for y := 0; y < clipped.Dy(); y++ {
		di := dst.PixOffset(clipped.Min.X, clipped.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		for x := 0; x < clipped.Dx()*4; x++ {
			dst.Pix[di+x] = addChannel(dst.Pix[di+x], src.Pix[si+x])
		}
	}
}

// Rotate возвращает новое изображение, повёрнутое на deg градусов против часовой стрелки
// и масштабированное на scale. Границы пересчитываются: поворот меняет размеры.
func Rotate(src *image.RGBA, deg, scale float64) *image.RGBA {
	b := src.Bounds()
	w, h := RotatedSize(float64(b.Dx())*scale, float64(b.Dy())*scale, deg)
	dst := image.NewRGBA(image.Rect(0, 0, pixels(w), pixels(h)))

	sin, cos := math.Sincos(deg * math.Pi / 180)
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	a, bb := scale*cos, scale*sin
	d, e := -scale*sin, scale*cos
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	m := f64.Aff3{
		a, bb, float64(dw)/2 - (a*cx + bb*cy),
		d, e, float64(dh)/2 - (d*cx + e*cy),
	}
	xdraw.BiLinear.Transform(dst, m, src, b, xdraw.Src, nil)
	return dst
}
