package render

import (
	"image"
	"image/color"
	"testing"

	"eternity-background/internal/component"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bgColor   = color.RGBA{20, 10, 50, 255}
	haloColor = color.RGBA{0, 40, 40, 255}
)

func TestAddRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{20, 50, 90, 255}, AddRGB(bgColor, haloColor))
	assert.Equal(t, color.RGBA{255, 255, 10, 255}, AddRGB(color.RGBA{250, 200, 5, 255}, color.RGBA{10, 100, 5, 255}))
}

func TestRasterSurface_FillRect(t *testing.T) {
	s := NewRasterSurface(10, 10)
	s.FillRect(component.Rect{X: 2, Y: 2, W: 4, H: 4}, haloColor)

	assert.Equal(t, haloColor, s.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, s.RGBAAt(8, 8))
}

func TestRasterSurface_StrokeRectLeavesHole(t *testing.T) {
	s := NewRasterSurface(20, 20)
	s.StrokeRect(component.Rect{X: 2, Y: 2, W: 16, H: 16}, 2, haloColor)

	assert.Equal(t, haloColor, s.RGBAAt(2, 10), "on the edge")
	assert.Equal(t, color.RGBA{}, s.RGBAAt(10, 10), "inside")
}

func TestRasterSurface_StrokeWiderThanRectFills(t *testing.T) {
	s := NewRasterSurface(40, 40)
	s.StrokeRect(component.Rect{X: 15, Y: 15, W: 10, H: 10}, 21, haloColor)

	assert.Equal(t, haloColor, s.RGBAAt(20, 20))
}

func TestRasterSurface_FillCircle(t *testing.T) {
	s := NewRasterSurface(12, 12)
	s.FillCircle(geom.XY{X: 6, Y: 6}, 6, haloColor)

	assert.Equal(t, haloColor, s.RGBAAt(6, 6))
	assert.Equal(t, color.RGBA{}, s.RGBAAt(0, 0), "corner is outside the circle")
}

func TestRasterSurface_AdditiveDraw(t *testing.T) {
	screen := NewRasterSurface(40, 40)
	screen.Fill(bgColor)

	halo := NewRasterSurface(12, 12)
	halo.FillCircle(geom.XY{X: 6, Y: 6}, 6, haloColor)

	screen.Draw(halo, geom.XY{X: 20, Y: 20}, DrawOptions{Blend: BlendAdditive})

	assert.Equal(t, color.RGBA{20, 50, 90, 255}, screen.RGBAAt(20, 20))
	assert.Equal(t, bgColor, screen.RGBAAt(2, 2), "outside the halo")
}

func TestRasterSurface_AdditiveSaturates(t *testing.T) {
	screen := NewRasterSurface(4, 4)
	screen.Fill(color.RGBA{200, 200, 200, 255})

	src := NewRasterSurface(4, 4)
	src.Fill(color.RGBA{100, 0, 100, 255})

	screen.Draw(src, geom.XY{X: 2, Y: 2}, DrawOptions{Blend: BlendAdditive})
	assert.Equal(t, color.RGBA{255, 200, 255, 255}, screen.RGBAAt(1, 1))
}

func TestRasterSurface_NormalDrawCoversHalo(t *testing.T) {
	screen := NewRasterSurface(40, 40)
	screen.Fill(bgColor)

	halo := NewRasterSurface(30, 30)
	halo.Fill(haloColor)
	core := NewRasterSurface(10, 10)
	core.Fill(color.RGBA{0, 245, 245, 255})

	center := geom.XY{X: 20, Y: 20}
	screen.Draw(halo, center, DrawOptions{Blend: BlendAdditive})
	screen.Draw(core, center, DrawOptions{})

	assert.Equal(t, color.RGBA{0, 245, 245, 255}, screen.RGBAAt(20, 20), "core is opaque on top")
	assert.Equal(t, color.RGBA{20, 50, 90, 255}, screen.RGBAAt(8, 8), "halo ring is additive")
}

func TestRasterSurface_DrawClipsAtEdges(t *testing.T) {
	screen := NewRasterSurface(10, 10)
	src := NewRasterSurface(6, 6)
	src.Fill(haloColor)

	assert.NotPanics(t, func() {
		screen.Draw(src, geom.XY{X: 0, Y: 0}, DrawOptions{Blend: BlendAdditive})
		screen.Draw(src, geom.XY{X: 100, Y: 100}, DrawOptions{Blend: BlendAdditive})
		screen.Draw(src, geom.XY{X: 10, Y: 10}, DrawOptions{})
	})
	assert.Equal(t, haloColor, screen.RGBAAt(0, 0))
	assert.Equal(t, haloColor, screen.RGBAAt(9, 9))
}

func TestRotate_RecomputesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 20))

	assert.Equal(t, image.Rect(0, 0, 20, 10), Rotate(src, 90, 1).Bounds())
	assert.Equal(t, image.Rect(0, 0, 10, 20), Rotate(src, 180, 1).Bounds())
	assert.Equal(t, image.Rect(0, 0, 5, 10), Rotate(src, 0, 0.5).Bounds())

	r := Rotate(src, 45, 1).Bounds()
	assert.Equal(t, 22, r.Dx())
	assert.Equal(t, 22, r.Dy())
}

func TestRotate_CounterClockwise(t *testing.T) {
	// правая половина закрашена; после поворота на 90° она должна оказаться сверху
	s := NewRasterSurface(20, 20)
	s.FillRect(component.Rect{X: 10, Y: 0, W: 10, H: 20}, haloColor)

	out := Rotate(s.Image(), 90, 1)
	require.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
	assert.Greater(t, out.RGBAAt(10, 3).A, uint8(250), "top is filled")
	assert.Zero(t, out.RGBAAt(10, 16).A, "bottom is empty")
}

func TestRotatedSize(t *testing.T) {
	w, h := RotatedSize(10, 20, 90)
	assert.InDelta(t, 20, w, 1e-9)
	assert.InDelta(t, 10, h, 1e-9)
}

func TestRasterBackend_FromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 9, 8))
	img.SetRGBA(5, 5, haloColor)

	s := RasterBackend{}.FromImage(img)
	w, h := s.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, haloColor, s.(*RasterSurface).RGBAAt(0, 0))
}
