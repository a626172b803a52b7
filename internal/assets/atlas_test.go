package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"eternity-background/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAtlas(t *testing.T, desc string) string {
	t.Helper()
	base := filepath.Join(t.TempDir(), "sheet")

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	f, err := os.Create(base + ".png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	require.NoError(t, os.WriteFile(base+".json", []byte(desc), 0644))
	return base
}

const sheetDesc = `{
  "frames": {
    "red":  {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
    "blue": {"frame": {"x": 8, "y": 2, "w": 4, "h": 6}}
  }
}`

func TestLoadAtlas_Sprites(t *testing.T) {
	a, err := LoadAtlas(writeAtlas(t, sheetDesc), render.RasterBackend{})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	blue, err := a.Sprite("blue")
	require.NoError(t, err)
	w, h := blue.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 6, h)

	rs, ok := blue.(*render.RasterSurface)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rs.RGBAAt(0, 0))

	again, err := a.Sprite("blue")
	require.NoError(t, err)
	assert.Same(t, blue, again)
}

func TestAtlas_UnknownSprite(t *testing.T) {
	a, err := LoadAtlas(writeAtlas(t, sheetDesc), render.RasterBackend{})
	require.NoError(t, err)

	_, err = a.Sprite("green")
	assert.ErrorContains(t, err, "green")
}

func TestLoadAtlas_Errors(t *testing.T) {
	t.Run("missing files", func(t *testing.T) {
		_, err := LoadAtlas(filepath.Join(t.TempDir(), "none"), render.RasterBackend{})
		assert.Error(t, err)
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := LoadAtlas(writeAtlas(t, `{"frames":`), render.RasterBackend{})
		assert.ErrorContains(t, err, "unmarshal")
	})
	t.Run("frame outside sheet", func(t *testing.T) {
		_, err := LoadAtlas(writeAtlas(t, `{"frames": {"big": {"frame": {"x": 10, "y": 0, "w": 10, "h": 8}}}}`), render.RasterBackend{})
		assert.ErrorContains(t, err, "outside")
	})
}
