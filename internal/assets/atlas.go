// internal/assets/atlas.go
package assets

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"eternity-background/pkg/render"
)

// Frame — прямоугольник кадра внутри листа.
type Frame struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type atlasFrame struct {
	Frame Frame `json:"frame"`
}

// atlasFile — минимальное подмножество формата TexturePacker (JSON hash).
type atlasFile struct {
	Frames map[string]atlasFrame `json:"frames"`
}

// Atlas управляет листом спрайтов и кэширует вырезанные кадры.
type Atlas struct {
	sheet   image.Image
	frames  map[string]Frame
	backend render.Backend
	cache   map[string]render.Surface
}

// LoadAtlas читает <path>.png и <path>.json.
func LoadAtlas(path string, backend render.Backend) (*Atlas, error) {
	f, err := os.Open(path + ".png")
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas image: %w", err)
	}
	defer f.Close()

	sheet, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas image: %w", err)
	}

	data, err := os.ReadFile(path + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas description: %w", err)
	}
	var desc atlasFile
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal atlas description: %w", err)
	}

	a := &Atlas{
		sheet:   sheet,
		frames:  make(map[string]Frame, len(desc.Frames)),
		backend: backend,
		cache:   make(map[string]render.Surface),
	}
	bounds := sheet.Bounds()
	for name, af := range desc.Frames {
		fr := af.Frame
		r := image.Rect(fr.X, fr.Y, fr.X+fr.W, fr.Y+fr.H).Add(bounds.Min)
		if fr.W <= 0 || fr.H <= 0 || !r.In(bounds) {
			return nil, fmt.Errorf("atlas frame %q %v is outside the sheet %v", name, r, bounds)
		}
		a.frames[name] = fr
	}
	return a, nil
}

// Len возвращает число кадров в атласе.
func (a *Atlas) Len() int { return len(a.frames) }

// Sprite возвращает поверхность кадра name. Повторные вызовы отдают тот же объект.
func (a *Atlas) Sprite(name string) (render.Surface, error) {
	if s, ok := a.cache[name]; ok {
		return s, nil
	}
	fr, ok := a.frames[name]
	if !ok {
		return nil, fmt.Errorf("sprite %q not found in atlas", name)
	}
	origin := a.sheet.Bounds().Min
	r := image.Rect(fr.X, fr.Y, fr.X+fr.W, fr.Y+fr.H).Add(origin)
	sub, ok := a.sheet.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("atlas image %T does not support sub-images", a.sheet)
	}
	s := a.backend.FromImage(sub.SubImage(r))
	a.cache[name] = s
	return s, nil
}
