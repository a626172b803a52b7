package entity

import (
	"testing"

	"eternity-background/internal/component"
	"eternity-background/pkg/render"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
)

func newTestParticles(t *testing.T, radii ...float64) []*ParticleBody {
	t.Helper()
	f := NewParticleFactory(ParticleConfig{Color: testCore, RadiusDecay: 1}, render.RasterBackend{})
	out := make([]*ParticleBody, 0, len(radii))
	for _, r := range radii {
		out = append(out, f.New(ParticleParams{Center: geom.XY{X: 50, Y: 50}, Radius: r}))
	}
	return out
}

func TestSet_SweepRemovesMarkedOnly(t *testing.T) {
	s := NewSet[*ParticleBody]()
	ps := newTestParticles(t, 1, 2, 3, 4, 5)
	for _, p := range ps {
		s.Add(p)
	}

	removed := s.Sweep(func(p *ParticleBody) bool { return int(p.Radius())%2 == 0 })

	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, s.Len())
	var left []float64
	s.Sweep(func(p *ParticleBody) bool {
		left = append(left, p.Radius())
		return false
	})
	assert.Equal(t, []float64{1, 3, 5}, left)
}

func TestSet_SweepNothing(t *testing.T) {
	s := NewSet[*ParticleBody]()
	for _, p := range newTestParticles(t, 1, 2) {
		s.Add(p)
	}
	assert.Zero(t, s.Sweep(func(*ParticleBody) bool { return false }))
	assert.Equal(t, 2, s.Len())
}

func TestSet_SweepAll(t *testing.T) {
	s := NewSet[*ParticleBody]()
	for _, p := range newTestParticles(t, 1, 2, 3) {
		s.Add(p)
	}
	assert.Equal(t, 3, s.Sweep(func(*ParticleBody) bool { return true }))
	assert.Zero(t, s.Len())

	// набор остаётся рабочим после полного сжатия
	for _, p := range newTestParticles(t, 1) {
		s.Add(p)
	}
	assert.Equal(t, 1, s.Len())
}

func TestWorld_Live(t *testing.T) {
	w := NewWorld(200, 100)
	assert.Equal(t, component.Rect{W: 200, H: 100}, w.Viewport)

	for _, p := range newTestParticles(t, 1, 2) {
		w.Particles.Add(p)
	}
	rf := NewRectFactory(RectConfig{Color: testCore}, render.RasterBackend{})
	w.Rects.Add(rf.New(RectParams{Size: 10}))
	assert.Equal(t, 3, w.Live())
}
