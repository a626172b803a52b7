package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, ScreenWidth, s.Screen.Width)
	assert.Equal(t, ScreenHeight, s.Screen.Height)
	assert.Equal(t, TargetFPS, s.Timing.TargetFPS)
	assert.Equal(t, FPSHistoryLength, s.Timing.FPSWindow)
	assert.Equal(t, 200*time.Millisecond, s.Spawn.RectInterval)
	assert.Equal(t, 300*time.Millisecond, s.Spawn.ParticleInterval)
	assert.Equal(t, 1500*time.Millisecond, s.Spawn.BarInterval)
	assert.InDelta(t, ParticleRadiusDecay, s.Particle.RadiusDecay, 1e-12)
	assert.Empty(t, s.Atlas.Path)

	p, err := s.Palette()
	require.NoError(t, err)
	assert.Equal(t, BackgroundColor, p.Background)
	assert.Equal(t, CyanColor, p.Rect)
	assert.Equal(t, LightingColor, p.RectHalo)
	assert.Equal(t, BarColor, p.Bar)
	assert.Equal(t, color.RGBA{}, p.BarHalo)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `
logLevel: debug
screen:
  width: 800
  height: 600
spawn:
  rectInterval: 50ms
colors:
  rect: orange
  barHalo: "#10203040"
`
	path := filepath.Join(dir, "background.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 800, s.Screen.Width)
	assert.Equal(t, 600, s.Screen.Height)
	assert.Equal(t, 50*time.Millisecond, s.Spawn.RectInterval)
	assert.Equal(t, 300*time.Millisecond, s.Spawn.ParticleInterval)

	p, err := s.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 165, 0, 255}, p.Rect)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, p.BarHalo)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ETERNITY_TIMING_TARGETFPS", "144")

	s, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 144, s.Timing.TargetFPS)
}

func TestLoad_FlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("show-fps", false, "")
	require.NoError(t, flags.Parse([]string{"--log-level=trace", "--show-fps"}))

	s, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "trace", s.LogLevel)
	assert.True(t, s.ShowFPS)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"screen": {"width": 0}, "timing": {"fpsWindow": -1}, "colors": {"rect": "#zz"}}`
	path := filepath.Join(dir, "background.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen size")
	assert.Contains(t, err.Error(), "fpsWindow")
	assert.Contains(t, err.Error(), "colors.rect")
}

func TestValidate_SpriteNeedsAtlas(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)

	s.Bar.Sprite = "bar"
	assert.ErrorContains(t, s.Validate(), "atlas.path")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#140a32", color.RGBA{20, 10, 50, 255}, false},
		{"#00F5F5", color.RGBA{0, 245, 245, 255}, false},
		{"#00000080", color.RGBA{0, 0, 0, 128}, false},
		{"cyan", color.RGBA{0, 255, 255, 255}, false},
		{" Black ", color.RGBA{0, 0, 0, 255}, false},
		{"#123", color.RGBA{}, true},
		{"purpleish", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#140a32", FormatColor(BackgroundColor))
	assert.Equal(t, "#10203040", FormatColor(color.RGBA{0x10, 0x20, 0x30, 0x40}))

	back, err := ParseColor(FormatColor(LightingColor))
	require.NoError(t, err)
	assert.Equal(t, LightingColor, back)
}

func TestScreenDiagonal(t *testing.T) {
	assert.InDelta(t, 5.0, ScreenDiagonal(3, 4), 1e-12)
}
