// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"
)

// EnvPrefix — префикс переменных окружения, например ETERNITY_SCREEN_WIDTH.
const EnvPrefix = "ETERNITY"

// ScreenSettings — размеры окна и видимой области.
type ScreenSettings struct {
	Width      int  `mapstructure:"width"`
	Height     int  `mapstructure:"height"`
	Fullscreen bool `mapstructure:"fullscreen"`
}

// TimingSettings — целевой FPS и длина окна сглаживания.
type TimingSettings struct {
	TargetFPS int `mapstructure:"targetFps"`
	FPSWindow int `mapstructure:"fpsWindow"`
}

// SpawnSettings — фиксированные периоды спавна по категориям.
type SpawnSettings struct {
	RectInterval     time.Duration `mapstructure:"rectInterval"`
	ParticleInterval time.Duration `mapstructure:"particleInterval"`
	BarInterval      time.Duration `mapstructure:"barInterval"`
}

// ColorSettings — цвета в виде "#rrggbb", "#rrggbbaa" или имени SVG.
type ColorSettings struct {
	Background   string `mapstructure:"background"`
	Rect         string `mapstructure:"rect"`
	RectHalo     string `mapstructure:"rectHalo"`
	Particle     string `mapstructure:"particle"`
	ParticleHalo string `mapstructure:"particleHalo"`
	Bar          string `mapstructure:"bar"`
	BarHalo      string `mapstructure:"barHalo"`
}

// ParticleSettings — параметры частиц.
type ParticleSettings struct {
	RadiusDecay float64 `mapstructure:"radiusDecay"`
}

// BarSettings — параметры вращающихся полос.
type BarSettings struct {
	AngularVelocity float64 `mapstructure:"angularVelocity"`
	Sprite          string  `mapstructure:"sprite"`
}

// AtlasSettings — путь к атласу спрайтов без расширения .png/.json.
type AtlasSettings struct {
	Path string `mapstructure:"path"`
}

// Settings — полная конфигурация запуска.
type Settings struct {
	LogLevel  string           `mapstructure:"logLevel"`
	LogPretty bool             `mapstructure:"logPretty"`
	ShowFPS   bool             `mapstructure:"showFPS"`
	Seed      int64            `mapstructure:"seed"`
	Screen    ScreenSettings   `mapstructure:"screen"`
	Timing    TimingSettings   `mapstructure:"timing"`
	Spawn     SpawnSettings    `mapstructure:"spawn"`
	Colors    ColorSettings    `mapstructure:"colors"`
	Particle  ParticleSettings `mapstructure:"particle"`
	Bar       BarSettings      `mapstructure:"bar"`
	Atlas     AtlasSettings    `mapstructure:"atlas"`
}

// Palette — разобранные цвета ColorSettings.
type Palette struct {
	Background   color.RGBA
	Rect         color.RGBA
	RectHalo     color.RGBA
	Particle     color.RGBA
	ParticleHalo color.RGBA
	Bar          color.RGBA
	BarHalo      color.RGBA
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)
	v.SetDefault("showFPS", false)
	v.SetDefault("seed", 0)

	v.SetDefault("screen.width", ScreenWidth)
	v.SetDefault("screen.height", ScreenHeight)
	v.SetDefault("screen.fullscreen", false)

	v.SetDefault("timing.targetFps", TargetFPS)
	v.SetDefault("timing.fpsWindow", FPSHistoryLength)

	v.SetDefault("spawn.rectInterval", RectSpawnInterval)
	v.SetDefault("spawn.particleInterval", ParticleSpawnInterval)
	v.SetDefault("spawn.barInterval", BarSpawnInterval)

	v.SetDefault("colors.background", FormatColor(BackgroundColor))
	v.SetDefault("colors.rect", FormatColor(CyanColor))
	v.SetDefault("colors.rectHalo", FormatColor(LightingColor))
	v.SetDefault("colors.particle", FormatColor(CyanColor))
	v.SetDefault("colors.particleHalo", FormatColor(LightingColor))
	v.SetDefault("colors.bar", FormatColor(BarColor))
	v.SetDefault("colors.barHalo", "")

	v.SetDefault("particle.radiusDecay", ParticleRadiusDecay)
	v.SetDefault("bar.angularVelocity", BarAngularVelocity)
	v.SetDefault("bar.sprite", "")
	v.SetDefault("atlas.path", "")
}

// flagKeys — ключи конфига и флаги командной строки, которые их переопределяют.
var flagKeys = map[string]string{
	"logLevel":          "log-level",
	"showFPS":           "show-fps",
	"seed":              "seed",
	"screen.fullscreen": "fullscreen",
}

// Load читает конфигурацию: значения по умолчанию, затем необязательный файл
// (YAML, JSON или TOML по расширению), переменные окружения и флаги.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate отклоняет значения, с которыми симуляция не запустится.
func (s *Settings) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height))
	}
	if s.Timing.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.targetFps must be positive, got %d", s.Timing.TargetFPS))
	}
	if s.Timing.FPSWindow <= 0 {
		errs = append(errs, fmt.Errorf("timing.fpsWindow must be positive, got %d", s.Timing.FPSWindow))
	}
	if s.Spawn.RectInterval <= 0 || s.Spawn.ParticleInterval <= 0 || s.Spawn.BarInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if s.Particle.RadiusDecay < 0 {
		errs = append(errs, fmt.Errorf("particle.radiusDecay must not be negative, got %g", s.Particle.RadiusDecay))
	}
	if s.Bar.Sprite != "" && s.Atlas.Path == "" {
		errs = append(errs, errors.New("bar.sprite requires atlas.path"))
	}
	if _, err := s.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette разбирает цвета. Пустой цвет ореола отключает ореол.
func (s *Settings) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key string
		raw string
		dst *color.RGBA
		opt bool
	}{
		{"colors.background", s.Colors.Background, &p.Background, false},
		{"colors.rect", s.Colors.Rect, &p.Rect, false},
		{"colors.rectHalo", s.Colors.RectHalo, &p.RectHalo, true},
		{"colors.particle", s.Colors.Particle, &p.Particle, false},
		{"colors.particleHalo", s.Colors.ParticleHalo, &p.ParticleHalo, true},
		{"colors.bar", s.Colors.Bar, &p.Bar, false},
		{"colors.barHalo", s.Colors.BarHalo, &p.BarHalo, true},
	}
	for _, f := range fields {
		if f.raw == "" && f.opt {
			continue
		}
		c, err := ParseColor(f.raw)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return p, nil
}

// FormatColor — обратное к ParseColor: "#rrggbb" для непрозрачных цветов, иначе "#rrggbbaa".
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor принимает "#rrggbb", "#rrggbbaa" или имя цвета SVG 1.1 ("cyan").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
