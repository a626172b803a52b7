// internal/config/config.go
package config

import (
	"image/color"
	"math"
	"time"
)

const (
	ScreenWidth      = 1600
	ScreenHeight     = 900
	TargetFPS        = 60
	FPSHistoryLength = 10
	MaxDeltaTime     = 0.25 // секунды; больше за один кадр таймеры спавна не получают

	RectSpawnInterval     = 200 * time.Millisecond
	ParticleSpawnInterval = 300 * time.Millisecond
	BarSpawnInterval      = 1500 * time.Millisecond

	// Диапазоны спавна прямоугольников (включительно)
	RectMinSize      = 10
	RectMaxSize      = 100
	RectMinSpeed     = -5
	RectMaxSpeed     = -3
	RectMaxSpin      = 1.0 // градусы за кадр, симметрично
	RectMaxRotation  = 89
	RectMaxStroke    = 10
	FilledHaloStroke = 7 // обводка, по которой считается ореол залитых прямоугольников
	HaloStrokeScale  = 3

	// Частицы
	ParticleMinSpeed    = -3
	ParticleMaxSpeed    = -2
	ParticleMinRadius   = 1
	ParticleMaxRadius   = 3
	ParticleHaloScale   = 3
	ParticleRadiusDecay = 0.005 // за один шаг симуляции, от dt не зависит

	// Вращающиеся полосы
	BarWidth           = 50
	BarVelocityX       = -3.0
	BarVelocityY       = -1.9
	BarRotation        = -45.0
	BarAngularVelocity = -0.2

	StatsLogEvery = 600 // кадров между debug-строками статистики
)

// ScreenDiagonal — длина диагонали экрана, из неё берётся длина полосы.
func ScreenDiagonal(width, height int) float64 {
	return math.Hypot(float64(width), float64(height))
}

var (
	BackgroundColor   = color.RGBA{20, 10, 50, 255}
	CyanColor         = color.RGBA{0, 245, 245, 255}
	LightingColor     = color.RGBA{0, 40, 40, 255}
	BarColor          = color.RGBA{5, 10, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	IndicatorOffsetX  = 10
	IndicatorOffsetY  = 20
	IndicatorLineSize = 16
)
