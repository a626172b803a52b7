// internal/app/background.go
package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"eternity-background/internal/config"
	"eternity-background/internal/entity"
	"eternity-background/internal/event"
	"eternity-background/internal/system"
	"eternity-background/internal/timing"
	"eternity-background/internal/utils"
	"eternity-background/pkg/render"

	"github.com/rs/zerolog"
)

// ErrQuit возвращается из Update, когда обработано событие выхода.
var ErrQuit = errors.New("background: quit requested")

// Options — зависимости фона. Clock и Backend подменяются в тестах и headless-режиме.
type Options struct {
	Settings  *config.Settings
	Backend   render.Backend
	Clock     timing.Clock
	Logger    zerolog.Logger
	BarSprite render.Surface // nil — полоса рисуется залитым прямоугольником
}

// Background — цикл анимации. Однопоточный: все наборы объектов меняются
// только внутри Draw и Update одного кадра.
type Background struct {
	world      *entity.World
	movement   *system.MovementSystem
	spawner    *system.SpawnSystem
	scheduler  *system.SpawnScheduler
	dispatcher *event.Dispatcher
	smoother   *timing.Smoother
	clock      timing.Clock
	logger     zerolog.Logger

	background  color.RGBA
	dt          float64
	lastTick    time.Time
	running     bool
	frames      uint64
	culledTotal uint64
}

func New(opts Options) (*Background, error) {
	s := opts.Settings
	if s == nil {
		return nil, errors.New("background: settings are required")
	}
	palette, err := s.Palette()
	if err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = timing.SystemClock{}
	}
	backend := opts.Backend
	if backend == nil {
		backend = render.RasterBackend{}
	}

	rng := utils.NewPRNGService(s.Seed)
	world := entity.NewWorld(s.Screen.Width, s.Screen.Height)
	rects := entity.NewRectFactory(entity.RectConfig{
		Color:     palette.Rect,
		HaloColor: palette.RectHalo,
	}, backend)
	particles := entity.NewParticleFactory(entity.ParticleConfig{
		Color:       palette.Particle,
		HaloColor:   palette.ParticleHalo,
		RadiusDecay: s.Particle.RadiusDecay,
	}, backend)
	bars := entity.NewBarFactory(entity.BarConfig{
		Color:     palette.Bar,
		HaloColor: palette.BarHalo,
		Sprite:    opts.BarSprite,
	}, backend)

	b := &Background{
		world:      world,
		movement:   system.NewMovementSystem(world),
		spawner:    system.NewSpawnSystem(world, rng, rects, particles, bars, s.Bar.AngularVelocity, opts.Logger),
		scheduler:  system.NewSpawnScheduler(s.Spawn),
		dispatcher: event.NewDispatcher(),
		smoother:   timing.NewSmoother(s.Timing.TargetFPS, s.Timing.FPSWindow, clock),
		clock:      clock,
		logger:     opts.Logger,
		background: palette.Background,
		running:    true,
	}
	b.dt = b.smoother.DT()
	b.lastTick = clock.Now()
	b.spawner.Subscribe(b.dispatcher)
	b.dispatcher.Subscribe(event.Quit, event.ListenerFunc(func(event.Event) {
		b.running = false
	}))

	b.logger.Info().
		Int64("seed", rng.Seed()).
		Int("width", s.Screen.Width).
		Int("height", s.Screen.Height).
		Int("target_fps", s.Timing.TargetFPS).
		Msg("background initialised")
	return b, nil
}

// Draw — шаги 1–2 кадра: заливка фона и проход отрисовка/шаг/отсечение с текущим dt.
func (b *Background) Draw(dst render.Surface) {
	dst.Fill(b.background)
	culled := b.movement.Step(dst, b.dt)
	b.culledTotal += uint64(culled)
}

// Update — шаги 4–5: события ввода и таймеров спавна, затем новый dt.
func (b *Background) Update(input []event.Event) error {
	now := b.clock.Now()
	elapsed := now.Sub(b.lastTick)
	b.lastTick = now

	b.dispatcher.DispatchAll(input)
	if !b.running {
		b.logger.Info().Uint64("frames", b.frames).Msg("quit requested")
		return ErrQuit
	}
	b.dispatcher.DispatchAll(b.scheduler.Update(elapsed))

	b.dt = b.smoother.Sample()
	b.frames++
	if b.frames%config.StatsLogEvery == 0 {
		b.logStats()
	}
	return nil
}

// RunFrame выполняет полный кадр синхронно: отрисовка, показ, события, новый dt.
func (b *Background) RunFrame(dst render.Surface, present func(render.Surface), input []event.Event) error {
	b.Draw(dst)
	if present != nil {
		present(dst)
	}
	return b.Update(input)
}

func (b *Background) logStats() {
	b.logger.Debug().
		Uint64("frame", b.frames).
		Float64("fps", b.smoother.FPS()).
		Float64("dt", b.dt).
		Int("rects", b.world.Rects.Len()).
		Int("particles", b.world.Particles.Len()).
		Int("bars", b.world.Bars.Len()).
		Uint64("culled", b.culledTotal).
		Msg("frame stats")
}

func (b *Background) Running() bool        { return b.running }
func (b *Background) DT() float64          { return b.dt }
func (b *Background) FPS() float64         { return b.smoother.FPS() }
func (b *Background) Frames() uint64       { return b.frames }
func (b *Background) World() *entity.World { return b.world }
