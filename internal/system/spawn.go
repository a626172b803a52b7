// internal/system/spawn.go
package system

import (
	"time"

	"eternity-background/internal/config"
	"eternity-background/internal/entity"
	"eternity-background/internal/event"
	"eternity-background/internal/timing"
	"eternity-background/internal/utils"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"
)

// SpawnScheduler — три независимых таймера спавна с фиксированными периодами.
type SpawnScheduler struct {
	rects     *timing.Interval
	particles *timing.Interval
	bars      *timing.Interval
	maxStep   time.Duration
}

func NewSpawnScheduler(s config.SpawnSettings) *SpawnScheduler {
	return &SpawnScheduler{
		rects:     timing.NewInterval(s.RectInterval),
		particles: timing.NewInterval(s.ParticleInterval),
		bars:      timing.NewInterval(s.BarInterval),
		maxStep:   time.Duration(config.MaxDeltaTime * float64(time.Second)),
	}
}

// Update накапливает прошедшее время и возвращает по событию на каждый полный период.
// Длинная пауза (перетаскивание окна, отладчик) обрезается до MaxDeltaTime,
// чтобы не выплёвывать пачку объектов за один кадр.
func (s *SpawnScheduler) Update(elapsed time.Duration) []event.Event {
	elapsed = min(elapsed, s.maxStep)
	var events []event.Event
	events = appendN(events, event.SpawnRect, s.rects.Tick(elapsed))
	events = appendN(events, event.SpawnParticle, s.particles.Tick(elapsed))
	events = appendN(events, event.SpawnBar, s.bars.Tick(elapsed))
	return events
}

func appendN(events []event.Event, t event.EventType, n int) []event.Event {
	for i := 0; i < n; i++ {
		events = append(events, event.Event{Type: t})
	}
	return events
}

// SpawnSystem превращает события спавна в объекты со случайными параметрами.
type SpawnSystem struct {
	world     *entity.World
	rng       *utils.PRNGService
	rects     *entity.RectFactory
	particles *entity.ParticleFactory
	bars      *entity.BarFactory
	barSpin   float64
	logger    zerolog.Logger
}

func NewSpawnSystem(
	world *entity.World,
	rng *utils.PRNGService,
	rects *entity.RectFactory,
	particles *entity.ParticleFactory,
	bars *entity.BarFactory,
	barAngularVelocity float64,
	logger zerolog.Logger,
) *SpawnSystem {
	return &SpawnSystem{
		world:     world,
		rng:       rng,
		rects:     rects,
		particles: particles,
		bars:      bars,
		barSpin:   barAngularVelocity,
		logger:    logger.With().Str("system", "spawn").Logger(),
	}
}

// Subscribe подписывает систему на все три события спавна.
func (s *SpawnSystem) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.SpawnRect, s)
	d.Subscribe(event.SpawnParticle, s)
	d.Subscribe(event.SpawnBar, s)
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnRect:
		s.world.Rects.Add(s.SpawnRect())
	case event.SpawnParticle:
		s.world.Particles.Add(s.SpawnParticle())
	case event.SpawnBar:
		b := s.SpawnBar()
		s.world.Bars.Add(b)
		s.logger.Trace().Float64("x", b.Position.X).Float64("y", b.Position.Y).Msg("bar spawned")
	}
}

// SpawnRect создаёт прямоугольник под нижним краем экрана.
func (s *SpawnSystem) SpawnRect() *entity.RectBody {
	vp := s.world.Viewport
	size := s.rng.IntRange(config.RectMinSize, config.RectMaxSize)
	x := s.rng.IntRange(-size, int(vp.W)-size)
	half := float64(size) / 2
	return s.rects.New(entity.RectParams{
		Center:          geom.XY{X: float64(x) + half, Y: vp.Bottom() + float64(size) + half},
		Velocity:        geom.XY{Y: float64(s.rng.IntRange(config.RectMinSpeed, config.RectMaxSpeed))},
		Size:            float64(size),
		Rotation:        float64(s.rng.IntRange(0, config.RectMaxRotation)),
		AngularVelocity: s.rng.Uniform(-config.RectMaxSpin, config.RectMaxSpin),
		Stroke:          float64(s.rng.IntRange(0, config.RectMaxStroke)),
	})
}

// SpawnParticle создаёт частицу так, что верх её ореола касается нижнего края экрана.
func (s *SpawnSystem) SpawnParticle() *entity.ParticleBody {
	vp := s.world.Viewport
	radius := float64(s.rng.IntRange(config.ParticleMinRadius, config.ParticleMaxRadius))
	return s.particles.New(entity.ParticleParams{
		Center:   geom.XY{X: float64(s.rng.IntRange(0, int(vp.W))), Y: vp.Bottom() + s.particles.HaloRadius(radius)},
		Velocity: geom.XY{Y: float64(s.rng.IntRange(config.ParticleMinSpeed, config.ParticleMaxSpeed))},
		Radius:   radius,
	})
}

// SpawnBar создаёт полосу за правым нижним углом. Параметры полосы не случайны.
func (s *SpawnSystem) SpawnBar() *entity.BarBody {
	vp := s.world.Viewport
	return s.bars.New(entity.BarParams{
		Center:          geom.XY{X: vp.Right() + config.BarWidth, Y: vp.Bottom() + config.BarWidth},
		Velocity:        geom.XY{X: config.BarVelocityX, Y: config.BarVelocityY},
		Width:           config.BarWidth,
		Length:          config.ScreenDiagonal(int(vp.W), int(vp.H)),
		Rotation:        config.BarRotation,
		AngularVelocity: s.barSpin,
	})
}
