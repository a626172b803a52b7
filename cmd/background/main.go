// cmd/background/main.go
package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"eternity-background/internal/app"
	"eternity-background/internal/assets"
	"eternity-background/internal/config"
	"eternity-background/internal/input"
	"eternity-background/internal/logging"
	"eternity-background/internal/timing"
	"eternity-background/internal/ui"
	"eternity-background/pkg/render"
	"eternity-background/pkg/render/ebitenrender"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// AppGame связывает Background с циклом ebiten.
// TPS синхронизирован с частотой кадров, поэтому Draw и Update идут парами:
// Draw рисует и продвигает симуляцию, ebiten показывает кадр, Update обрабатывает события.
type AppGame struct {
	background *app.Background
	poller     *input.Poller
	fps        *ui.FPSIndicator // nil, если оверлей выключен
	width      int
	height     int
}

func (a *AppGame) Update() error {
	err := a.background.Update(a.poller.Poll())
	if errors.Is(err, app.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.background.Draw(ebitenrender.NewSurface(screen))
	if a.fps != nil {
		a.fps.Draw(screen, a.background.FPS(), a.background.DT(), a.background.World().Live())
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	flags := pflag.NewFlagSet("background", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML/JSON/TOML config file")
	snapshot := flags.String("snapshot", "", "render headless and write the last frame to this PNG file")
	frames := flags.Int("frames", 300, "number of frames to render in snapshot mode")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.Bool("show-fps", false, "draw the FPS overlay")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flags.Bool("fullscreen", false, "start in fullscreen mode")
	_ = flags.Parse(os.Args[1:])

	settings, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, settings.LogLevel, settings.LogPretty)

	if *snapshot != "" {
		if err := runSnapshot(settings, logger, *snapshot, *frames); err != nil {
			logger.Fatal().Err(err).Msg("snapshot failed")
		}
		return
	}

	if err := runWindow(settings, logger); err != nil {
		logger.Fatal().Err(err).Msg("background stopped with error")
	}
}

func runWindow(settings *config.Settings, logger zerolog.Logger) error {
	backend := ebitenrender.Backend{}
	sprite, err := loadBarSprite(settings, backend)
	if err != nil {
		return err
	}
	bg, err := app.New(app.Options{
		Settings:  settings,
		Backend:   backend,
		Clock:     timing.SystemClock{},
		Logger:    logger,
		BarSprite: sprite,
	})
	if err != nil {
		return err
	}

	game := &AppGame{
		background: bg,
		poller:     input.NewPoller(),
		width:      settings.Screen.Width,
		height:     settings.Screen.Height,
	}
	if settings.ShowFPS {
		game.fps = ui.NewFPSIndicator()
	}

	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Eternity")
	ebiten.SetFullscreen(settings.Screen.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run loop: %w", err)
	}
	logger.Info().Uint64("frames", bg.Frames()).Msg("background closed")
	return nil
}

func runSnapshot(settings *config.Settings, logger zerolog.Logger, path string, frames int) error {
	backend := render.RasterBackend{}
	sprite, err := loadBarSprite(settings, backend)
	if err != nil {
		return err
	}
	clock := timing.NewManualClock(time.Unix(0, 0))
	bg, err := app.New(app.Options{
		Settings:  settings,
		Backend:   backend,
		Clock:     clock,
		Logger:    logger,
		BarSprite: sprite,
	})
	if err != nil {
		return err
	}

	dst := render.NewRasterSurface(settings.Screen.Width, settings.Screen.Height)
	n, err := app.RunHeadless(bg, clock, dst, settings.Timing.TargetFPS, frames)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, dst.Image()); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	logger.Info().Str("path", path).Int("frames", n).Int("objects", bg.World().Live()).Msg("snapshot written")
	return nil
}

// loadBarSprite возвращает спрайт полосы из атласа или nil, если он не настроен.
func loadBarSprite(settings *config.Settings, backend render.Backend) (render.Surface, error) {
	if settings.Bar.Sprite == "" {
		return nil, nil
	}
	atlas, err := assets.LoadAtlas(settings.Atlas.Path, backend)
	if err != nil {
		return nil, err
	}
	return atlas.Sprite(settings.Bar.Sprite)
}
