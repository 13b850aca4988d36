package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/thomashancock/Solar-System-Simulator/pkg/simulation"
)

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	switch lvl {
	case "debug":
		return level.NewFilter(logger, level.AllowDebug())
	case "warn":
		return level.NewFilter(logger, level.AllowWarn())
	case "error":
		return level.NewFilter(logger, level.AllowError())
	default:
		return level.NewFilter(logger, level.AllowInfo())
	}
}

func main() {
	configPath := flag.String("config", "", "path to a config file (toml, yaml or json)")
	debug := flag.Bool("debug", false, "enable debug logging")
	ticks := flag.Int("ticks", 0, "run this many ticks without a window and exit")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		level.Error(newLogger("info")).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *ticks, logger); err != nil {
		level.Error(logger).Log("msg", "simulation failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *simulation.Config, ticks int, logger log.Logger) error {
	world, err := simulation.NewWorld(cfg.Catalog, cfg.Central, cfg.TimeStep,
		simulation.WithLogger(log.With(logger, "component", "world")),
		simulation.WithRenderRadius(cfg.RenderRadius),
	)
	if err != nil {
		return err
	}

	if ticks > 0 {
		return runHeadless(ctx, world, ticks, logger)
	}

	game, err := NewGame(world, cfg.SurfaceSize, basicfont.Face7x13, cfg.FontScale, quitEvents{ctx: ctx}, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.SurfaceSize, cfg.SurfaceSize)
	ebiten.SetWindowTitle("Simulation FPS: 0")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	level.Info(logger).Log("msg", "starting simulation", "bodies", len(cfg.Catalog), "dt", cfg.TimeStep, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runHeadless(ctx context.Context, world *simulation.World, ticks int, logger log.Logger) error {
	level.Info(logger).Log("msg", "starting headless simulation", "ticks", ticks, "dt", world.TimeStep())
	n := world.Run(ctx, ticks, nil)
	for _, b := range world.Bodies() {
		level.Info(logger).Log(
			"msg", "body state",
			"name", b.Name,
			"x", b.Pos.X, "y", b.Pos.Y,
			"vx", b.Vel.X, "vy", b.Vel.Y,
			"orbit_radius", b.OrbitRadius(),
		)
	}
	level.Info(logger).Log("msg", "headless simulation finished", "ticks", n, "elapsed_years", fmt.Sprintf("%.2f", world.ElapsedYears()))
	return nil
}
