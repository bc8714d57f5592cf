package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/headless"
	"github.com/olivierh59500/particle-field-go/internal/log"
	"github.com/olivierh59500/particle-field-go/internal/screen"
)

var (
	preset       = flag.String("preset", "neon", "Visual preset (neon, classic)")
	seed         = flag.Int64("seed", 0, "Random seed (0 = time based)")
	maxParticles = flag.Int("max", 0, "Particle cap (0 = preset default)")
	spawn        = flag.Float64("spawn", -1, "Spawn probability per frame (-1 = preset default)")
	drift        = flag.Float64("drift", 0, "Perlin wander strength (0 = off)")
	width        = flag.Int("width", 800, "Window width in logical pixels")
	height       = flag.Int("height", 600, "Window height in logical pixels")
	logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error, none)")
	runHeadless  = flag.Bool("headless", false, "Run without a window, recording draw calls")
	frames       = flag.Int("frames", 600, "Frames to render with -headless (0 = until interrupted)")
	snapshot     = flag.String("snapshot", "", "Write the final population to this JSON file (S key saves while running)")
	restore      = flag.String("restore", "", "Seed the population from a JSON snapshot")
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, log.LevelFromString(*logLevel))

	if err := run(logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	opts := []field.Option{field.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, field.WithSeed(*seed))
	}
	engine, err := field.New(cfg, opts...)
	if err != nil {
		return err
	}
	logger.Infof("particle field: preset=%s max=%d spawn=%.2f drift=%.3f seed=%d",
		cfg.Variant, cfg.MaxParticles, cfg.SpawnProbability, cfg.DriftStrength, engine.Seed())

	if *restore != "" {
		if err := restoreSnapshot(engine, *restore, logger); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *runHeadless {
		engine.Configure(float64(*width), float64(*height), 1)
		rep := headless.Run(ctx, engine, headless.Options{
			Frames:   *frames,
			Orbit:    float64(min(*width, *height)) / 4,
			LogEvery: 60,
			Logger:   logger,
		})
		return writeSnapshot(engine, *snapshot, rep.ElapsedTime)
	}

	clock := field.NewSystemClock()
	sim := screen.NewSimulation(engine, screen.Options{
		Clock:        clock,
		Logger:       logger,
		SnapshotPath: *snapshot,
	})
	go func() {
		<-ctx.Done()
		sim.Stop()
	}()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(sim); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return writeSnapshot(engine, *snapshot, clock.Now())
}

// buildConfig starts from the named preset and applies flag overrides.
func buildConfig() (field.Config, error) {
	cfg, err := field.PresetByName(*preset)
	if err != nil {
		return cfg, err
	}
	if *maxParticles > 0 {
		cfg.MaxParticles = *maxParticles
	}
	if *spawn >= 0 {
		cfg.SpawnProbability = *spawn
	}
	cfg.DriftStrength = *drift
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func restoreSnapshot(e *field.Engine, path string, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	defer f.Close()
	n, err := e.LoadSnapshot(f, 0)
	if err != nil {
		return fmt.Errorf("restore snapshot %s: %w", path, err)
	}
	logger.Infof("restored %d particles from %s", n, path)
	return nil
}

func writeSnapshot(e *field.Engine, path string, now float64) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := e.SaveSnapshot(f, now); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return f.Close()
}
