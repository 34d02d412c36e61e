package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/gladiator/assets"
	"github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/core"
	"github.com/automoto/gladiator/scenes"
	"github.com/automoto/gladiator/sim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file (empty = built-in defaults)")
	sceneName := flag.String("scene", "arena", "Scene to run: arena or rooms")
	levelsDir := flag.String("levels", "", "Directory holding levels/ (empty = embedded maps)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = random)")
	duration := flag.Duration("duration", 0, "Stop after this much wall time (0 = until signalled)")
	walkX := flag.Float64("walk-x", 60, "Rooms scene: player speed along x in px/s")
	walkY := flag.Float64("walk-y", 0, "Rooms scene: player speed along y in px/s")
	flag.Parse()

	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config.Apply(c)
	}

	logger, err := newLogger(config.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	opts := []sim.Option{sim.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, sim.WithSeed(*seed))
	}

	scene, err := newScene(*sceneName, assets.NewLevelLoader(assets.FS(*levelsDir)), *walkX, *walkY, opts)
	if err != nil {
		logger.Fatal("scene setup failed", zap.String("scene", *sceneName), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	loop := core.NewGameLoop(scene, config.Loop.TickRate, config.Loop.StatsPeriod, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.NamedError("cause", context.Cause(gctx)))
		return nil
	})

	logger.Info("gladiator started",
		zap.String("scene", *sceneName),
		zap.Int("tick_rate", config.Loop.TickRate),
		zap.Duration("duration", *duration),
	)
	if err := g.Wait(); err != nil {
		logger.Error("game loop failed", zap.Error(err))
		os.Exit(1)
	}
}

func newScene(name string, levels *assets.LevelLoader, walkX, walkY float64, opts []sim.Option) (core.Scene, error) {
	switch name {
	case "arena":
		level, err := levels.LoadArena(config.Arena.MapPath)
		if err != nil {
			return nil, err
		}
		return scenes.NewArenaScene(level, opts...)
	case "rooms":
		rooms, err := levels.LoadRoomMap(config.Rooms.MapPath)
		if err != nil {
			return nil, err
		}
		s, err := scenes.NewRoomsScene(rooms, opts...)
		if err != nil {
			return nil, err
		}
		return s.Walk(walkX, walkY), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
