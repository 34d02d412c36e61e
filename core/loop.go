// Package core drives a scene at a fixed tick rate.
package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scene is one running simulation.
type Scene interface {
	Update(dt time.Duration)
	Fields() []zap.Field
	Close()
}

type GameLoop struct {
	scene      Scene
	tickRate   int
	statsEvery time.Duration
	log        *zap.Logger
	ticks      uint64
}

func NewGameLoop(scene Scene, tickRate int, statsEvery time.Duration, log *zap.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		scene:      scene,
		tickRate:   tickRate,
		statsEvery: statsEvery,
		log:        log,
	}
}

// Step advances the scene by one fixed tick.
func (g *GameLoop) Step() {
	g.scene.Update(g.TickDuration())
	g.ticks++
}

// TickDuration is the simulated time each Step covers.
func (g *GameLoop) TickDuration() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

func (g *GameLoop) Ticks() uint64 {
	return g.ticks
}

// Run ticks the scene until ctx is done, then closes it.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.TickDuration())
	defer ticker.Stop()

	var stats <-chan time.Time
	if g.statsEvery > 0 {
		t := time.NewTicker(g.statsEvery)
		defer t.Stop()
		stats = t.C
	}

	g.log.Info("game loop started", zap.Int("tick_rate", g.tickRate))
	defer g.scene.Close()

	for {
		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Uint64("ticks", g.ticks))
			return nil
		case <-ticker.C:
			g.Step()
		case <-stats:
			g.log.Info("scene stats", g.scene.Fields()...)
		}
	}
}
