package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/pool"
	"github.com/automoto/gladiator/shared/leveldata"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/spawner"
	"github.com/automoto/gladiator/systems"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/automoto/gladiator/tags"
	"github.com/automoto/gladiator/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArenaScene is the single-map level: spawn points keep hostiles coming
// while the player (or the autopilot) fights them.
type ArenaScene struct {
	ctx      *sim.Context
	clock    *timer.Scheduler
	reg      *factory.Registry
	resolver *systems.CollisionResolver

	spawners      []*spawner.Spawner
	bullets       *pool.Pool // hostile projectiles, shared by every spawn point
	playerBullets *pool.Pool

	startX, startY float64
	frames         uint64
}

// NewArenaScene builds the arena from level. Unknown placement kinds fail
// the whole scene.
func NewArenaScene(level *leveldata.ArenaData, opts ...sim.Option) (*ArenaScene, error) {
	ctx := sim.New(level.Width, level.Height, opts...)
	s := &ArenaScene{
		ctx:    ctx,
		clock:  timer.NewScheduler(),
		reg:    factory.NewRegistry(),
		startX: cfg.Arena.PlayerStartX,
		startY: cfg.Arena.PlayerStartY,
	}
	if level.HasPlayerStart {
		s.startX, s.startY = level.PlayerX, level.PlayerY
	}
	s.resolver = systems.NewCollisionResolver(ctx)
	s.bullets = pool.New(ctx.Evict)
	s.playerBullets = pool.New(ctx.Evict)

	if err := s.configure(level); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ArenaScene) configure(level *leveldata.ArenaData) error {
	for _, r := range level.Solids {
		if _, err := s.reg.Create(s.ctx, cfg.KindWall, r.X, r.Y, factory.Options{W: r.W, H: r.H}); err != nil {
			return err
		}
	}
	for _, r := range level.Outside {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvOutside)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		s.ctx.Space.Add(obj)
	}

	player, err := s.reg.Create(s.ctx, cfg.KindPlayer, s.startX, s.startY, factory.Options{})
	if err != nil {
		return err
	}
	s.ctx.Player = player

	for _, p := range level.Placements {
		if err := s.place(p, player); err != nil {
			return err
		}
	}

	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateAutopilot(s.ctx, s.playerBullets) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateFollowers(s.ctx) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateRanged(s.ctx) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateMovement(s.ctx) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.ResetIfOutside(s.ctx, s.startX, s.startY) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) {
		s.resolver.ResolveAll(systems.FindPairs(s.ctx, s.resolver.Pairs()))
	})
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateDeaths(s.ctx) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateLight(s.ctx) })
	s.ctx.ECS.AddSystem(func(*ecs.ECS) {
		s.bullets.Prune()
		s.playerBullets.Prune()
	})
	return nil
}

// place turns one entities-layer record into a spawn point (hostiles) or a
// static entity (everything else).
func (s *ArenaScene) place(p leveldata.Placement, player actor.Actor) error {
	kind, err := cfg.ParseKind(p.Kind)
	if err != nil {
		return fmt.Errorf("arena placement at (%.0f, %.0f): %w", p.X, p.Y, err)
	}
	if kind.Class() != cfg.ClassHostile {
		_, err := s.reg.Create(s.ctx, kind, p.X, p.Y, factory.Options{})
		return err
	}

	sp, err := spawner.New(s.ctx, s.clock, s.reg, kind, p.X, p.Y, player, spawner.WithBullets(s.bullets))
	if err != nil {
		return err
	}
	sp.ApplyProfile(cfg.ProfileOf(kind)).Burst()
	s.spawners = append(s.spawners, sp)
	return nil
}

// Update advances the scene by dt. Spawn timers fire first, then every
// system runs once.
func (s *ArenaScene) Update(dt time.Duration) {
	s.ctx.Delta = dt
	s.clock.Advance(dt)
	s.ctx.ECS.Update()
	s.frames++
}

// Fields summarizes the scene for periodic logs.
func (s *ArenaScene) Fields() []zap.Field {
	population := 0
	for _, sp := range s.spawners {
		population += sp.Size()
	}
	return []zap.Field{
		zap.Uint64("frames", s.frames),
		zap.Int("spawners", len(s.spawners)),
		zap.Int("hostiles", population),
		zap.Int("enemy_bullets", s.bullets.Size()),
		zap.Int("player_bullets", s.playerBullets.Size()),
		zap.Float64("light", s.ctx.Light.Display),
	}
}

// Close stops every spawn point and tears down what they created.
func (s *ArenaScene) Close() {
	for _, sp := range s.spawners {
		sp.Stop()
		sp.Pool().Clear()
	}
	s.bullets.Clear()
	s.playerBullets.Clear()
}

func (s *ArenaScene) Context() *sim.Context        { return s.ctx }
func (s *ArenaScene) Spawners() []*spawner.Spawner { return s.spawners }
func (s *ArenaScene) Bullets() *pool.Pool          { return s.bullets }
func (s *ArenaScene) PlayerBullets() *pool.Pool    { return s.playerBullets }
func (s *ArenaScene) Start() (x, y float64)        { return s.startX, s.startY }
