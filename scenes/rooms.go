package scenes

import (
	"time"

	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RoomsScene walks the player across a grid of rooms.
type RoomsScene struct {
	ctx   *sim.Context
	reg   *factory.Registry
	rooms *systems.RoomTransitionController

	walkX, walkY float64
	failures     int
	frames       uint64
}

// NewRoomsScene places the player at the configured start and loads room
// (0, 0) from loader.
func NewRoomsScene(loader systems.RoomLoader, opts ...sim.Option) (*RoomsScene, error) {
	ctx := sim.New(int(cfg.Rooms.Width), int(cfg.Rooms.Height), opts...)
	s := &RoomsScene{
		ctx: ctx,
		reg: factory.NewRegistry(),
	}

	player, err := s.reg.Create(ctx, cfg.KindPlayer, cfg.Rooms.PlayerStartX, cfg.Rooms.PlayerStartY, factory.Options{})
	if err != nil {
		return nil, err
	}
	ctx.Player = player

	s.rooms = systems.NewRoomTransitionController(ctx, loader, s.reg,
		cfg.Rooms.MapWidth, cfg.Rooms.MapHeight, cfg.Rooms.Width, cfg.Rooms.Height)
	if err := s.rooms.Load(); err != nil {
		return nil, err
	}

	ctx.ECS.AddSystem(func(*ecs.ECS) {
		if s.walkX != 0 || s.walkY != 0 {
			ctx.Player.SetVelocity(s.walkX, s.walkY)
		}
	})
	ctx.ECS.AddSystem(func(*ecs.ECS) { systems.UpdateMovement(ctx) })
	ctx.ECS.AddSystem(func(*ecs.ECS) {
		if err := s.rooms.Update(ctx.Player); err != nil {
			s.failures++
		}
	})
	return s, nil
}

// Walk keeps the player moving at (vx, vy) px/s, standing in for input.
func (s *RoomsScene) Walk(vx, vy float64) *RoomsScene {
	s.walkX, s.walkY = vx, vy
	return s
}

func (s *RoomsScene) Update(dt time.Duration) {
	s.ctx.Delta = dt
	s.ctx.ECS.Update()
	s.frames++
}

func (s *RoomsScene) Fields() []zap.Field {
	x, y := s.rooms.Room()
	px, py := s.ctx.Player.Position()
	return []zap.Field{
		zap.Uint64("frames", s.frames),
		zap.Int("room_x", x),
		zap.Int("room_y", y),
		zap.Int("reloads", s.rooms.Reloads()),
		zap.Int("failed_transitions", s.failures),
		zap.Float64("player_x", px),
		zap.Float64("player_y", py),
	}
}

func (s *RoomsScene) Close() {
	s.rooms.Solids().Clear()
}

func (s *RoomsScene) Context() *sim.Context                    { return s.ctx }
func (s *RoomsScene) Rooms() *systems.RoomTransitionController { return s.rooms }
