package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/pool"
	"github.com/automoto/gladiator/shared/leveldata"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems/factory"
	"go.uber.org/zap"
)

// RoomLoader supplies the geometry and placements of one grid cell.
type RoomLoader interface {
	Room(x, y int) (*leveldata.RoomData, error)
}

// RoomTransitionController moves the player between the rooms of a grid
// when it leaves the active room's pixel bounds. The player is only ever
// repositioned; the room's solids and placements are torn down and rebuilt.
type RoomTransitionController struct {
	ctx    *sim.Context
	loader RoomLoader
	reg    *factory.Registry

	mapW, mapH    int
	width, height float64

	roomX, roomY int
	solids       *pool.Pool
	reloads      int
	log          *zap.Logger
}

// NewRoomTransitionController starts in room (0, 0) without loading it;
// call Load to populate the first room. Room coordinates range over
// [0, mapW] x [0, mapH].
func NewRoomTransitionController(ctx *sim.Context, loader RoomLoader, reg *factory.Registry, mapW, mapH int, width, height float64) *RoomTransitionController {
	return &RoomTransitionController{
		ctx:    ctx,
		loader: loader,
		reg:    reg,
		mapW:   mapW,
		mapH:   mapH,
		width:  width,
		height: height,
		solids: pool.New(ctx.Evict),
		log:    ctx.Log.Named("rooms"),
	}
}

// Room returns the active room coordinate.
func (c *RoomTransitionController) Room() (x, y int) {
	return c.roomX, c.roomY
}

// Reloads counts completed room loads, the initial Load included.
func (c *RoomTransitionController) Reloads() int {
	return c.reloads
}

// Solids is the pool holding the active room's entities.
func (c *RoomTransitionController) Solids() *pool.Pool {
	return c.solids
}

// Load (re)builds the active room.
func (c *RoomTransitionController) Load() error {
	return c.reload(c.roomX, c.roomY)
}

// Update runs the four boundary checks in order against the player's
// position. A failed room load leaves the coordinates as they were and
// clamps the player as if it had reached the edge of the world.
func (c *RoomTransitionController) Update(player actor.Actor) error {
	if player == nil || !player.Alive() {
		return nil
	}
	var errs []error

	x, y := player.Position()
	if y < 0 {
		if c.roomY < c.mapH && c.tryMove(c.roomX, c.roomY+1, &errs) {
			y = c.height
		} else {
			y = 0
		}
		player.SetPosition(x, y)
	}

	x, y = player.Position()
	if y > c.height {
		if c.roomY > 0 && c.tryMove(c.roomX, c.roomY-1, &errs) {
			y = 0
		} else {
			y = c.height
		}
		player.SetPosition(x, y)
	}

	x, y = player.Position()
	if x < 0 {
		if c.roomX > 0 && c.tryMove(c.roomX-1, c.roomY, &errs) {
			x = c.width
		} else {
			x = 0
		}
		player.SetPosition(x, y)
	}

	x, y = player.Position()
	if x > c.width {
		if c.roomX < c.mapW && c.tryMove(c.roomX+1, c.roomY, &errs) {
			x = 0
		} else {
			x = c.width
		}
		player.SetPosition(x, y)
	}

	return errors.Join(errs...)
}

func (c *RoomTransitionController) tryMove(x, y int, errs *[]error) bool {
	if err := c.reload(x, y); err != nil {
		c.log.Warn("room transition failed", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		*errs = append(*errs, err)
		return false
	}
	return true
}

type placement struct {
	create factory.Func
	kind   cfg.Kind
	x, y   float64
	opts   factory.Options
}

// reload swaps the active room for (x, y). Everything that can fail runs
// before the old room is torn down.
func (c *RoomTransitionController) reload(x, y int) error {
	room, err := c.loader.Room(x, y)
	if err != nil {
		return fmt.Errorf("load room (%d, %d): %w", x, y, err)
	}

	places := make([]placement, 0, len(room.Solids)+len(room.Placements))
	if len(room.Solids) > 0 {
		wall, err := c.reg.Lookup(cfg.KindWall)
		if err != nil {
			return fmt.Errorf("room (%d, %d): %w", x, y, err)
		}
		for _, r := range room.Solids {
			places = append(places, placement{
				create: wall,
				kind:   cfg.KindWall,
				x:      r.X,
				y:      r.Y,
				opts:   factory.Options{W: r.W, H: r.H},
			})
		}
	}
	for _, p := range room.Placements {
		kind, err := cfg.ParseKind(p.Kind)
		if err != nil {
			return fmt.Errorf("room (%d, %d): %w", x, y, err)
		}
		create, err := c.reg.Lookup(kind)
		if err != nil {
			return fmt.Errorf("room (%d, %d): %w", x, y, err)
		}
		places = append(places, placement{create: create, kind: kind, x: p.X, y: p.Y})
	}

	c.solids.Clear()

	for _, p := range places {
		e := p.create(c.ctx, p.x, p.y, p.opts)
		if e == nil {
			c.log.Error("constructor returned no entity",
				zap.Stringer("kind", p.kind),
				zap.Float64("x", p.x),
				zap.Float64("y", p.y),
			)
			continue
		}
		c.solids.AddEntry(e)
	}

	c.roomX, c.roomY = x, y
	c.reloads++
	c.log.Debug("room loaded",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("entities", c.solids.Size()),
	)
	return nil
}
