package factory

import (
	"github.com/automoto/gladiator/archetypes"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
)

// CreateWall creates a solid tile. opts.W and opts.H give the tile size.
func CreateWall(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createObstacle(ctx, cfg.KindWall, x, y, opts)
}

// CreateSolidStone creates a stone placed from a room's object layer.
func CreateSolidStone(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createObstacle(ctx, cfg.KindSolidStone, x, y, opts)
}

func createObstacle(ctx *sim.Context, kind cfg.Kind, x, y float64, opts Options) *donburi.Entry {
	wall := archetypes.Obstacle.Spawn(ctx.ECS)

	w, h := sizeOf(kind, opts)
	attachObject(ctx, wall, x, y, w, h, tags.ResolvSolid)
	setActor(wall, kind)

	return wall
}
