package factory

import (
	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	player := archetypes.Player.Spawn(ctx.ECS)

	w, h := sizeOf(cfg.KindPlayer, opts)
	attachObject(ctx, player, x, y, w, h, tags.ResolvPlayer)
	setActor(player, cfg.KindPlayer)

	components.Physics.SetValue(player, components.PhysicsData{
		Drag:     cfg.Physics.Drag,
		MaxSpeed: cfg.Physics.MaxSpeed,
	})

	kc := cfg.KindOf(cfg.KindPlayer)
	components.Health.SetValue(player, components.HealthData{
		Current: kc.Health,
		Max:     kc.Health,
	})
	components.Autopilot.SetValue(player, components.AutopilotData{
		Cooldown: cfg.Autopilot.FireInterval,
	})

	return player
}
