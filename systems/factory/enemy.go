package factory

import (
	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
)

func CreateSlime(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createEnemy(ctx, cfg.KindSlime, x, y, opts)
}

func CreateCube(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createEnemy(ctx, cfg.KindCube, x, y, opts)
}

// CreateOrb spawns a ranged hostile. Its bullets join opts.Bullets.
func CreateOrb(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	orb := createEnemy(ctx, cfg.KindOrb, x, y, opts)
	donburi.Add(orb, components.Ranged, &components.RangedData{
		Cooldown: cfg.KindOf(cfg.KindOrb).FireInterval,
		Bullets:  opts.Bullets,
	})
	return orb
}

func createEnemy(ctx *sim.Context, kind cfg.Kind, x, y float64, opts Options) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ctx.ECS)

	w, h := sizeOf(kind, opts)
	attachObject(ctx, enemy, x, y, w, h, tags.ResolvEnemy)
	setActor(enemy, kind)

	// Enemies hold position when pushed; follow AI sets their speed each update.
	components.Physics.SetValue(enemy, components.PhysicsData{
		MaxSpeed: cfg.Physics.MaxSpeed,
	})

	kc := cfg.KindOf(kind)
	components.Health.SetValue(enemy, components.HealthData{
		Current: kc.Health,
		Max:     kc.Health,
	})
	components.Target.SetValue(enemy, components.TargetData{Entity: donburi.Null})

	return enemy
}
