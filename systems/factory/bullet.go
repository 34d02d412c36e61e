package factory

import (
	"math"

	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayerBullet fires a bullet from (x, y) toward (opts.AimX, opts.AimY).
func CreatePlayerBullet(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createBullet(ctx, cfg.KindPlayerBullet, tags.ResolvPlayerProjectile, x, y, cfg.Autopilot.BulletSpeed, opts)
}

// CreateEnemyBullet fires a hostile bullet from (x, y) toward (opts.AimX, opts.AimY).
func CreateEnemyBullet(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry {
	return createBullet(ctx, cfg.KindEnemyBullet, tags.ResolvEnemyProjectile, x, y, cfg.KindOf(cfg.KindOrb).BulletSpeed, opts)
}

func createBullet(ctx *sim.Context, kind cfg.Kind, tag string, x, y, speed float64, opts Options) *donburi.Entry {
	b := archetypes.Projectile.Spawn(ctx.ECS)

	w, h := sizeOf(kind, opts)
	// x, y is the muzzle point; center the bullet on it
	attachObject(ctx, b, x-w/2, y-h/2, w, h, tag)
	setActor(b, kind)

	dx := opts.AimX - x
	dy := opts.AimY - y
	length := math.Sqrt(dx*dx + dy*dy)
	if length > 0 {
		dx /= length
		dy /= length
	}
	components.Physics.SetValue(b, components.PhysicsData{
		SpeedX: speed * dx,
		SpeedY: speed * dy,
	})
	components.Actor.Get(b).Angle = math.Atan2(dy, dx)

	owner := donburi.Null
	if opts.Owner != nil && opts.Owner.Entry() != nil {
		owner = opts.Owner.Entry().Entity()
	}
	components.Projectile.SetValue(b, components.ProjectileData{
		Owner:  owner,
		Damage: cfg.KindOf(kind).Damage,
	})

	if opts.Bullets != nil {
		opts.Bullets.AddEntry(b)
	}

	return b
}
