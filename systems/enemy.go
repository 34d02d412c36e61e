package systems

import (
	"math"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
)

// UpdateFollowers steers every alive hostile toward its target at the
// kind's speed. Hostiles whose target is gone stand still.
func UpdateFollowers(ctx *sim.Context) {
	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		a := actor.FromEntry(e)
		if !a.Alive() {
			return
		}
		target, ok := a.Target()
		if !ok || !target.Alive() {
			a.SetVelocity(0, 0)
			return
		}

		kc := cfg.KindOf(a.Kind())
		ax, ay := a.Center()
		tx, ty := target.Center()
		dx, dy := tx-ax, ty-ay
		dist := math.Hypot(dx, dy)

		// Ranged kinds hold at their firing distance
		if dist == 0 || (kc.KeepDistance > 0 && dist <= kc.KeepDistance) {
			a.SetVelocity(0, 0)
			return
		}
		a.SetVelocity(dx/dist*kc.Speed, dy/dist*kc.Speed)
	})
}

// UpdateRanged fires an enemy bullet from every ranged hostile whose
// cooldown ran out, aimed at its target's center.
func UpdateRanged(ctx *sim.Context) {
	components.Ranged.Each(ctx.World, func(e *donburi.Entry) {
		a := actor.FromEntry(e)
		if !a.Alive() {
			return
		}
		ranged := components.Ranged.Get(e)
		if ranged.Cooldown > 0 {
			ranged.Cooldown -= ctx.Delta
			if ranged.Cooldown > 0 {
				return
			}
		}

		target, ok := a.Target()
		if !ok || !target.Alive() || ranged.Bullets == nil {
			return
		}
		ranged.Cooldown = cfg.KindOf(a.Kind()).FireInterval

		x, y := a.Center()
		tx, ty := target.Center()
		factory.CreateEnemyBullet(ctx, x, y, factory.Options{
			Bullets: ranged.Bullets,
			Owner:   a,
			AimX:    tx,
			AimY:    ty,
		})
	})
}
