package systems

import (
	"math"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	"github.com/automoto/gladiator/sim"
)

// ProjectileDamage returns the damage a projectile deals, 0 for anything else.
func ProjectileDamage(a actor.Actor) int {
	e := a.Entry()
	if e == nil || !e.Valid() || !e.HasComponent(components.Projectile) {
		return 0
	}
	return components.Projectile.Get(e).Damage
}

// DimLight shrinks the light scale by amount, never below its minimum.
func DimLight(ctx *sim.Context, amount float64) {
	if ctx.Light == nil {
		return
	}
	ctx.Light.Scale = math.Max(ctx.Light.Scale-amount, ctx.Light.Min)
}
