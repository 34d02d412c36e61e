package systems

import (
	"math"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems/factory"
)

// UpdateAutopilot stands in for player input on a headless host: every
// FireInterval it fires a player bullet at the nearest alive hostile within
// TargetingSpan. Bullets join the given sink.
func UpdateAutopilot(ctx *sim.Context, bullets components.EntrySink) {
	if !cfg.Autopilot.Enabled || ctx.Player == nil || !ctx.Player.Alive() {
		return
	}
	e := ctx.Player.Entry()
	if !e.HasComponent(components.Autopilot) {
		return
	}
	pilot := components.Autopilot.Get(e)
	pilot.Cooldown -= ctx.Delta
	if pilot.Cooldown > 0 {
		return
	}

	target, ok := nearestHostile(ctx, ctx.Player, cfg.Autopilot.TargetingSpan)
	if !ok {
		pilot.Cooldown = 0
		return
	}
	pilot.Cooldown = cfg.Autopilot.FireInterval

	x, y := ctx.Player.Center()
	tx, ty := target.Center()
	factory.CreatePlayerBullet(ctx, x, y, factory.Options{
		Bullets: bullets,
		Owner:   ctx.Player,
		AimX:    tx,
		AimY:    ty,
	})
}

func nearestHostile(ctx *sim.Context, from actor.Actor, span float64) (actor.Actor, bool) {
	fx, fy := from.Center()
	var best actor.Actor
	bestDist := math.Inf(1)
	for _, h := range ctx.Actors(cfg.ClassHostile) {
		hx, hy := h.Center()
		d := math.Hypot(hx-fx, hy-fy)
		if span > 0 && d > span {
			continue
		}
		if d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, best != nil
}
