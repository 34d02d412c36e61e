package systems

import (
	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	"github.com/automoto/gladiator/sim"
	"github.com/yohamta/donburi"
)

// UpdateDeaths runs the death fade. When it ends the actor is hidden and
// leaves the collision space; its pool collects it on the next prune.
func UpdateDeaths(ctx *sim.Context) {
	var done []*donburi.Entry
	components.Death.Each(ctx.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Remaining -= ctx.Delta
		if death.Remaining <= 0 {
			done = append(done, e)
		}
	})

	// Removing components while iterating would move entries between archetypes
	for _, e := range done {
		a := actor.FromEntry(e)
		a.Hide()
		ctx.Detach(a)
		donburi.Remove[components.DeathData](e, components.Death)
	}
}
