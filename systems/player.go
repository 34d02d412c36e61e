package systems

import (
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/solarlune/resolv"
)

// ResetIfOutside moves the player back to (startX, startY) once it has left
// the map through the top or left edge, or touches an outside tile.
func ResetIfOutside(ctx *sim.Context, startX, startY float64) bool {
	p := ctx.Player
	if p == nil || !p.Alive() {
		return false
	}
	x, y := p.Position()
	if x >= 0 && y >= 0 && !touchesOutside(p.Object()) {
		return false
	}
	p.SetPosition(startX, startY)
	p.SetVelocity(0, 0)
	ctx.Log.Debug("player reset to start")
	return true
}

func touchesOutside(obj *resolv.Object) bool {
	if obj == nil || obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tags.ResolvOutside)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvOutside) {
		if overlaps(obj, o) {
			return true
		}
	}
	return false
}
