package systems

import (
	"math"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateMovement integrates velocities over ctx.Delta. Players and hostiles
// stop against solids; projectiles fly through and are culled by the
// collision rules, or killed once they leave the playable area.
func UpdateMovement(ctx *sim.Context) {
	dt := ctx.Seconds()
	if dt <= 0 {
		return
	}
	components.Physics.Each(ctx.World, func(e *donburi.Entry) {
		data := components.Actor.Get(e)
		if !data.Alive {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		clampSpeed(physics)
		dx := physics.SpeedX * dt
		dy := physics.SpeedY * dt

		if data.Kind.Class().IsProjectile() {
			obj.X += dx
			obj.Y += dy
			obj.Update()
			if ctx.OutOfBounds(obj) {
				a := actor.FromEntry(e)
				a.Kill()
				ctx.Detach(a)
			}
			return
		}
		obj.X += blockedDelta(obj, dx, 0)
		obj.Y += blockedDelta(obj, 0, dy)
		obj.Update()

		if physics.Drag > 0 {
			keep := math.Max(0, 1-physics.Drag*dt)
			physics.SpeedX *= keep
			physics.SpeedY *= keep
		}
	})
}

// blockedDelta returns how far obj may move along (dx, dy) before touching
// a solid. Only one of dx, dy is expected to be non-zero. Solids obj already
// overlaps do not block, so actors spawned inside a wall can walk out.
func blockedDelta(obj *resolv.Object, dx, dy float64) float64 {
	move := dx + dy
	if move == 0 || obj.Space == nil {
		return move
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}

	// resolv only narrows by cell; pick the first solid the move really hits
	var hit *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(obj, solid) || !overlapsAt(obj, solid, dx, dy) {
			continue
		}
		if hit == nil || nearer(solid, hit, dx, dy) {
			hit = solid
		}
	}
	if hit == nil {
		return move
	}

	contact := check.ContactWithObject(hit)
	if dx != 0 {
		return contact.X()
	}
	return contact.Y()
}

// nearer reports whether a is met before b when moving along (dx, dy).
func nearer(a, b *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return a.X < b.X
	case dx < 0:
		return a.X+a.W > b.X+b.W
	case dy > 0:
		return a.Y < b.Y
	default:
		return a.Y+a.H > b.Y+b.H
	}
}

func clampSpeed(p *components.PhysicsData) {
	if p.MaxSpeed <= 0 {
		return
	}
	speed := math.Hypot(p.SpeedX, p.SpeedY)
	if speed <= p.MaxSpeed {
		return
	}
	scale := p.MaxSpeed / speed
	p.SpeedX *= scale
	p.SpeedY *= scale
}

// classTag maps a collision class to the resolv tag its objects carry.
var classTag = map[cfg.Class]string{
	cfg.ClassPlayer:            tags.ResolvPlayer,
	cfg.ClassHostile:           tags.ResolvEnemy,
	cfg.ClassPlayerProjectile:  tags.ResolvPlayerProjectile,
	cfg.ClassHostileProjectile: tags.ResolvEnemyProjectile,
	cfg.ClassObstacle:          tags.ResolvSolid,
}

// FindPairs reports every overlapping pair of alive actors whose classes
// match one of pairs, in the pair's order. Each unordered pair of actors is
// reported at most once.
func FindPairs(ctx *sim.Context, pairs []ClassPair) []CollisionEvent {
	var events []CollisionEvent
	seen := make(map[[2]donburi.Entity]struct{})

	for _, pair := range pairs {
		tagB, ok := classTag[pair.B]
		if !ok {
			continue
		}
		for _, a := range ctx.Actors(pair.A) {
			obj := a.Object()
			if obj == nil || obj.Space == nil {
				continue
			}
			check := obj.Check(0, 0, tagB)
			if check == nil {
				continue
			}
			for _, other := range check.ObjectsByTags(tagB) {
				if other == obj || !overlaps(obj, other) {
					continue
				}
				b, ok := actor.FromObject(other)
				if !ok || !b.Alive() || b.Class() != pair.B {
					continue
				}
				key := pairKey(a, b)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				events = append(events, CollisionEvent{A: a, B: b})
			}
		}
	}
	return events
}

// overlaps is an exact AABB test; resolv's Check only narrows by cell.
func overlaps(a, b *resolv.Object) bool {
	return overlapsAt(a, b, 0, 0)
}

// overlapsAt tests a moved by (dx, dy) against b.
func overlapsAt(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && b.X < ax+a.W &&
		ay < b.Y+b.H && b.Y < ay+a.H
}

func pairKey(a, b actor.Actor) [2]donburi.Entity {
	ea, eb := a.Entry().Entity(), b.Entry().Entity()
	if eb < ea {
		ea, eb = eb, ea
	}
	return [2]donburi.Entity{ea, eb}
}
