// Package actor exposes the capabilities every simulated entity shares
// (position, velocity, liveness, damage intake, following) over a donburi
// entry, so spawners and collision rules never touch components directly.
package actor

import (
	"math"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Actor is implemented by every entity the simulation creates.
//
// All mutators are no-ops on a stale actor: one whose entry was removed from
// the world, or (for Hurt and SetVelocity) one that is no longer alive.
type Actor interface {
	Entry() *donburi.Entry
	Kind() cfg.Kind
	Class() cfg.Class

	Position() (x, y float64)
	SetPosition(x, y float64)
	Center() (x, y float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	Angle() float64
	Object() *resolv.Object

	Alive() bool
	Visible() bool
	Kill()
	Hide()

	Health() int
	Hurt(amount int)

	Follow(target Actor)
	Target() (Actor, bool)
}

type entryActor struct {
	entry *donburi.Entry
}

// FromEntry wraps an entry created from one of the actor archetypes.
func FromEntry(e *donburi.Entry) Actor {
	return &entryActor{entry: e}
}

// FromObject returns the actor a resolv object belongs to.
func FromObject(obj *resolv.Object) (Actor, bool) {
	if obj == nil {
		return nil, false
	}
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return FromEntry(e), true
}

func (a *entryActor) Entry() *donburi.Entry { return a.entry }

func (a *entryActor) valid() bool {
	return a.entry != nil && a.entry.Valid()
}

func (a *entryActor) Kind() cfg.Kind {
	if !a.valid() {
		return cfg.KindNone
	}
	return components.Actor.Get(a.entry).Kind
}

func (a *entryActor) Class() cfg.Class {
	return a.Kind().Class()
}

func (a *entryActor) Object() *resolv.Object {
	if !a.valid() || !a.entry.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(a.entry).Object
}

func (a *entryActor) Position() (float64, float64) {
	obj := a.Object()
	if obj == nil {
		return 0, 0
	}
	return obj.X, obj.Y
}

func (a *entryActor) SetPosition(x, y float64) {
	obj := a.Object()
	if obj == nil {
		return
	}
	obj.X = x
	obj.Y = y
	obj.Update()
}

func (a *entryActor) Center() (float64, float64) {
	obj := a.Object()
	if obj == nil {
		return 0, 0
	}
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

func (a *entryActor) Velocity() (float64, float64) {
	if !a.valid() || !a.entry.HasComponent(components.Physics) {
		return 0, 0
	}
	p := components.Physics.Get(a.entry)
	return p.SpeedX, p.SpeedY
}

func (a *entryActor) SetVelocity(vx, vy float64) {
	if !a.Alive() || !a.entry.HasComponent(components.Physics) {
		return
	}
	p := components.Physics.Get(a.entry)
	p.SpeedX = vx
	p.SpeedY = vy
	if vx != 0 || vy != 0 {
		components.Actor.Get(a.entry).Angle = math.Atan2(vy, vx)
	}
}

func (a *entryActor) Angle() float64 {
	if !a.valid() {
		return 0
	}
	return components.Actor.Get(a.entry).Angle
}

func (a *entryActor) Alive() bool {
	return a.valid() && components.Actor.Get(a.entry).Alive
}

// Visible is false for stale actors so pools treat them as collectable.
func (a *entryActor) Visible() bool {
	return a.valid() && components.Actor.Get(a.entry).Visible
}

// Kill ends the actor at once: it is neither alive nor visible afterwards.
func (a *entryActor) Kill() {
	if !a.valid() {
		return
	}
	data := components.Actor.Get(a.entry)
	data.Alive = false
	data.Visible = false
}

// Hide turns a dead actor invisible once its death sequence is over.
func (a *entryActor) Hide() {
	if !a.valid() {
		return
	}
	components.Actor.Get(a.entry).Visible = false
}

func (a *entryActor) Health() int {
	if !a.valid() || !a.entry.HasComponent(components.Health) {
		return 0
	}
	return components.Health.Get(a.entry).Current
}

// Hurt takes amount off the actor's health. At zero the actor stops being
// alive but stays visible for its death sequence.
func (a *entryActor) Hurt(amount int) {
	if !a.Alive() || !a.entry.HasComponent(components.Health) || amount <= 0 {
		return
	}
	hp := components.Health.Get(a.entry)
	hp.Current -= amount
	if hp.Current > 0 {
		return
	}
	hp.Current = 0
	components.Actor.Get(a.entry).Alive = false

	if a.entry.HasComponent(components.Physics) {
		p := components.Physics.Get(a.entry)
		p.SpeedX = 0
		p.SpeedY = 0
	}
	if !a.entry.HasComponent(components.Death) {
		donburi.Add(a.entry, components.Death, &components.DeathData{
			Remaining: cfg.Combat.DeathDuration,
		})
	}
}

func (a *entryActor) Follow(target Actor) {
	if !a.Alive() || !a.entry.HasComponent(components.Target) {
		return
	}
	t := components.Target.Get(a.entry)
	if target == nil || target.Entry() == nil {
		t.Entity = donburi.Null
		return
	}
	t.Entity = target.Entry().Entity()
}

// Target resolves the weak target reference. It fails when no target was
// set or the target has left the world.
func (a *entryActor) Target() (Actor, bool) {
	if !a.valid() || !a.entry.HasComponent(components.Target) {
		return nil, false
	}
	ent := components.Target.Get(a.entry).Entity
	if ent == donburi.Null {
		return nil, false
	}
	w := a.entry.World
	if !w.Valid(ent) {
		return nil, false
	}
	return FromEntry(w.Entry(ent)), true
}
