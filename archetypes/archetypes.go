package archetypes

import (
	"github.com/automoto/gladiator/components"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer the simulation uses.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Object,
		components.Physics,
		components.Health,
		components.Autopilot,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Object,
		components.Physics,
		components.Health,
		components.Target,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Actor,
		components.Object,
		components.Physics,
		components.Projectile,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Actor,
		components.Object,
	)
	Light = newArchetype(
		components.Light,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
