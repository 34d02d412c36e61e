// Package sim holds the simulation context handed to every system, factory
// and spawner in place of scene-wide globals.
package sim

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Feedback receives presentation cues the core triggers but does not own.
type Feedback interface {
	Shake(intensity float64)
}

type nopFeedback struct{}

func (nopFeedback) Shake(float64) {}

// Context is the single owner of world state for one scene.
//
// Writers, all on the game loop goroutine:
//   - World, Space: factories add, pool eviction callbacks remove.
//   - Player: set once by the scene; its position is written by the room
//     controller, its velocity by the collision resolver.
//   - Light.Scale: collision resolver only. Light.Display: light system only.
//   - Delta: the scene, before running systems.
type Context struct {
	ECS      *ecs.ECS
	World    donburi.World
	Space    *resolv.Space
	Rand     *rand.Rand
	Log      *zap.Logger
	Feedback Feedback

	Player actor.Actor
	Light  *components.LightData

	// Width and Height bound the playable area in pixels.
	Width, Height float64

	// Delta is the simulated time covered by the current update.
	Delta time.Duration
}

// Option customizes a new Context.
type Option func(*Context)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Context) {
		c.Log = log
	}
}

// WithSeed makes every random draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Context) {
		c.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithFeedback routes camera cues to f.
func WithFeedback(f Feedback) Option {
	return func(c *Context) {
		c.Feedback = f
	}
}

// New creates a context with a fresh world and a collision space covering
// width x height pixels.
func New(width, height int, opts ...Option) *Context {
	world := donburi.NewWorld()
	cell := cfg.Physics.CellSize
	if cell <= 0 {
		cell = 16
	}
	c := &Context{
		ECS:      ecs.NewECS(world),
		World:    world,
		Space:    resolv.NewSpace(width, height, cell, cell),
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Log:      zap.NewNop(),
		Feedback: nopFeedback{},
		Width:    float64(width),
		Height:   float64(height),
	}
	for _, opt := range opts {
		opt(c)
	}

	light := archetypes.Light.Spawn(c.ECS)
	components.Light.SetValue(light, components.LightData{
		Scale:   cfg.Light.StartScale,
		Display: cfg.Light.StartScale,
		Min:     cfg.Light.MinScale,
	})
	c.Light = components.Light.Get(light)
	return c
}

// Seconds returns Delta as a float for integration.
func (c *Context) Seconds() float64 {
	return c.Delta.Seconds()
}

// Detach removes the actor's collision object from the space so it stops
// producing overlaps. The entity stays in the world.
func (c *Context) Detach(a actor.Actor) {
	obj := a.Object()
	if obj == nil || obj.Space == nil {
		return
	}
	c.Space.Remove(obj)
}

// Evict retracts an actor from both the collision space and the world. It is
// the eviction callback pools are built with.
func (c *Context) Evict(a actor.Actor) {
	c.Detach(a)
	e := a.Entry()
	if e == nil || !e.Valid() {
		return
	}
	c.World.Remove(e.Entity())
}

// OutOfBounds reports whether obj lies wholly outside the playable area.
func (c *Context) OutOfBounds(obj *resolv.Object) bool {
	return obj.X+obj.W < 0 || obj.Y+obj.H < 0 || obj.X > c.Width || obj.Y > c.Height
}

// Actors returns every actor of the given class that is still alive.
func (c *Context) Actors(class cfg.Class) []actor.Actor {
	var out []actor.Actor
	components.Actor.Each(c.World, func(e *donburi.Entry) {
		data := components.Actor.Get(e)
		if data.Alive && data.Kind.Class() == class {
			out = append(out, actor.FromEntry(e))
		}
	})
	return out
}
