package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/gladiator/actor"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/yohamta/donburi"
)

// ErrUnknownKind is returned for kinds no constructor is registered for.
var ErrUnknownKind = errors.New("factory: unknown kind")

// Options carries the collaborators a constructor may need beyond a position.
type Options struct {
	// Bullets collects the projectile being created, or the ones the
	// created actor fires later.
	Bullets components.EntrySink
	// Owner is the actor firing a projectile.
	Owner actor.Actor
	// Aim is the point a projectile heads for.
	AimX, AimY float64
	// Size overrides the kind's configured size when non-zero.
	W, H float64
}

// Func builds one entity of a fixed kind at (x, y) and registers it with
// the context's world and collision space.
type Func func(ctx *sim.Context, x, y float64, opts Options) *donburi.Entry

// Registry maps kinds to constructors.
type Registry struct {
	funcs map[cfg.Kind]Func
}

// NewRegistry returns a registry with every built-in kind registered.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[cfg.Kind]Func)}
	r.Register(cfg.KindPlayer, CreatePlayer)
	r.Register(cfg.KindSlime, CreateSlime)
	r.Register(cfg.KindCube, CreateCube)
	r.Register(cfg.KindOrb, CreateOrb)
	r.Register(cfg.KindPlayerBullet, CreatePlayerBullet)
	r.Register(cfg.KindEnemyBullet, CreateEnemyBullet)
	r.Register(cfg.KindSolidStone, CreateSolidStone)
	r.Register(cfg.KindWall, CreateWall)
	return r
}

// Register installs or replaces the constructor for kind.
func (r *Registry) Register(kind cfg.Kind, fn Func) {
	r.funcs[kind] = fn
}

// Lookup returns the constructor for kind.
func (r *Registry) Lookup(kind cfg.Kind) (Func, error) {
	fn, ok := r.funcs[kind]
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return fn, nil
}

// Create builds an actor of kind at (x, y).
func (r *Registry) Create(ctx *sim.Context, kind cfg.Kind, x, y float64, opts Options) (actor.Actor, error) {
	fn, err := r.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return actor.FromEntry(fn(ctx, x, y, opts)), nil
}
