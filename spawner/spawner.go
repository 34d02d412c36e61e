// Package spawner generates hostiles around a fixed origin on a timer while
// keeping each spawn point's population under its cap.
package spawner

import (
	"fmt"
	"time"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/pool"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/automoto/gladiator/timer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spawner is one spawn point. It owns its pool; the world and collision
// space only hold references for queries.
//
// The cap is checked when generating, never enforced on existing members:
// lowering it leaves the population above the new cap until members die.
type Spawner struct {
	id     uuid.UUID
	ctx    *sim.Context
	clock  *timer.Scheduler
	create factory.Func
	kind   cfg.Kind
	x, y   float64

	size     int
	interval time.Duration
	jitter   float64
	target   actor.Actor
	bullets  *pool.Pool

	pool   *pool.Pool
	handle *timer.Handle
	log    *zap.Logger
}

// Option customizes a new Spawner.
type Option func(*Spawner)

// WithBullets gives spawned hostiles a pool to fire projectiles into.
func WithBullets(p *pool.Pool) Option {
	return func(s *Spawner) {
		s.bullets = p
	}
}

// New creates a spawn point at (x, y) for kind and arms its timer with the
// default interval. It fails when the registry cannot build kind.
func New(ctx *sim.Context, clock *timer.Scheduler, reg *factory.Registry, kind cfg.Kind, x, y float64, target actor.Actor, opts ...Option) (*Spawner, error) {
	create, err := reg.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("spawner at (%.0f, %.0f): %w", x, y, err)
	}

	s := &Spawner{
		id:       uuid.New(),
		ctx:      ctx,
		clock:    clock,
		create:   create,
		kind:     kind,
		x:        x,
		y:        y,
		size:     cfg.Spawner.DefaultCap,
		interval: cfg.Spawner.DefaultInterval,
		jitter:   cfg.Spawner.DefaultJitter,
		target:   target,
		pool:     pool.New(ctx.Evict),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = ctx.Log.With(
		zap.String("spawner", s.id.String()),
		zap.Stringer("kind", kind),
	)
	s.arm()

	s.log.Debug("spawner created",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("cap", s.size),
		zap.Duration("interval", s.interval),
	)
	return s, nil
}

// Tick prunes the pool and, below the cap, generates one entity.
func (s *Spawner) Tick() {
	s.pool.Prune()
	if s.pool.Size() >= s.size {
		return
	}
	s.spawn()
}

// Burst runs cap generation attempts at once, ignoring the timer.
func (s *Spawner) Burst() *Spawner {
	for i := 0; i < s.size; i++ {
		s.Tick()
	}
	return s
}

// SetInterval changes the cadence. The timer is re-armed so the first tick
// at the new cadence comes a full interval from now. A non-positive interval
// stops periodic ticks.
func (s *Spawner) SetInterval(d time.Duration) *Spawner {
	s.interval = d
	s.arm()
	return s
}

// SetCap changes the population cap used by later ticks. Negative values are
// treated as zero.
func (s *Spawner) SetCap(n int) *Spawner {
	if n < 0 {
		s.log.Warn("negative spawn cap, using 0", zap.Int("cap", n))
		n = 0
	}
	s.size = n
	return s
}

// SetJitter changes the placement radius used by later ticks. Negative values
// are treated as zero.
func (s *Spawner) SetJitter(r float64) *Spawner {
	if r < 0 {
		s.log.Warn("negative spawn jitter, using 0", zap.Float64("jitter", r))
		r = 0
	}
	s.jitter = r
	return s
}

// SetTarget changes what later spawns follow. Existing members keep theirs.
func (s *Spawner) SetTarget(target actor.Actor) *Spawner {
	s.target = target
	return s
}

// ApplyProfile sets cap, jitter and interval in one go.
func (s *Spawner) ApplyProfile(p cfg.SpawnProfile) *Spawner {
	return s.SetCap(p.Cap).SetJitter(p.Jitter).SetInterval(p.Interval)
}

// Stop cancels future ticks. Members stay in the world.
func (s *Spawner) Stop() {
	s.handle.Cancel()
}

func (s *Spawner) ID() uuid.UUID           { return s.id }
func (s *Spawner) Kind() cfg.Kind          { return s.kind }
func (s *Spawner) Origin() (x, y float64)  { return s.x, s.y }
func (s *Spawner) Cap() int                { return s.size }
func (s *Spawner) Jitter() float64         { return s.jitter }
func (s *Spawner) Interval() time.Duration { return s.interval }
func (s *Spawner) Pool() *pool.Pool        { return s.pool }
func (s *Spawner) Size() int               { return s.pool.Size() }

func (s *Spawner) arm() {
	s.handle.Cancel()
	s.handle = s.clock.Every(s.interval, s.Tick)
}

func (s *Spawner) spawn() {
	x := s.x + s.draw()
	y := s.y + s.draw()

	var opts factory.Options
	if s.bullets != nil {
		opts.Bullets = s.bullets
	}
	e := s.create(s.ctx, x, y, opts)
	a := actor.FromEntry(e)
	s.pool.Add(a)
	if s.target != nil {
		a.Follow(s.target)
	}

	s.log.Debug("spawned",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("population", s.pool.Size()),
	)
}

// draw returns a uniform offset in [-jitter, jitter].
func (s *Spawner) draw() float64 {
	if s.jitter == 0 {
		return 0
	}
	return (s.ctx.Rand.Float64()*2 - 1) * s.jitter
}
