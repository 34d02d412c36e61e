package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"go.uber.org/zap"
)

var (
	// ErrUnknownPair is returned for class pairs with no rule.
	ErrUnknownPair = errors.New("collision: no rule for pair")
	// ErrAmbiguousPair is returned when a pair is registered in both orders.
	ErrAmbiguousPair = errors.New("collision: pair matches rules in both orders")
	// ErrDuplicateRule is returned when a pair is registered twice.
	ErrDuplicateRule = errors.New("collision: rule already registered")
)

// CollisionEvent is one overlapping pair found by the physics step. It is
// consumed once by CollisionResolver.Resolve.
type CollisionEvent struct {
	A, B actor.Actor
}

// ClassPair is an ordered pair of collision classes.
type ClassPair struct {
	A, B cfg.Class
}

func (p ClassPair) String() string {
	return fmt.Sprintf("%s/%s", p.A, p.B)
}

// Rule applies the response for one ordered class pair. a has class
// pair.A and b has class pair.B.
type Rule func(ctx *sim.Context, a, b actor.Actor)

// CollisionResolver turns overlapping pairs into velocity, health and
// liveness changes.
type CollisionResolver struct {
	ctx   *sim.Context
	rules map[ClassPair]Rule
	order []ClassPair
}

// NewCollisionResolver returns a resolver with the built-in rules.
func NewCollisionResolver(ctx *sim.Context) *CollisionResolver {
	r := &CollisionResolver{
		ctx:   ctx,
		rules: make(map[ClassPair]Rule),
	}
	r.MustRegister(ClassPair{cfg.ClassHostileProjectile, cfg.ClassPlayer}, projectileHitsPlayer)
	r.MustRegister(ClassPair{cfg.ClassHostile, cfg.ClassPlayer}, hostileTouchesPlayer)
	r.MustRegister(ClassPair{cfg.ClassPlayerProjectile, cfg.ClassHostile}, projectileHitsHostile)
	r.MustRegister(ClassPair{cfg.ClassPlayerProjectile, cfg.ClassObstacle}, projectileHitsObstacle)
	r.MustRegister(ClassPair{cfg.ClassHostileProjectile, cfg.ClassObstacle}, projectileHitsObstacle)
	r.MustRegister(ClassPair{cfg.ClassHostile, cfg.ClassHostile}, separateOnly)
	return r
}

// Register adds a rule. Registering the same ordered pair twice, or the
// reverse of a registered pair, is a configuration error.
func (r *CollisionResolver) Register(pair ClassPair, rule Rule) error {
	if _, ok := r.rules[pair]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, pair)
	}
	reverse := ClassPair{pair.B, pair.A}
	if _, ok := r.rules[reverse]; ok && reverse != pair {
		return fmt.Errorf("%w: %s and %s", ErrAmbiguousPair, pair, reverse)
	}
	r.rules[pair] = rule
	r.order = append(r.order, pair)
	return nil
}

// MustRegister is Register for setup code, panicking on configuration errors.
func (r *CollisionResolver) MustRegister(pair ClassPair, rule Rule) {
	if err := r.Register(pair, rule); err != nil {
		panic(err)
	}
}

// Pairs lists the registered pairs in registration order, for the overlap
// query to narrow what it reports.
func (r *CollisionResolver) Pairs() []ClassPair {
	out := make([]ClassPair, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve applies the rule for ev. Pairs involving a dead actor are skipped
// without error: an earlier pair in the same step may have killed it.
func (r *CollisionResolver) Resolve(ev CollisionEvent) error {
	a, b := ev.A, ev.B
	if a == nil || b == nil || !a.Alive() || !b.Alive() {
		return nil
	}

	// Register keeps at most one order of each pair
	ab := ClassPair{a.Class(), b.Class()}
	if rule, ok := r.rules[ab]; ok {
		rule(r.ctx, a, b)
		return nil
	}
	if rule, ok := r.rules[ClassPair{ab.B, ab.A}]; ok {
		rule(r.ctx, b, a)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownPair, ab)
}

// ResolveAll resolves every event, logging and skipping the ones that fail.
func (r *CollisionResolver) ResolveAll(events []CollisionEvent) {
	for _, ev := range events {
		if err := r.Resolve(ev); err != nil {
			r.ctx.Log.Error("collision pair skipped",
				zap.Error(err),
				zap.Stringer("a", ev.A.Kind()),
				zap.Stringer("b", ev.B.Kind()),
			)
		}
	}
}

// knockback sets the victim's velocity to speed along the line from source
// to victim, pushing it away from source.
func knockback(source, victim actor.Actor, speed float64) {
	sx, sy := source.Center()
	vx, vy := victim.Center()
	angle := math.Atan2(vy-sy, vx-sx)
	victim.SetVelocity(math.Cos(angle)*speed, math.Sin(angle)*speed)
}

func projectileHitsPlayer(ctx *sim.Context, bullet, player actor.Actor) {
	knockback(bullet, player, cfg.Combat.ProjectileKnockback)
	ctx.Feedback.Shake(cfg.Combat.ShakeIntensity)
	bullet.Kill()
	ctx.Detach(bullet)
}

func hostileTouchesPlayer(ctx *sim.Context, hostile, player actor.Actor) {
	knockback(hostile, player, cfg.Combat.ContactKnockback)
	ctx.Feedback.Shake(cfg.Combat.ShakeIntensity)
	DimLight(ctx, cfg.Combat.LightDecrement)
}

func projectileHitsHostile(ctx *sim.Context, bullet, hostile actor.Actor) {
	damage := ProjectileDamage(bullet)
	bullet.Kill()
	ctx.Detach(bullet)
	hostile.Hurt(damage)
}

func projectileHitsObstacle(ctx *sim.Context, bullet, _ actor.Actor) {
	bullet.Kill()
	ctx.Detach(bullet)
}

// separateOnly leaves overlap resolution between hostiles to movement.
func separateOnly(*sim.Context, actor.Actor, actor.Actor) {}
