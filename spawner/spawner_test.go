package spawner_test

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/pool"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/spawner"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/automoto/gladiator/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	ctx   *sim.Context
	clock *timer.Scheduler
	reg   *factory.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		ctx:   sim.New(640, 480, sim.WithSeed(42), sim.WithLogger(zaptest.NewLogger(t))),
		clock: timer.NewScheduler(),
		reg:   factory.NewRegistry(),
	}
}

func (f *fixture) spawner(t *testing.T, kind cfg.Kind, x, y float64, opts ...spawner.Option) *spawner.Spawner {
	t.Helper()
	s, err := spawner.New(f.ctx, f.clock, f.reg, kind, x, y, nil, opts...)
	require.NoError(t, err)
	return s
}

func members(s *spawner.Spawner) []actor.Actor {
	var out []actor.Actor
	s.Pool().Each(func(a actor.Actor) { out = append(out, a) })
	return out
}

func TestBurstTickRefillScenario(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).
		SetCap(1).
		SetInterval(2000 * time.Millisecond).
		SetJitter(10).
		Burst()
	require.Equal(t, 1, s.Size())

	s.Tick()
	require.Equal(t, 1, s.Size(), "at capacity the tick is a no-op")

	first := members(s)[0]
	first.Kill()
	s.Tick()

	require.Equal(t, 1, s.Size())
	fresh := members(s)[0]
	assert.NotSame(t, first, fresh)
	assert.True(t, fresh.Alive())
	x, y := fresh.Position()
	assert.InDelta(t, 100, x, 10)
	assert.InDelta(t, 100, y, 10)
}

func TestDefaults(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindCube, 0, 0)

	assert.Equal(t, 5, s.Cap())
	assert.Equal(t, time.Second, s.Interval())
	assert.Equal(t, 10.0, s.Jitter())
	assert.Equal(t, cfg.KindCube, s.Kind())
	assert.NotEmpty(t, s.ID().String())
}

func TestCapacityHoldsAfterEveryTick(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 200, 200).SetCap(4).SetInterval(0)

	for i := 0; i < 200; i++ {
		// Kill a pseudo-random member every few ticks
		if i%3 == 0 {
			ms := members(s)
			if len(ms) > 0 {
				ms[(i/3)%len(ms)].Kill()
			}
		}
		s.Tick()
		require.LessOrEqual(t, s.Size(), s.Cap(), "tick %d", i)
	}
}

func TestJitterBounds(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 300, 240).SetCap(100).SetJitter(25).Burst()

	require.Equal(t, 100, s.Size())
	for _, m := range members(s) {
		x, y := m.Position()
		assert.LessOrEqual(t, math.Abs(x-300), 25.0)
		assert.LessOrEqual(t, math.Abs(y-240), 25.0)
	}
}

func TestZeroJitterSpawnsAtOrigin(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindCube, 64, 32).SetJitter(0).SetCap(3).Burst()

	for _, m := range members(s) {
		x, y := m.Position()
		assert.Equal(t, 64.0, x)
		assert.Equal(t, 32.0, y)
	}
}

func TestBurstExactness(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindCube, 100, 100).SetCap(7).Burst()

	assert.Equal(t, 7, s.Size())
	assert.Equal(t, 7, s.Pool().Alive())

	s.Burst()
	assert.Equal(t, 7, s.Size(), "a second burst at capacity adds nothing")
}

func TestLoweringCapDoesNotEvict(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetCap(5).Burst()
	require.Equal(t, 5, s.Size())

	s.SetCap(2)
	s.Tick()
	assert.Equal(t, 5, s.Size(), "population stays above a lowered cap until members die")

	for _, m := range members(s)[:4] {
		m.Kill()
	}
	s.Tick()
	assert.Equal(t, 2, s.Size(), "one survivor plus one fresh spawn")
}

func TestNegativeSettingsClampToZero(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetCap(-3).SetJitter(-1)

	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 0.0, s.Jitter())
	s.Burst().Tick()
	assert.Equal(t, 0, s.Size())
}

func TestUnknownKindFailsAtConstruction(t *testing.T) {
	f := newFixture(t)
	_, err := spawner.New(f.ctx, f.clock, f.reg, cfg.KindNone, 0, 0, nil)
	assert.ErrorIs(t, err, factory.ErrUnknownKind)
	assert.Equal(t, 0, f.clock.Len(), "no timer is armed for a rejected spawn point")
}

func TestTimerDrivesTicks(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetCap(3).SetInterval(2 * time.Second)

	f.clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, s.Size())

	f.clock.Advance(time.Millisecond)
	assert.Equal(t, 1, s.Size())

	f.clock.Advance(10 * time.Second)
	assert.Equal(t, 3, s.Size(), "ticks past the cap are declined")
}

func TestSetIntervalRearms(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetInterval(2 * time.Second)

	f.clock.Advance(1500 * time.Millisecond)
	s.SetInterval(2 * time.Second)

	f.clock.Advance(time.Second)
	assert.Equal(t, 0, s.Size(), "the wait restarted from the change")

	f.clock.Advance(time.Second)
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 1, f.clock.Len(), "re-arming replaces the handle")
}

func TestNonPositiveIntervalStopsTicks(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetInterval(0)

	f.clock.Advance(time.Minute)
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, f.clock.Len())

	s.Tick()
	assert.Equal(t, 1, s.Size(), "manual ticks still work")
}

func TestStopCancelsFutureTicks(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100)

	f.clock.Advance(time.Second)
	require.Equal(t, 1, s.Size())

	s.Stop()
	f.clock.Advance(time.Minute)
	assert.Equal(t, 1, s.Size())
}

func TestSpawnsFollowTarget(t *testing.T) {
	f := newFixture(t)
	player, err := f.reg.Create(f.ctx, cfg.KindPlayer, 10, 10, factory.Options{})
	require.NoError(t, err)

	s, err := spawner.New(f.ctx, f.clock, f.reg, cfg.KindSlime, 100, 100, player)
	require.NoError(t, err)
	s.SetCap(2).Burst()

	for _, m := range members(s) {
		target, ok := m.Target()
		require.True(t, ok)
		assert.Equal(t, player.Entry().Entity(), target.Entry().Entity())
	}
}

func TestRangedSpawnsGetBulletPool(t *testing.T) {
	f := newFixture(t)
	bullets := pool.New(f.ctx.Evict)
	s := f.spawner(t, cfg.KindOrb, 100, 100, spawner.WithBullets(bullets)).SetCap(1).Burst()

	orb := members(s)[0]
	assert.Equal(t, cfg.KindOrb, orb.Kind())
	assert.Equal(t, 0, bullets.Size())
}

func TestApplyProfile(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).ApplyProfile(cfg.ProfileOf(cfg.KindSlime))

	assert.Equal(t, 6, s.Cap())
	assert.Equal(t, 50.0, s.Jitter())
	assert.Equal(t, 2*time.Second, s.Interval())
}

func TestPrunedMembersLeaveTheWorld(t *testing.T) {
	f := newFixture(t)
	s := f.spawner(t, cfg.KindSlime, 100, 100).SetCap(1).Burst()
	first := members(s)[0]
	obj := first.Object()

	first.Kill()
	s.Tick()

	assert.False(t, first.Entry().Valid())
	assert.Nil(t, obj.Space)
}
