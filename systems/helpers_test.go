package systems_test

import (
	"testing"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type shakes struct {
	count int
	last  float64
}

func (s *shakes) Shake(intensity float64) {
	s.count++
	s.last = intensity
}

type world struct {
	ctx    *sim.Context
	reg    *factory.Registry
	shakes *shakes
}

func newWorld(t *testing.T) *world {
	t.Helper()
	sh := &shakes{}
	return &world{
		ctx: sim.New(320, 240,
			sim.WithSeed(1),
			sim.WithLogger(zaptest.NewLogger(t)),
			sim.WithFeedback(sh),
		),
		reg:    factory.NewRegistry(),
		shakes: sh,
	}
}

func (w *world) create(t *testing.T, kind cfg.Kind, x, y float64, opts ...factory.Options) actor.Actor {
	t.Helper()
	var o factory.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	a, err := w.reg.Create(w.ctx, kind, x, y, o)
	require.NoError(t, err)
	return a
}

func (w *world) player(t *testing.T, x, y float64) actor.Actor {
	t.Helper()
	p := w.create(t, cfg.KindPlayer, x, y)
	w.ctx.Player = p
	return p
}
