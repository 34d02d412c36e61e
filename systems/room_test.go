package systems_test

import (
	"fmt"
	"testing"

	"github.com/automoto/gladiator/actor"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/leveldata"
	"github.com/automoto/gladiator/sim"
	"github.com/automoto/gladiator/systems"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type fakeRooms struct {
	rooms map[leveldata.RoomKey]*leveldata.RoomData
	calls int
}

// newFakeRooms builds every room of a (w+1) x (h+1) grid with one floor tile
// and one stone.
func newFakeRooms(w, h int) *fakeRooms {
	f := &fakeRooms{rooms: make(map[leveldata.RoomKey]*leveldata.RoomData)}
	for x := 0; x <= w; x++ {
		for y := 0; y <= h; y++ {
			f.rooms[leveldata.RoomKey{X: x, Y: y}] = &leveldata.RoomData{
				X: x, Y: y, Width: 128, Height: 96,
				Solids:     []leveldata.SolidRect{{X: 0, Y: 88, W: 8, H: 8}},
				Placements: []leveldata.Placement{{Kind: "solidStone", X: 64, Y: 48}},
			}
		}
	}
	return f
}

func (f *fakeRooms) Room(x, y int) (*leveldata.RoomData, error) {
	f.calls++
	r, ok := f.rooms[leveldata.RoomKey{X: x, Y: y}]
	if !ok {
		return nil, fmt.Errorf("%w: %d%d", leveldata.ErrRoomNotFound, x, y)
	}
	return r, nil
}

func newController(t *testing.T, loader systems.RoomLoader) (*world, *systems.RoomTransitionController, actor.Actor) {
	t.Helper()
	w := newWorld(t)
	player := w.player(t, 16, 32)
	c := systems.NewRoomTransitionController(w.ctx, loader, w.reg, 4, 4, 128, 96)
	return w, c, player
}

func TestLeavingTopMovesUpOneRoom(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))
	player.SetPosition(16, -5)

	require.NoError(t, c.Update(player))

	x, y := c.Room()
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
	_, py := player.Position()
	assert.Equal(t, 96.0, py)
	assert.Equal(t, 1, c.Reloads(), "exactly one reload")
}

func TestTopEdgeOfWorldClamps(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))
	for i := 0; i < 4; i++ {
		player.SetPosition(16, -5)
		require.NoError(t, c.Update(player))
	}
	_, ry := c.Room()
	require.Equal(t, 4, ry)
	require.Equal(t, 4, c.Reloads())

	player.SetPosition(16, -5)
	require.NoError(t, c.Update(player))

	_, ry = c.Room()
	assert.Equal(t, 4, ry, "no room above the top row")
	_, py := player.Position()
	assert.Equal(t, 0.0, py)
	assert.Equal(t, 4, c.Reloads())
}

func TestLeavingBottomAtRowZeroClamps(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))
	player.SetPosition(16, 100)

	require.NoError(t, c.Update(player))

	_, py := player.Position()
	assert.Equal(t, 96.0, py)
	assert.Equal(t, 0, c.Reloads())
}

func TestLeavingBottomMovesDown(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))
	player.SetPosition(16, -1)
	require.NoError(t, c.Update(player))

	player.SetPosition(16, 97)
	require.NoError(t, c.Update(player))

	_, ry := c.Room()
	assert.Equal(t, 0, ry)
	_, py := player.Position()
	assert.Equal(t, 0.0, py)
	assert.Equal(t, 2, c.Reloads())
}

func TestHorizontalTransitions(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))

	player.SetPosition(-2, 40)
	require.NoError(t, c.Update(player))
	px, _ := player.Position()
	assert.Equal(t, 0.0, px, "no room left of column zero")

	player.SetPosition(130, 40)
	require.NoError(t, c.Update(player))
	rx, _ := c.Room()
	assert.Equal(t, 1, rx)
	px, py := player.Position()
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 40.0, py, "the other axis is untouched")

	player.SetPosition(-2, 40)
	require.NoError(t, c.Update(player))
	rx, _ = c.Room()
	assert.Equal(t, 0, rx)
	px, _ = player.Position()
	assert.Equal(t, 128.0, px)
}

func TestInsideBoundsDoesNothing(t *testing.T) {
	_, c, player := newController(t, newFakeRooms(4, 4))
	player.SetPosition(128, 96)

	require.NoError(t, c.Update(player))

	assert.Equal(t, 0, c.Reloads())
	px, py := player.Position()
	assert.Equal(t, 128.0, px)
	assert.Equal(t, 96.0, py)
}

func TestReloadReplacesRoomEntities(t *testing.T) {
	w, c, player := newController(t, newFakeRooms(4, 4))
	require.NoError(t, c.Load())
	require.Equal(t, 2, c.Solids().Size())

	var old []actor.Actor
	c.Solids().Each(func(a actor.Actor) { old = append(old, a) })

	player.SetPosition(16, -5)
	require.NoError(t, c.Update(player))

	assert.Equal(t, 2, c.Solids().Size())
	for _, a := range old {
		assert.False(t, a.Entry().Valid(), "outgoing room entities are torn down")
	}
	assert.True(t, player.Alive())
	assert.True(t, player.Entry().Valid(), "the player survives the transition")
	assert.Same(t, player, w.ctx.Player)

	kinds := map[cfg.Kind]int{}
	c.Solids().Each(func(a actor.Actor) { kinds[a.Kind()]++ })
	assert.Equal(t, map[cfg.Kind]int{cfg.KindWall: 1, cfg.KindSolidStone: 1}, kinds)
}

func TestMissingRoomClampsAndReports(t *testing.T) {
	rooms := newFakeRooms(0, 0)
	_, c, player := newController(t, rooms)
	require.NoError(t, c.Load())

	player.SetPosition(130, 40)
	err := c.Update(player)

	require.ErrorIs(t, err, leveldata.ErrRoomNotFound)
	rx, ry := c.Room()
	assert.Equal(t, 0, rx)
	assert.Equal(t, 0, ry)
	px, _ := player.Position()
	assert.Equal(t, 128.0, px)
	assert.Equal(t, 2, c.Solids().Size(), "the current room stays loaded")
}

func TestUnknownPlacementAbortsReload(t *testing.T) {
	rooms := newFakeRooms(4, 4)
	rooms.rooms[leveldata.RoomKey{X: 0, Y: 1}].Placements = append(
		rooms.rooms[leveldata.RoomKey{X: 0, Y: 1}].Placements,
		leveldata.Placement{Kind: "dragon", X: 10, Y: 10},
	)
	_, c, player := newController(t, rooms)
	require.NoError(t, c.Load())
	var before []actor.Actor
	c.Solids().Each(func(a actor.Actor) { before = append(before, a) })

	player.SetPosition(16, -5)
	err := c.Update(player)

	require.ErrorIs(t, err, cfg.ErrUnknownKind)
	_, ry := c.Room()
	assert.Equal(t, 0, ry)
	for _, a := range before {
		assert.True(t, a.Entry().Valid(), "nothing was torn down")
	}
}

func TestDeadPlayerIsIgnored(t *testing.T) {
	rooms := newFakeRooms(4, 4)
	_, c, player := newController(t, rooms)
	player.SetPosition(16, -5)
	player.Kill()

	require.NoError(t, c.Update(player))
	assert.Equal(t, 0, rooms.calls)
}

func TestConstructorWithoutEntityIsSkipped(t *testing.T) {
	w, c, _ := newController(t, newFakeRooms(4, 4))
	w.reg.Register(cfg.KindSolidStone, func(*sim.Context, float64, float64, factory.Options) *donburi.Entry {
		return nil
	})

	require.NoError(t, c.Load())

	require.Equal(t, 1, c.Solids().Size())
	c.Solids().Each(func(a actor.Actor) {
		assert.Equal(t, cfg.KindWall, a.Kind())
	})
	assert.Equal(t, 1, c.Reloads())
}
