package assets

import (
	"testing"

	"github.com/automoto/gladiator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledArena(t *testing.T) {
	arena, err := NewLevelLoader(Levels()).LoadArena(config.Arena.MapPath)
	require.NoError(t, err)

	assert.Equal(t, 320, arena.Width)
	assert.Equal(t, 240, arena.Height)
	assert.True(t, arena.HasPlayerStart)
	assert.NotEmpty(t, arena.Solids)
	assert.NotEmpty(t, arena.Outside)
	for _, p := range arena.Placements {
		_, err := config.ParseKind(p.Kind)
		assert.NoError(t, err, p.Kind)
	}
}

func TestBundledRooms(t *testing.T) {
	rooms, err := NewLevelLoader(Levels()).LoadRoomMap(config.Rooms.MapPath)
	require.NoError(t, err)

	r, err := rooms.Room(0, 0)
	require.NoError(t, err)
	assert.Equal(t, config.Rooms.Width, r.Width)
	assert.Equal(t, config.Rooms.Height, r.Height)

	for _, key := range rooms.Keys() {
		r, err := rooms.Room(key.X, key.Y)
		require.NoError(t, err)
		for _, p := range r.Placements {
			_, err := config.ParseKind(p.Kind)
			assert.NoError(t, err, p.Kind)
		}
	}
}

func TestFSPrefersDirectory(t *testing.T) {
	assert.Equal(t, Levels(), FS(""))
	assert.NotEqual(t, Levels(), FS(t.TempDir()))
}
