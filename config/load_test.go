package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "gladiator.toml", `
[combat]
contact_knockback = 120.0

[spawner.profiles.slime]
cap = 3
jitter = 5.0
interval = "4s"

[logging]
level = "debug"
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, c.Combat.ContactKnockback)
	assert.Equal(t, 50.0, c.Combat.ProjectileKnockback, "unset keys keep defaults")
	assert.Equal(t, SpawnProfile{Cap: 3, Jitter: 5, Interval: 4 * time.Second}, c.Spawner.Profiles["slime"])
	assert.Contains(t, c.Spawner.Profiles, "cube")
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 4, c.Rooms.MapWidth)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "gladiator.yaml", `
rooms:
  width: 256
  height: 192
kinds:
  orb:
    health: 9
    fire_interval: 2s
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 256.0, c.Rooms.Width)
	assert.Equal(t, 192.0, c.Rooms.Height)
	assert.Equal(t, 4, c.Rooms.MapHeight)
	assert.Equal(t, 9, c.Kinds["orb"].Health)
	assert.Equal(t, 2*time.Second, c.Kinds["orb"].FireInterval)
	assert.Equal(t, 2, c.Kinds["slime"].Health)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := writeFile(t, "bad.toml", `
[kinds.dragon]
health = 100
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"negative cap", "cap.toml", "[spawner.profiles.cube]\ncap = -1\n"},
		{"zero tick rate", "loop.yaml", "loop:\n  tick_rate: 0\n"},
		{"unknown extension", "config.json", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyInstallsGlobals(t *testing.T) {
	t.Cleanup(func() { Apply(Default()) })

	c := Default()
	c.Combat.LightDecrement = 0.5
	c.Kinds["slime"] = KindConfig{Health: 42}
	c.Spawner.Profiles = nil
	Apply(c)

	assert.Equal(t, 0.5, Combat.LightDecrement)
	assert.Equal(t, 42, KindOf(KindSlime).Health)
	assert.Equal(t, SpawnProfile{
		Cap:      Spawner.DefaultCap,
		Jitter:   Spawner.DefaultJitter,
		Interval: Spawner.DefaultInterval,
	}, ProfileOf(KindSlime), "kinds without a profile use the spawner defaults")
}

func TestParseKind(t *testing.T) {
	for k, name := range KindToName {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.Equal(t, name, k.String())
		assert.NotEqual(t, ClassNone, k.Class(), name)
	}

	_, err := ParseKind("dragon")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, ClassNone, KindNone.Class())
	assert.True(t, ClassHostileProjectile.IsProjectile())
	assert.False(t, ClassHostile.IsProjectile())
}
