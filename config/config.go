package config

import "time"

// KindConfig contains tuning for one actor kind
type KindConfig struct {
	Health int     `toml:"health" yaml:"health"`
	Speed  float64 `toml:"speed" yaml:"speed"` // pixels per second while following
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// Projectiles
	Damage int `toml:"damage" yaml:"damage"` // damage dealt on hit

	// Ranged hostiles
	FireInterval time.Duration `toml:"fire_interval" yaml:"fire_interval"`
	BulletSpeed  float64       `toml:"bullet_speed" yaml:"bullet_speed"`
	KeepDistance float64       `toml:"keep_distance" yaml:"keep_distance"` // stop approaching inside this range
}

// SpawnProfile is the cap/jitter/cadence a spawn point of one kind starts with
type SpawnProfile struct {
	Cap      int           `toml:"cap" yaml:"cap"`
	Jitter   float64       `toml:"jitter" yaml:"jitter"`
	Interval time.Duration `toml:"interval" yaml:"interval"`
}

// SpawnerConfig contains spawn point defaults and per-kind profiles
type SpawnerConfig struct {
	DefaultCap      int           `toml:"default_cap" yaml:"default_cap"`
	DefaultJitter   float64       `toml:"default_jitter" yaml:"default_jitter"`
	DefaultInterval time.Duration `toml:"default_interval" yaml:"default_interval"`

	// Profiles applied to spawn points read from the arena map, keyed by kind name
	Profiles map[string]SpawnProfile `toml:"profiles" yaml:"profiles"`
}

// CombatConfig contains collision response values
type CombatConfig struct {
	ProjectileKnockback float64       `toml:"projectile_knockback" yaml:"projectile_knockback"` // player speed after a bullet hit
	ContactKnockback    float64       `toml:"contact_knockback" yaml:"contact_knockback"`       // player speed after touching a hostile
	LightDecrement      float64       `toml:"light_decrement" yaml:"light_decrement"`           // light scale lost per hostile contact
	ShakeIntensity      float64       `toml:"shake_intensity" yaml:"shake_intensity"`
	DeathDuration       time.Duration `toml:"death_duration" yaml:"death_duration"` // dead hostiles stay visible this long
}

// LightConfig contains the player's vision radius resource
type LightConfig struct {
	StartScale   float64       `toml:"start_scale" yaml:"start_scale"`
	MinScale     float64       `toml:"min_scale" yaml:"min_scale"`
	EaseDuration time.Duration `toml:"ease_duration" yaml:"ease_duration"`
}

// PhysicsConfig contains movement integration values
type PhysicsConfig struct {
	Drag     float64 `toml:"drag" yaml:"drag"` // fraction of velocity lost per second
	MaxSpeed float64 `toml:"max_speed" yaml:"max_speed"`
	CellSize int     `toml:"cell_size" yaml:"cell_size"` // resolv space cell size
}

// ArenaConfig contains the spawner map configuration
type ArenaConfig struct {
	MapPath      string  `toml:"map_path" yaml:"map_path"`
	PlayerStartX float64 `toml:"player_start_x" yaml:"player_start_x"` // used when the map has no player object
	PlayerStartY float64 `toml:"player_start_y" yaml:"player_start_y"`
}

// RoomsConfig contains the room grid configuration
type RoomsConfig struct {
	MapPath      string  `toml:"map_path" yaml:"map_path"`
	MapWidth     int     `toml:"map_width" yaml:"map_width"`   // highest room x coordinate
	MapHeight    int     `toml:"map_height" yaml:"map_height"` // highest room y coordinate
	Width        float64 `toml:"width" yaml:"width"`           // room bounds in pixels
	Height       float64 `toml:"height" yaml:"height"`
	PlayerStartX float64 `toml:"player_start_x" yaml:"player_start_x"`
	PlayerStartY float64 `toml:"player_start_y" yaml:"player_start_y"`
}

// AutopilotConfig contains the headless stand-in for player input
type AutopilotConfig struct {
	Enabled       bool          `toml:"enabled" yaml:"enabled"`
	FireInterval  time.Duration `toml:"fire_interval" yaml:"fire_interval"`
	BulletSpeed   float64       `toml:"bullet_speed" yaml:"bullet_speed"`
	TargetingSpan float64       `toml:"targeting_span" yaml:"targeting_span"` // max distance to a target
}

// LoopConfig contains host loop settings
type LoopConfig struct {
	TickRate    int           `toml:"tick_rate" yaml:"tick_rate"` // updates per second
	StatsPeriod time.Duration `toml:"stats_period" yaml:"stats_period"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Config holds the full game configuration
type Config struct {
	Kinds     map[string]KindConfig `toml:"kinds" yaml:"kinds"`
	Spawner   SpawnerConfig         `toml:"spawner" yaml:"spawner"`
	Combat    CombatConfig          `toml:"combat" yaml:"combat"`
	Light     LightConfig           `toml:"light" yaml:"light"`
	Physics   PhysicsConfig         `toml:"physics" yaml:"physics"`
	Arena     ArenaConfig           `toml:"arena" yaml:"arena"`
	Rooms     RoomsConfig           `toml:"rooms" yaml:"rooms"`
	Autopilot AutopilotConfig       `toml:"autopilot" yaml:"autopilot"`
	Loop      LoopConfig            `toml:"loop" yaml:"loop"`
	Logging   LoggingConfig         `toml:"logging" yaml:"logging"`
}

// Global configuration instances
var C *Config
var Kinds map[Kind]KindConfig
var Spawner SpawnerConfig
var Combat CombatConfig
var Light LightConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Rooms RoomsConfig
var Autopilot AutopilotConfig
var Loop LoopConfig
var Logging LoggingConfig

// KindOf returns the tuning for k, zero values if k has none.
func KindOf(k Kind) KindConfig {
	return Kinds[k]
}

// ProfileOf returns the spawn profile for k, falling back to the spawner defaults.
func ProfileOf(k Kind) SpawnProfile {
	if p, ok := Spawner.Profiles[k.String()]; ok {
		return p
	}
	return SpawnProfile{
		Cap:      Spawner.DefaultCap,
		Jitter:   Spawner.DefaultJitter,
		Interval: Spawner.DefaultInterval,
	}
}

func init() {
	Apply(Default())
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Kinds: map[string]KindConfig{
			"player": {
				Health: 10,
				Speed:  120,
				Width:  12,
				Height: 12,
			},
			"slime": {
				Health: 2,
				Speed:  40,
				Width:  12,
				Height: 10,
			},
			"cube": {
				Health: 6,
				Speed:  25,
				Width:  16,
				Height: 16,
			},
			"orb": {
				Health:       3,
				Speed:        30,
				Width:        12,
				Height:       12,
				FireInterval: 1500 * time.Millisecond,
				BulletSpeed:  90,
				KeepDistance: 80,
			},
			"bullet": {
				Damage: 1,
				Width:  4,
				Height: 4,
			},
			"enemyBullet": {
				Damage: 1,
				Width:  4,
				Height: 4,
			},
			"solidStone": {
				Width:  8,
				Height: 8,
			},
			"wall": {
				Width:  16,
				Height: 16,
			},
		},
		Spawner: SpawnerConfig{
			DefaultCap:      5,
			DefaultJitter:   10,
			DefaultInterval: time.Second,
			Profiles: map[string]SpawnProfile{
				"slime": {Cap: 6, Jitter: 50, Interval: 2 * time.Second},
				"cube":  {Cap: 1, Jitter: 10, Interval: 2 * time.Second},
				"orb":   {Cap: 1, Jitter: 10, Interval: 5 * time.Second},
			},
		},
		Combat: CombatConfig{
			ProjectileKnockback: 50,
			ContactKnockback:    300,
			LightDecrement:      0.02,
			ShakeIntensity:      10,
			DeathDuration:       500 * time.Millisecond,
		},
		Light: LightConfig{
			StartScale:   1.0,
			MinScale:     0,
			EaseDuration: 250 * time.Millisecond,
		},
		Physics: PhysicsConfig{
			Drag:     4.0,
			MaxSpeed: 400,
			CellSize: 16,
		},
		Arena: ArenaConfig{
			MapPath:      "levels/arena.tmx",
			PlayerStartX: 200,
			PlayerStartY: 100,
		},
		Rooms: RoomsConfig{
			MapPath:      "levels/rooms.tmx",
			MapWidth:     4,
			MapHeight:    4,
			Width:        128,
			Height:       96,
			PlayerStartX: 16,
			PlayerStartY: 32,
		},
		Autopilot: AutopilotConfig{
			Enabled:       true,
			FireInterval:  400 * time.Millisecond,
			BulletSpeed:   200,
			TargetingSpan: 160,
		},
		Loop: LoopConfig{
			TickRate:    60,
			StatsPeriod: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Apply installs c into the package-level configuration.
// Kind entries with unknown names are ignored; Load rejects them earlier.
func Apply(c *Config) {
	C = c
	Kinds = make(map[Kind]KindConfig, len(c.Kinds))
	for name, kc := range c.Kinds {
		if k, err := ParseKind(name); err == nil {
			Kinds[k] = kc
		}
	}
	Spawner = c.Spawner
	Combat = c.Combat
	Light = c.Light
	Physics = c.Physics
	Arena = c.Arena
	Rooms = c.Rooms
	Autopilot = c.Autopilot
	Loop = c.Loop
	Logging = c.Logging
}
