package config

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a kind name has no Kind value.
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind identifies what an actor is. Factories, spawn points and placement
// records are all keyed by it.
type Kind int

const (
	KindNone Kind = iota

	KindPlayer

	// Hostiles
	KindSlime
	KindCube
	KindOrb

	// Projectiles
	KindPlayerBullet
	KindEnemyBullet

	// Static obstacles
	KindSolidStone
	KindWall
)

// Class groups kinds by how they take part in collisions.
type Class int

const (
	ClassNone Class = iota
	ClassPlayer
	ClassHostile
	ClassPlayerProjectile
	ClassHostileProjectile
	ClassObstacle
)

// KindToName maps a Kind to the name used in map object layers and config files.
var KindToName = map[Kind]string{
	KindPlayer:       "player",
	KindSlime:        "slime",
	KindCube:         "cube",
	KindOrb:          "orb",
	KindPlayerBullet: "bullet",
	KindEnemyBullet:  "enemyBullet",
	KindSolidStone:   "solidStone",
	KindWall:         "wall",
}

var nameToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(KindToName))
	for k, name := range KindToName {
		m[name] = k
	}
	return m
}()

var kindToClass = map[Kind]Class{
	KindPlayer:       ClassPlayer,
	KindSlime:        ClassHostile,
	KindCube:         ClassHostile,
	KindOrb:          ClassHostile,
	KindPlayerBullet: ClassPlayerProjectile,
	KindEnemyBullet:  ClassHostileProjectile,
	KindSolidStone:   ClassObstacle,
	KindWall:         ClassObstacle,
}

// ParseKind returns the Kind registered under name.
func ParseKind(name string) (Kind, error) {
	k, ok := nameToKind[name]
	if !ok {
		return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func (k Kind) String() string {
	if name, ok := KindToName[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Class returns the collision class of the kind, ClassNone if it has none.
func (k Kind) Class() Class {
	return kindToClass[k]
}

func (c Class) String() string {
	switch c {
	case ClassPlayer:
		return "player"
	case ClassHostile:
		return "hostile"
	case ClassPlayerProjectile:
		return "player-projectile"
	case ClassHostileProjectile:
		return "hostile-projectile"
	case ClassObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// IsProjectile reports whether the class is fired by someone.
func (c Class) IsProjectile() bool {
	return c == ClassPlayerProjectile || c == ClassHostileProjectile
}
