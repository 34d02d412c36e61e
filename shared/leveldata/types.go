// Package leveldata parses the arena and room-grid TMX maps into plain data.
// It has no dependencies on donburi or resolv; scenes turn the records into
// entities.
package leveldata

import "errors"

// ErrRoomNotFound is returned for room coordinates the map has no layers for.
var ErrRoomNotFound = errors.New("leveldata: room not found")

// SolidRect is one collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// Placement is a typed object-layer record. Kind is the object's class
// (or legacy type) as written in Tiled.
type Placement struct {
	Kind string
	X, Y float64
}

// ArenaData is the single-map level: spawn points, walls and the tiles that
// send the player back to the start.
type ArenaData struct {
	Width, Height int // pixels
	Solids        []SolidRect
	Outside       []SolidRect
	Placements    []Placement

	PlayerX, PlayerY float64
	HasPlayerStart   bool
}

// RoomData is one cell of the room grid.
type RoomData struct {
	X, Y          int
	Width, Height float64 // pixels
	Solids        []SolidRect
	Placements    []Placement
}

// RoomKey names the layers of room (x, y): "<x><y>/b" for tiles and
// "<x><y>/o" for objects.
type RoomKey struct {
	X, Y int
}
