package leveldata

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	arenaSolidLayer   = "solid"
	arenaOutsideLayer = "outside"
	arenaEntityGroup  = "entities"
	playerPlacement   = "player"
)

// LoadArena parses the arena map. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case arenaSolidLayer:
			data.Solids = tileRects(levelMap, layer)
		case arenaOutsideLayer:
			data.Outside = tileRects(levelMap, layer)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != arenaEntityGroup {
			continue
		}
		for _, p := range placements(og) {
			// The first player object wins
			if p.Kind == playerPlacement {
				if !data.HasPlayerStart {
					data.PlayerX, data.PlayerY = p.X, p.Y
					data.HasPlayerStart = true
				}
				continue
			}
			data.Placements = append(data.Placements, p)
		}
	}

	return data, nil
}

// RoomMap is a parsed room-grid map. Rooms are looked up by coordinate.
type RoomMap struct {
	TileWidth, TileHeight int
	rooms                 map[RoomKey]*RoomData
}

// LoadRoomMap parses a map whose rooms are stored as layer pairs named
// "<x><y>/b" (tiles) and "<x><y>/o" (objects). Each room spans the whole map.
func LoadRoomMap(fsys fs.FS, tmxPath string) (*RoomMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	rm := &RoomMap{
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		rooms:      make(map[RoomKey]*RoomData),
	}
	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)

	room := func(key RoomKey) *RoomData {
		r, ok := rm.rooms[key]
		if !ok {
			r = &RoomData{X: key.X, Y: key.Y, Width: width, Height: height}
			rm.rooms[key] = r
		}
		return r
	}

	for _, layer := range levelMap.Layers {
		key, ok := parseRoomLayer(layer.Name, "b")
		if !ok {
			continue
		}
		room(key).Solids = tileRects(levelMap, layer)
	}
	for _, og := range levelMap.ObjectGroups {
		key, ok := parseRoomLayer(og.Name, "o")
		if !ok {
			continue
		}
		room(key).Placements = placements(og)
	}

	return rm, nil
}

// Room returns the room at (x, y).
func (m *RoomMap) Room(x, y int) (*RoomData, error) {
	r, ok := m.rooms[RoomKey{x, y}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, RoomKey{x, y}.layer("b"))
	}
	return r, nil
}

// Keys lists the rooms in the map, row by row.
func (m *RoomMap) Keys() []RoomKey {
	keys := make([]RoomKey, 0, len(m.rooms))
	for k := range m.rooms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

func (k RoomKey) layer(suffix string) string {
	return fmt.Sprintf("%d%d/%s", k.X, k.Y, suffix)
}

// parseRoomLayer reads "<x><y>/<suffix>" with single-digit coordinates.
func parseRoomLayer(name, suffix string) (RoomKey, bool) {
	coords, ok := strings.CutSuffix(name, "/"+suffix)
	if !ok || len(coords) != 2 {
		return RoomKey{}, false
	}
	x, y := coords[0], coords[1]
	if x < '0' || x > '9' || y < '0' || y > '9' {
		return RoomKey{}, false
	}
	return RoomKey{X: int(x - '0'), Y: int(y - '0')}, true
}

func tileRects(levelMap *tiled.Map, layer *tiled.Layer) []SolidRect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	var rects []SolidRect
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
				continue
			}
			rects = append(rects, SolidRect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: tileW,
				H: tileH,
			})
		}
	}
	return rects
}

func placements(og *tiled.ObjectGroup) []Placement {
	out := make([]Placement, 0, len(og.Objects))
	for _, o := range og.Objects {
		kind := o.Class
		if kind == "" {
			kind = o.Type //nolint:staticcheck // older maps use type=
		}
		if kind == "" {
			kind = o.Name
		}
		out = append(out, Placement{Kind: kind, X: o.X, Y: o.Y})
	}
	return out
}
