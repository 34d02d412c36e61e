// Package assets embeds the bundled TMX maps.
package assets

import (
	"embed"
	"io/fs"
	"os"

	"github.com/automoto/gladiator/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded maps rooted above levels/, so paths read
// "levels/arena.tmx".
func Levels() fs.FS {
	return levelFS
}

// FS returns dir on disk when set, the embedded maps otherwise.
func FS(dir string) fs.FS {
	if dir == "" {
		return levelFS
	}
	return os.DirFS(dir)
}

// LevelLoader loads maps from one file system.
type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) LoadArena(path string) (*leveldata.ArenaData, error) {
	return leveldata.LoadArena(l.fsys, path)
}

func (l *LevelLoader) LoadRoomMap(path string) (*leveldata.RoomMap, error) {
	return leveldata.LoadRoomMap(l.fsys, path)
}
