package components

import (
	cfg "github.com/automoto/gladiator/config"
	"github.com/yohamta/donburi"
)

// ActorData is shared by everything that lives in the simulation.
type ActorData struct {
	Kind    cfg.Kind
	Alive   bool    // false once killed; excluded from collisions and spawn counts
	Visible bool    // false once the entity has left the screen for good
	Angle   float64 // facing in radians
}

var Actor = donburi.NewComponentType[ActorData]()
