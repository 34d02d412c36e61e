package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence.
// Remaining counts down each update; when it reaches 0 the entity turns
// invisible and becomes eligible for pruning.
type DeathData struct {
	Remaining time.Duration
}

var Death = donburi.NewComponentType[DeathData]()
