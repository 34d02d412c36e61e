package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// EntrySink collects entries created on an actor's behalf, such as the
// bullets a ranged hostile fires.
type EntrySink interface {
	AddEntry(e *donburi.Entry)
}

// RangedData drives hostiles that shoot at their target.
type RangedData struct {
	Cooldown time.Duration // time left until the next shot
	Bullets  EntrySink     // nil: the hostile cannot fire
}

var Ranged = donburi.NewComponentType[RangedData]()
