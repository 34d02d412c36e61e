package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AutopilotData replaces keyboard input on headless hosts.
type AutopilotData struct {
	Cooldown time.Duration
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
