package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64 // pixels per second
	SpeedY   float64
	Drag     float64 // fraction of speed lost per second
	MaxSpeed float64 // 0 = unbounded
}

var Physics = donburi.NewComponentType[PhysicsData]()
