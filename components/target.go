package components

import "github.com/yohamta/donburi"

// TargetData is a weak reference: the target may be removed from the world
// at any time and must be looked up before use.
type TargetData struct {
	Entity donburi.Entity
}

var Target = donburi.NewComponentType[TargetData]()
