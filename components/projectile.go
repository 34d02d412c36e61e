package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Owner  donburi.Entity // weak, may already be gone
	Damage int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
