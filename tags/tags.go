package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for physics collision. Each collision class has one tag so
// overlap queries can be narrowed to the classes a rule cares about.
const (
	ResolvPlayer           = "Player"
	ResolvEnemy            = "Enemy"
	ResolvPlayerProjectile = "PlayerProjectile"
	ResolvEnemyProjectile  = "EnemyProjectile"
	ResolvSolid            = "solid"

	// ResolvOutside marks arena tiles that send the player back to the start.
	ResolvOutside = "outside"
)
