package tags

import "github.com/yohamta/donburi"

// Tags for entities mirrored into the network world
var (
	Actor      = donburi.NewTag().SetName("Actor")
	Projectile = donburi.NewTag().SetName("Projectile")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Effect     = donburi.NewTag().SetName("Effect")
	Match      = donburi.NewTag().SetName("Match")
)
