package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	ProjectileID uint32
	OwnerID      uint32
	IsSpecial    bool
	IsWeakShot   bool
	IsExplosive  bool
	IsFrost      bool
	IsHoming     bool
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()
