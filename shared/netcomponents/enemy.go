package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	EnemyID   uint32
	TypeName  string // "grunt", "runner", etc.
	Health    float64
	MaxHealth float64
	IsSlowed  bool
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()
