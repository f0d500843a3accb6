package netcomponents

import "github.com/yohamta/donburi"

type NetEffectData struct {
	EffectID uint32
	Type     string
	Life     float64 // Remaining fraction, 1 at spawn
}

var NetEffect = donburi.NewComponentType[NetEffectData]()
