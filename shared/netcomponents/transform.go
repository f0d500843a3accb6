package netcomponents

import (
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetTransformData is the synced placement of any simulated entity.
type NetTransformData struct {
	X, Y     float64
	Rotation float64 // Radians
	Radius   float64
}

var NetTransform = donburi.NewComponentType[NetTransformData]()

// LerpNetTransform interpolates position and rotation. Rotation takes the
// short way around.
func LerpNetTransform(from, to NetTransformData, t float64) *NetTransformData {
	return &NetTransformData{
		X:        gamemath.Lerp(from.X, to.X, t),
		Y:        gamemath.Lerp(from.Y, to.Y, t),
		Rotation: gamemath.WrapAngle(from.Rotation + gamemath.WrapAngle(to.Rotation-from.Rotation)*t),
		Radius:   to.Radius,
	}
}
