package scenes

import (
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxExtrapolation caps how far past the last snapshot an entity keeps
// moving on its own (in snapshot intervals).
const maxExtrapolation = 0.5

// NetInterpData stores interpolation state for smooth rendering of
// networked entities between server snapshots.
type NetInterpData struct {
	Prev, Target netcomponents.NetTransformData
	T            float64 // 0 at Prev, 1 at Target, >1 extrapolating
	Initialized  bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()

// Retarget starts a new interpolation from the currently drawn transform
// to next. The first snapshot is applied directly.
func (n *NetInterpData) Retarget(entry *donburi.Entry, next netcomponents.NetTransformData) {
	if !entry.HasComponent(netcomponents.NetTransform) {
		entry.AddComponent(netcomponents.NetTransform)
	}
	cur := netcomponents.NetTransform.Get(entry)

	if !n.Initialized {
		*cur = next
		n.Prev, n.Target = next, next
		n.T = 1
		n.Initialized = true
		return
	}
	n.Prev = *cur
	n.Target = next
	n.T = 0
}

// Sample returns the transform at the current T, extrapolating along vel
// once T passes 1. interval is the snapshot interval in seconds.
func (n *NetInterpData) Sample(vel *netcomponents.NetVelocityData, interval float64) netcomponents.NetTransformData {
	if n.T <= 1 {
		return *netcomponents.LerpNetTransform(n.Prev, n.Target, n.T)
	}
	out := n.Target
	if vel != nil {
		over := min(n.T-1, maxExtrapolation) * interval
		out.X += vel.VX * over
		out.Y += vel.VY * over
	}
	return out
}

// NewNetInterpSystem advances every interpolating entity by one frame.
// tickRate reports the server's snapshot rate.
func NewNetInterpSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			return
		}
		step := float64(rate) / float64(ebiten.TPS())
		interval := 1 / float64(rate)

		NetInterp.Each(e.World, func(entry *donburi.Entry) {
			n := NetInterp.Get(entry)
			if !n.Initialized || !entry.HasComponent(netcomponents.NetTransform) {
				return
			}
			n.T += step

			var vel *netcomponents.NetVelocityData
			if entry.HasComponent(netcomponents.NetVelocity) {
				vel = netcomponents.NetVelocity.Get(entry)
			}
			netcomponents.NetTransform.SetValue(entry, n.Sample(vel, interval))
		})
	}
}
