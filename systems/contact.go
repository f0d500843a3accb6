package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// UpdateContacts lets every enemy whose attack cooldown has elapsed hit the
// first overlapping actor, then resets that enemy's cooldown.
func UpdateContacts(s *components.State) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Health <= 0 || e.AttackCooldown > 0 {
			continue
		}
		for j := range s.Actors {
			a := &s.Actors[j]
			if !a.Alive() || !gamemath.CirclesOverlap(e.Pos, e.Radius, a.Pos, a.Radius) {
				continue
			}
			if damageActor(s, a, e.Damage, e.ID) {
				e.AttackCooldown = e.ContactCooldown
				break
			}
		}
	}
}
