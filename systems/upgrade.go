package systems

import (
	"slices"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
)

// ApplyUpgrade resolves a pending level-up with one of the offered upgrades
// and resumes the match. An id that was not offered, or a call while no
// level-up is pending, returns an unchanged copy.
func ApplyUpgrade(prev *components.State, id config.UpgradeID) *components.State {
	next := prev.Clone()
	if !next.IsLevelingUp || !slices.Contains(next.AvailableUpgrades, id) {
		return next
	}
	a := next.Actor(next.LevelingActorID)
	if a == nil {
		return next
	}

	next.Events = nil
	applyUpgradeTo(next, a, id)
	a.PendingUpgrades = max(a.PendingUpgrades-1, 0)
	next.IsLevelingUp = false
	next.LevelingActorID = 0
	next.AvailableUpgrades = nil

	// Re-offers for levels still owed, then for any other actor that
	// crossed its threshold on the same tick.
	checkLevelUps(next)
	return next
}

// rollUpgrades offers up to OfferCount distinct upgrades the actor can still
// stack, drawn from the match RNG.
func rollUpgrades(s *components.State, a *components.Actor) []config.UpgradeID {
	var pool []config.UpgradeID
	for _, id := range config.UpgradeOrder {
		u, ok := config.LookupUpgrade(id)
		if !ok || a.Upgrades[id] >= u.MaxStacks {
			continue
		}
		pool = append(pool, id)
	}

	r := s.Rand()
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := min(s.Rules.Progression.OfferCount, len(pool))
	return pool[:n:n]
}

func applyUpgradeTo(s *components.State, a *components.Actor, id config.UpgradeID) {
	u, ok := config.LookupUpgrade(id)
	if !ok {
		return
	}
	if a.Upgrades == nil {
		a.Upgrades = make(map[config.UpgradeID]int)
	}
	if a.Upgrades[id] >= u.MaxStacks {
		return
	}
	a.Upgrades[id]++

	switch id {
	case config.UpgradeMultishot:
		a.MultiShotLevel++
	case config.UpgradePiercing:
		a.Piercing++
	case config.UpgradeRicochet:
		a.Bounces++
	case config.UpgradeExplosive:
		if a.ExplosiveRadius == 0 {
			a.ExplosiveRadius = s.Rules.Projectile.ExplosionRadius
		} else {
			a.ExplosiveRadius += u.Amount
		}
	case config.UpgradeFrost:
		a.Frost = true
	case config.UpgradeHoming:
		a.Homing = true
	case config.UpgradeDamage:
		a.DamageMultiplier += u.Amount
	case config.UpgradeSwiftness:
		a.MoveSpeedMultiplier += u.Amount
	case config.UpgradeVitality:
		a.MaxHealth += u.Amount
		a.Health += u.Amount
	case config.UpgradeWisdom:
		a.XPMultiplier += u.Amount
	case config.UpgradeQuickdraw:
		a.MaxDrawTime = max(a.MinDrawTime, a.MaxDrawTime*(1-u.Amount))
	case config.UpgradeAgility:
		a.DashCooldownMultiplier *= 1 - u.Amount
	}

	s.Emit(components.Event{Kind: components.EventUpgrade, SourceID: a.ID, Amount: float64(a.Upgrades[id])})
}
