package systems

import (
	"testing"

	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyUpgradeResumesMatch(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	s.Actors[0].XP = 100
	UpdateDeaths(s)
	require.True(t, s.IsLevelingUp)
	pick := s.AvailableUpgrades[0]

	next := ApplyUpgrade(s, pick)
	assert.False(t, next.IsLevelingUp)
	assert.Empty(t, next.AvailableUpgrades)
	assert.Equal(t, 1, next.Actors[0].Upgrades[pick])

	assert.True(t, s.IsLevelingUp, "input snapshot is untouched")
	assert.Zero(t, s.Actors[0].Upgrades[pick])
}

func TestApplyUpgradeIgnoresUnofferedIDs(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	s.Actors[0].XP = 100
	UpdateDeaths(s)
	require.True(t, s.IsLevelingUp)

	offered := map[config.UpgradeID]bool{}
	for _, id := range s.AvailableUpgrades {
		offered[id] = true
	}
	var notOffered config.UpgradeID
	for _, id := range config.UpgradeOrder {
		if !offered[id] {
			notOffered = id
			break
		}
	}

	assert.Equal(t, s, ApplyUpgrade(s, "no-such-upgrade"))
	assert.Equal(t, s, ApplyUpgrade(s, notOffered))
}

func TestApplyUpgradeWithoutPendingLevelUp(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	assert.Equal(t, s, ApplyUpgrade(s, config.UpgradeDamage))
}

func TestUpgradeEffects(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	a := &s.Actors[0]

	applyUpgradeTo(s, a, config.UpgradeVitality)
	assert.InDelta(t, 120, a.MaxHealth, 1e-9)
	assert.InDelta(t, 120, a.Health, 1e-9)

	applyUpgradeTo(s, a, config.UpgradeExplosive)
	assert.InDelta(t, s.Rules.Projectile.ExplosionRadius, a.ExplosiveRadius, 1e-9)
	applyUpgradeTo(s, a, config.UpgradeExplosive)
	assert.InDelta(t, s.Rules.Projectile.ExplosionRadius+20, a.ExplosiveRadius, 1e-9)

	applyUpgradeTo(s, a, config.UpgradeQuickdraw)
	assert.InDelta(t, s.Rules.Bow.MaxDrawTime*0.9, a.MaxDrawTime, 1e-9)

	applyUpgradeTo(s, a, config.UpgradeFrost)
	applyUpgradeTo(s, a, config.UpgradeFrost)
	assert.True(t, a.Frost)
	assert.Equal(t, 1, a.Upgrades[config.UpgradeFrost], "frost does not stack")

	applyUpgradeTo(s, a, config.UpgradeMultishot)
	assert.Equal(t, 1, a.MultiShotLevel)
}

func TestRollUpgradesSkipsMaxedUpgrades(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	a := &s.Actors[0]
	for _, id := range config.UpgradeOrder {
		if id == config.UpgradeDamage || id == config.UpgradeHoming {
			continue
		}
		a.Upgrades[id] = config.Upgrades[id].MaxStacks
	}

	offers := rollUpgrades(s, a)
	assert.ElementsMatch(t, []config.UpgradeID{config.UpgradeDamage, config.UpgradeHoming}, offers)
}
