package config

// UpgradeID names a permanent level-up upgrade.
type UpgradeID string

const (
	UpgradeMultishot UpgradeID = "multishot"
	UpgradePiercing  UpgradeID = "piercing"
	UpgradeRicochet  UpgradeID = "ricochet"
	UpgradeExplosive UpgradeID = "explosive"
	UpgradeFrost     UpgradeID = "frost"
	UpgradeHoming    UpgradeID = "homing"
	UpgradeDamage    UpgradeID = "damage"
	UpgradeSwiftness UpgradeID = "swiftness"
	UpgradeVitality  UpgradeID = "vitality"
	UpgradeWisdom    UpgradeID = "wisdom"
	UpgradeQuickdraw UpgradeID = "quickdraw"
	UpgradeAgility   UpgradeID = "agility"
)

// UpgradeConfig describes one upgrade and how much each stack adds.
type UpgradeConfig struct {
	ID          UpgradeID
	Name        string
	Description string
	MaxStacks   int
	Amount      float64 // Per-stack magnitude, meaning depends on the upgrade
}

// UpgradeOrder is the canonical catalogue order used when rolling offers.
var UpgradeOrder []UpgradeID

var Upgrades map[UpgradeID]UpgradeConfig

// LookupUpgrade returns the upgrade definition for id.
func LookupUpgrade(id UpgradeID) (UpgradeConfig, bool) {
	u, ok := Upgrades[id]
	return u, ok
}

func init() {
	UpgradeOrder = []UpgradeID{
		UpgradeMultishot,
		UpgradePiercing,
		UpgradeRicochet,
		UpgradeExplosive,
		UpgradeFrost,
		UpgradeHoming,
		UpgradeDamage,
		UpgradeSwiftness,
		UpgradeVitality,
		UpgradeWisdom,
		UpgradeQuickdraw,
		UpgradeAgility,
	}

	Upgrades = map[UpgradeID]UpgradeConfig{
		UpgradeMultishot: {ID: UpgradeMultishot, Name: "Multishot", Description: "+2 arrows per shot", MaxStacks: 3, Amount: 1},
		UpgradePiercing:  {ID: UpgradePiercing, Name: "Piercing", Description: "Arrows pass through one more target", MaxStacks: 3, Amount: 1},
		UpgradeRicochet:  {ID: UpgradeRicochet, Name: "Ricochet", Description: "Arrows bounce off one more wall", MaxStacks: 3, Amount: 1},
		UpgradeExplosive: {ID: UpgradeExplosive, Name: "Explosive", Description: "Arrows explode on impact", MaxStacks: 3, Amount: 20},
		UpgradeFrost:     {ID: UpgradeFrost, Name: "Frost", Description: "Arrows slow their target", MaxStacks: 1, Amount: 1},
		UpgradeHoming:    {ID: UpgradeHoming, Name: "Homing", Description: "Arrows seek the nearest target", MaxStacks: 1, Amount: 1},
		UpgradeDamage:    {ID: UpgradeDamage, Name: "Power", Description: "+15% damage", MaxStacks: 5, Amount: 0.15},
		UpgradeSwiftness: {ID: UpgradeSwiftness, Name: "Swiftness", Description: "+10% move speed", MaxStacks: 5, Amount: 0.10},
		UpgradeVitality:  {ID: UpgradeVitality, Name: "Vitality", Description: "+20 max health", MaxStacks: 5, Amount: 20},
		UpgradeWisdom:    {ID: UpgradeWisdom, Name: "Wisdom", Description: "+20% XP gain", MaxStacks: 5, Amount: 0.20},
		UpgradeQuickdraw: {ID: UpgradeQuickdraw, Name: "Quickdraw", Description: "Full draw 10% faster", MaxStacks: 4, Amount: 0.10},
		UpgradeAgility:   {ID: UpgradeAgility, Name: "Agility", Description: "Dash recharges 15% faster", MaxStacks: 4, Amount: 0.15},
	}
}
