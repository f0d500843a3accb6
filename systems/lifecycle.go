package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/systems/factory"
)

// Score awarded to an archer for downing another in PvP.
const pvpKillScore = 100

// UpdateDeaths removes dead enemies, credits their killers, marks downed
// actors, runs level-ups and decides whether the match is over.
func UpdateDeaths(s *components.State) {
	removeDeadEnemies(s)
	markDownedActors(s)
	checkLevelUps(s)
	checkGameOver(s)
}

func removeDeadEnemies(s *components.State) {
	if len(s.Enemies) == 0 {
		return
	}
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Health > 0 {
			kept = append(kept, e)
			continue
		}
		s.Score += e.Value
		s.Emit(components.Event{Kind: components.EventKill, SourceID: e.LastHitBy, TargetID: e.ID, Pos: e.Pos, Amount: float64(e.Value)})

		killer := s.Actor(e.LastHitBy)
		if killer == nil {
			continue
		}
		killer.Score += e.Value
		killer.Kills++
		if s.Rules.Progression.Enabled {
			killer.XP += e.XPValue * killer.XPMultiplier
		}
	}
	clear(s.Enemies[len(kept):])
	s.Enemies = kept
}

func markDownedActors(s *components.State) {
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.IsDead || a.Health > 0 {
			continue
		}
		a.IsDead = true
		a.Health = 0
		a.Vel = a.Vel.Scale(0)
		a.IsDrawingBow = false
		a.DrawStartTime = 0
		a.IsChargingSpecial = false
		a.IsDashing = false
		a.AnimationState = components.AnimDeath
		s.Emit(components.Event{Kind: components.EventActorDown, SourceID: a.LastHitBy, TargetID: a.ID, Pos: a.Pos})

		if s.Mode == config.ModePvP {
			if killer := s.Actor(a.LastHitBy); killer != nil && killer.ID != a.ID {
				killer.Kills++
				killer.Score += pvpKillScore
			}
		}
	}
}

// checkLevelUps drains XP for living actors over their threshold and hands
// out one upgrade per level gained. Bots take their first offer on the spot;
// a human pauses the match until ApplyUpgrade is called, once per level.
func checkLevelUps(s *components.State) {
	if !s.Rules.Progression.Enabled || s.IsLevelingUp {
		return
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		if !a.Alive() {
			continue
		}
		if a.XPToNextLevel > 0 && a.XP >= a.XPToNextLevel {
			a.PendingUpgrades += levelUp(s.Rules.Progression, a)
			s.Emit(components.Event{Kind: components.EventLevelUp, SourceID: a.ID, Pos: a.Pos, Amount: float64(a.Level)})
		}

		for a.PendingUpgrades > 0 {
			offers := rollUpgrades(s, a)
			if len(offers) == 0 {
				// everything is maxed out
				a.PendingUpgrades = 0
				break
			}
			if a.IsBot() {
				applyUpgradeTo(s, a, offers[0])
				a.PendingUpgrades--
				continue
			}
			s.IsLevelingUp = true
			s.LevelingActorID = a.ID
			s.AvailableUpgrades = offers
			return
		}
	}
}

// levelUp drains XP in whole levels and heals LevelUpHeal per level gained.
func levelUp(p config.ProgressionConfig, a *components.Actor) int {
	gained := 0
	for a.XPToNextLevel > 0 && a.XP >= a.XPToNextLevel {
		a.XP -= a.XPToNextLevel
		a.Level++
		a.XPToNextLevel = factory.XPToNextLevel(p, a.Level)
		gained++
	}
	a.Health = min(a.MaxHealth, a.Health+p.LevelUpHeal*float64(gained))
	return gained
}

func checkGameOver(s *components.State) {
	if s.IsGameOver {
		return
	}
	alive := s.AliveActors()

	switch s.Mode {
	case config.ModePvP:
		if s.StartingActors >= 2 && alive > 1 {
			return
		}
		if s.StartingActors < 2 && alive > 0 {
			return
		}
		s.Winner = 0
		if alive == 1 && s.StartingActors >= 2 {
			for i := range s.Actors {
				if s.Actors[i].Alive() {
					s.Winner = s.Actors[i].ID
				}
			}
		}
	default:
		if alive > 0 {
			return
		}
	}

	s.IsGameOver = true
	s.IsLevelingUp = false
	s.AvailableUpgrades = nil
	s.LevelingActorID = 0
	s.Emit(components.Event{Kind: components.EventGameOver, TargetID: s.Winner, Amount: float64(s.Score)})
}
