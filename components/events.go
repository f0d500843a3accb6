package components

import "github.com/automoto/archer-arena/shared/gamemath"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShot EventKind = iota
	EventWeakShot
	EventSpecialShot
	EventHit
	EventKill
	EventActorDown
	EventDash
	EventExplosion
	EventStomp
	EventLevelUp
	EventUpgrade
	EventWaveStart
	EventWaveComplete
	EventGameOver
)

var eventNames = [...]string{
	EventShot:         "shot",
	EventWeakShot:     "weak_shot",
	EventSpecialShot:  "special_shot",
	EventHit:          "hit",
	EventKill:         "kill",
	EventActorDown:    "actor_down",
	EventDash:         "dash",
	EventExplosion:    "explosion",
	EventStomp:        "stomp",
	EventLevelUp:      "level_up",
	EventUpgrade:      "upgrade",
	EventWaveStart:    "wave_start",
	EventWaveComplete: "wave_complete",
	EventGameOver:     "game_over",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a renderer/audio/network hint. It never feeds back into the
// simulation.
type Event struct {
	Kind     EventKind
	SourceID ID // Shooter, attacker or owner
	TargetID ID
	Pos      gamemath.Vec2
	Amount   float64 // Damage, XP, level or wave number depending on Kind
}
