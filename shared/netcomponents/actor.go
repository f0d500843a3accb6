package netcomponents

import "github.com/yohamta/donburi"

// NetActorData is the discrete part of an archer's state. Placement lives in
// NetTransform.
type NetActorData struct {
	ActorID   uint32
	Name      string
	Health    float64
	MaxHealth float64
	Anim      string

	DrawRatio       float64 // 0..1 while drawing, 0 otherwise
	IsDashing       bool
	IsStunned       bool
	IsSlowed        bool
	IsInvuln        bool
	IsDead          bool
	IsBot           bool
	DashCooldown    float64
	SpecialCooldown float64

	Level         int
	XP            float64
	XPToNextLevel float64
	Score         int
	Kills         int

	LastSequence uint32 // Last input sequence the server applied
}

var NetActor = donburi.NewComponentType[NetActorData]()
