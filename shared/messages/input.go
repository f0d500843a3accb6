package messages

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
)

// PlayerInput is sent from client to server each frame with the player's input state.
type PlayerInput struct {
	Sequence  uint32                   // Incrementing ID, echoed back in NetActor.LastSequence
	Actions   map[config.ActionID]bool // Which actions are currently pressed
	Aim       float64                  // Radians
	Timestamp int64                    // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[config.ActionID]bool),
	}
}

// Input converts the pressed actions into the simulation's control vector.
func (p PlayerInput) Input() components.Input {
	return components.Input{
		Controls: components.Controls{
			Up:             p.Actions[config.ActionMoveUp],
			Down:           p.Actions[config.ActionMoveDown],
			Left:           p.Actions[config.ActionMoveLeft],
			Right:          p.Actions[config.ActionMoveRight],
			Shoot:          p.Actions[config.ActionShoot],
			Dash:           p.Actions[config.ActionDash],
			Special:        p.Actions[config.ActionSpecial],
			ExplosiveArrow: p.Actions[config.ActionExplosiveArrow],
		},
		Aim: p.Aim,
	}
}

// UpgradeChoice is sent by the leveling player to pick one of the offered upgrades.
type UpgradeChoice struct {
	UpgradeID string
}
