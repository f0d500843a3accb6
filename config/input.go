package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionShoot
	ActionDash
	ActionSpecial
	ActionExplosiveArrow
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input tuning.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Right stick magnitude needed before it overrides mouse aim
	AimDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		AimDeadzone:    0.4,
	}
}
