package messages

import "github.com/automoto/archer-arena/components"

// GameEvent is broadcast for every simulation event so clients can play
// sounds and spawn VFX. Kind is the event's string name ("hit", "kill", ...).
type GameEvent struct {
	Kind     string
	SourceID uint32
	TargetID uint32
	X, Y     float64
	Amount   float64
	Tick     uint64
}

// NewGameEvent converts a simulation event produced during tick.
func NewGameEvent(e components.Event, tick uint64) GameEvent {
	return GameEvent{
		Kind:     e.Kind.String(),
		SourceID: uint32(e.SourceID),
		TargetID: uint32(e.TargetID),
		X:        e.Pos.X,
		Y:        e.Pos.Y,
		Amount:   e.Amount,
		Tick:     tick,
	}
}

// MatchOver is broadcast once when a match ends, before the server restarts it.
type MatchOver struct {
	MatchID      string
	Mode         int
	Winner       uint32
	Score        int
	WavesCleared int
	Duration     float64 // Seconds
	NextMatchIn  float64 // Seconds until the restart
}
