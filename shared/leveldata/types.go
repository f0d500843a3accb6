// Package leveldata provides TMX arena parsing shared between the local
// client, the dedicated server and the simulation CLI.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// ArenaData holds everything the simulation needs from a TMX arena file.
type ArenaData struct {
	Name        string
	Walls       []SolidRect
	Pillars     []Pillar
	SpawnPoints []SpawnPoint
	Width       int
	Height      int
}

// SolidRect represents an axis-aligned wall.
type SolidRect struct {
	X, Y, W, H float64
}

// Pillar represents a round obstacle.
type Pillar struct {
	X, Y   float64 // Center
	Radius float64
}

// SpawnPoint represents an actor spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
