package components

// Wave is one batch of PvE enemies.
type Wave struct {
	Number           int // 1-based
	TotalEnemies     int
	RemainingEnemies int // Not yet spawned
	Spawned          int
	SpawnDelay       float64
	LastSpawnTime    float64
	StartTime        float64
	IsComplete       bool
}
