package config

// EnemyTypeConfig contains configuration for one PvE enemy type.
type EnemyTypeConfig struct {
	Name            string
	Radius          float64
	Health          float64
	Speed           float64 // px/s
	Damage          float64 // Contact damage per hit
	ContactCooldown float64 // Seconds between contact hits
	Value           int     // Score awarded on kill
	XPValue         float64

	// Spawn weighting: weight = BaseWeight + WeightPerWave*(wave-MinWave),
	// only once wave >= MinWave.
	MinWave       int
	BaseWeight    float64
	WeightPerWave float64
	MaxWeight     float64 // 0 = uncapped

	// Stomp (guardian only)
	StompRadius   float64
	StompDamage   float64 // Per second inside the stomp
	StompStun     float64
	StompCooldown float64
	StompRange    float64 // Distance at which the guardian stomps
}

// WaveConfig drives the PvE spawn scheduler.
type WaveConfig struct {
	BaseEnemies    int     // totalEnemies = BaseEnemies + EnemiesPerWave*N
	EnemiesPerWave int
	BaseSpawnDelay float64 // spawnDelay = max(MinSpawnDelay, BaseSpawnDelay - SpawnDelayStep*N)
	SpawnDelayStep float64
	MinSpawnDelay  float64
	SpawnOffset    float64 // How far outside the edge enemies appear
	HealthPerWave  float64 // Fractional health increase per wave after the first
	SpeedPerWave   float64
	MaxSpeedBonus  float64
}

// EnemyOrder fixes the iteration order of Enemies so spawn rolls are reproducible.
var EnemyOrder []string

var (
	Enemies map[string]EnemyTypeConfig
	Wave    WaveConfig
)

const (
	EnemyGrunt    = "grunt"
	EnemyScout    = "scout"
	EnemyBrute    = "brute"
	EnemyHunter   = "hunter"
	EnemyGuardian = "guardian"
)

func init() {
	EnemyOrder = []string{EnemyGrunt, EnemyScout, EnemyBrute, EnemyHunter, EnemyGuardian}

	Enemies = map[string]EnemyTypeConfig{
		EnemyGrunt: {
			Name:            EnemyGrunt,
			Radius:          15,
			Health:          30,
			Speed:           80,
			Damage:          10,
			ContactCooldown: 2.0,
			Value:           10,
			XPValue:         20,
			MinWave:         1,
			BaseWeight:      6,
			WeightPerWave:   -0.3,
			MaxWeight:       6,
		},
		EnemyScout: {
			Name:            EnemyScout,
			Radius:          11,
			Health:          15,
			Speed:           150,
			Damage:          5,
			ContactCooldown: 1.5,
			Value:           15,
			XPValue:         15,
			MinWave:         2,
			BaseWeight:      2,
			WeightPerWave:   0.3,
			MaxWeight:       4,
		},
		EnemyBrute: {
			Name:            EnemyBrute,
			Radius:          24,
			Health:          90,
			Speed:           55,
			Damage:          25,
			ContactCooldown: 2.5,
			Value:           30,
			XPValue:         50,
			MinWave:         3,
			BaseWeight:      1,
			WeightPerWave:   0.25,
			MaxWeight:       3,
		},
		EnemyHunter: {
			Name:            EnemyHunter,
			Radius:          14,
			Health:          40,
			Speed:           120,
			Damage:          15,
			ContactCooldown: 1.5,
			Value:           40,
			XPValue:         45,
			MinWave:         5,
			BaseWeight:      1,
			WeightPerWave:   0.2,
			MaxWeight:       3,
		},
		EnemyGuardian: {
			Name:            EnemyGuardian,
			Radius:          30,
			Health:          200,
			Speed:           45,
			Damage:          30,
			ContactCooldown: 3.0,
			Value:           100,
			XPValue:         120,
			MinWave:         8,
			BaseWeight:      0.5,
			WeightPerWave:   0.1,
			MaxWeight:       1.5,
			StompRadius:     90,
			StompDamage:     20,
			StompStun:       0.8,
			StompCooldown:   5,
			StompRange:      80,
		},
	}

	Wave = WaveConfig{
		BaseEnemies:    5,
		EnemiesPerWave: 2,
		BaseSpawnDelay: 2.0,
		SpawnDelayStep: 0.1,
		MinSpawnDelay:  0.2,
		SpawnOffset:    30,
		HealthPerWave:  0.1,
		SpeedPerWave:   0.02,
		MaxSpeedBonus:  0.5,
	}
}
