package config

// BotDifficulty affects reaction time and shot quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps "easy" / "normal" / "hard" to a BotDifficulty.
func ParseBotDifficulty(s string) (BotDifficulty, bool) {
	switch s {
	case "easy":
		return BotDifficultyEasy, true
	case "normal":
		return BotDifficultyNormal, true
	case "hard":
		return BotDifficultyHard, true
	}
	return BotDifficultyNormal, false
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	DecisionInterval float64 // Seconds between state re-evaluations
	OptimalDraw      float64 // Fraction of max draw time to release at
	ShotCooldown     float64 // Extra pause between the bot's own shots
	ActionCooldown   float64 // Movement is held steady this long after a shot or dash
	CanDash          bool
	DashChance       float64 // Chance per decision to dash away when crowded
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig

	PreferredMin float64 // Engagement band: closer than this retreats
	PreferredMax float64 // farther than this approaches
	PatrolReach  float64 // Patrol point is replaced once this close
	PatrolMargin float64 // Patrol points stay this far inside the arena
	AimDeadzone  float64 // Ignore movement components smaller than this
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		PreferredMin: 170,
		PreferredMax: 330,
		PatrolReach:  80,
		PatrolMargin: 60,
		AimDeadzone:  0.3,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				DecisionInterval: 3.0,
				OptimalDraw:      0.5,
				ShotCooldown:     1.2,
				ActionCooldown:   0.35,
				CanDash:          false,
			},
			BotDifficultyNormal: {
				DecisionInterval: 1.5,
				OptimalDraw:      0.7,
				ShotCooldown:     0.7,
				ActionCooldown:   0.25,
				CanDash:          true,
				DashChance:       0.3,
			},
			BotDifficultyHard: {
				DecisionInterval: 0.8,
				OptimalDraw:      0.85,
				ShotCooldown:     0.4,
				ActionCooldown:   0.15,
				CanDash:          true,
				DashChance:       0.6,
			},
		},
	}
}
