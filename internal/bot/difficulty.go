package bot

// Difficulty selects a move-selection strategy.
type Difficulty string

const (
	DifficultyWeak     Difficulty = "weak"
	DifficultyModerate Difficulty = "moderate"
	DifficultyStrong   Difficulty = "strong"
)

// ParseDifficulty validates a difficulty string. The original wire
// names bad/medium/best are accepted as aliases; anything unknown
// falls back to strong.
func ParseDifficulty(difficulty string) Difficulty {
	switch difficulty {
	case "weak", "bad":
		return DifficultyWeak
	case "moderate", "medium":
		return DifficultyModerate
	case "strong", "best":
		return DifficultyStrong
	default:
		return DifficultyStrong
	}
}
