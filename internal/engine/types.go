package engine

import (
	"strings"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

// ParseDifficulty parses user input to a Difficulty.
// Supported: easy, medium, hard, expert (plus one-letter shorthands).
func ParseDifficulty(input string) (state.Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "easy", "e":
		return state.DifficultyEasy, nil
	case "medium", "med", "m":
		return state.DifficultyMedium, nil
	case "hard", "h":
		return state.DifficultyHard, nil
	case "expert", "x":
		return state.DifficultyExpert, nil
	default:
		return "", ValidationError{Field: "difficulty", Reason: "must be one of easy|medium|hard|expert"}
	}
}
