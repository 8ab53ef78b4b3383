package engine

import (
	"math"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

// XPCurveCoef is the coefficient in XP_next = 100 * (Level^1.5).
const XPCurveCoef = 100.0

// TaskReward returns the XP and coin payout for completing a task of the
// given difficulty. Strictly increasing with tier, so harder tasks always
// pay more than easier ones.
func TaskReward(d state.Difficulty) (xp, coins int) {
	switch d {
	case state.DifficultyMedium:
		return 25, 10
	case state.DifficultyHard:
		return 50, 20
	case state.DifficultyExpert:
		return 100, 40
	case state.DifficultyEasy:
		fallthrough
	default:
		return 10, 5
	}
}

// XPForNextLevel returns the XP required to advance past the given level.
// XP resets on every level-up, so this is a per-level threshold, not a
// cumulative total.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	req := XPCurveCoef * math.Pow(float64(level), 1.5)
	// Ceil so float rounding never makes a threshold easier.
	return int(math.Ceil(req))
}

// ResolveLevel converts surplus XP into level increases: while the user's XP
// meets the current threshold, subtract it and bump the level. Handles
// multi-level jumps from large rewards and is a no-op on an already-resolved
// profile. Returns the number of levels gained.
func ResolveLevel(u *state.User) int {
	gained := 0
	for u.XP >= XPForNextLevel(u.Level) {
		u.XP -= XPForNextLevel(u.Level)
		u.Level++
		gained++
	}
	return gained
}
