package state

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties lists all tiers in ascending order. The order matters: the
// suggestion generator breaks ties by taking the first maximum in this order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	default:
		return false
	}
}

type ItemType string

const (
	ItemHair       ItemType = "hair"
	ItemFace       ItemType = "face"
	ItemBody       ItemType = "body"
	ItemAccessory  ItemType = "accessory"
	ItemBackground ItemType = "background"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemHair, ItemFace, ItemBody, ItemAccessory, ItemBackground:
		return true
	default:
		return false
	}
}

type RewardType string

const RewardBadge RewardType = "badge"

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Deadline    time.Time  `json:"deadline"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Reward is an immutable catalog entry; granted rewards are copied into
// User.Rewards by value.
type Reward struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	XPValue     int        `json:"xpValue"`
	CoinValue   int        `json:"coinValue"`
	Type        RewardType `json:"type"`
	IconURL     string     `json:"iconUrl"`
}

type AvatarItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	ImageURL    string   `json:"imageUrl"`
	UnlockLevel int      `json:"unlockLevel"`
	Unlocked    bool     `json:"unlocked"`
	Equipped    bool     `json:"equipped"`
}

type Avatar struct {
	Items []AvatarItem `json:"items"`
	Level int          `json:"level"`
}

type User struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Avatar          Avatar     `json:"avatar"`
	XP              int        `json:"xp"`
	Coins           int        `json:"coins"`
	Level           int        `json:"level"`
	CompletedTasks  int        `json:"completedTasks"`
	Rewards         []Reward   `json:"rewards"`
	StreakDays      int        `json:"streakDays"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

type Challenge struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetCount  int       `json:"targetCount"`
	CurrentCount int       `json:"currentCount"`
	Completed    bool      `json:"completed"`
	Deadline     time.Time `json:"deadline"`
	Reward       Reward    `json:"reward"`
}
