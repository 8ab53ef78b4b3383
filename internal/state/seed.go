package state

import "time"

// Seed catalog. Returned values are fresh copies so callers can mutate them
// without touching package state.

// FirstTaskBadge is granted once, on the first task the user ever completes.
func FirstTaskBadge() Reward {
	return Reward{
		ID:          "badge-1",
		Name:        "First Task",
		Description: "Complete your first task",
		XPValue:     50,
		CoinValue:   10,
		Type:        RewardBadge,
		IconURL:     "/assets/rewards/badge-1.png",
	}
}

func DefaultAvatarItems() []AvatarItem {
	return []AvatarItem{
		{ID: "hair-1", Name: "Basic Hair", Type: ItemHair, ImageURL: "/assets/avatar/hair-1.png", UnlockLevel: 1, Unlocked: true, Equipped: true},
		{ID: "face-1", Name: "Basic Face", Type: ItemFace, ImageURL: "/assets/avatar/face-1.png", UnlockLevel: 1, Unlocked: true, Equipped: true},
		{ID: "body-1", Name: "Basic Body", Type: ItemBody, ImageURL: "/assets/avatar/body-1.png", UnlockLevel: 1, Unlocked: true, Equipped: true},
		{ID: "hair-2", Name: "Cool Hair", Type: ItemHair, ImageURL: "/assets/avatar/hair-2.png", UnlockLevel: 3},
		{ID: "accessory-1", Name: "Glasses", Type: ItemAccessory, ImageURL: "/assets/avatar/accessory-1.png", UnlockLevel: 5},
	}
}

func SeedUser() User {
	return User{
		ID:       "user-1",
		Username: "TaskHero",
		Avatar: Avatar{
			Items: DefaultAvatarItems(),
			Level: 1,
		},
		Level:   1,
		Rewards: []Reward{},
	}
}

func SeedChallenges(now time.Time) []Challenge {
	return []Challenge{
		{
			ID:          "challenge-1",
			Title:       "Task Master",
			Description: "Complete 5 tasks",
			TargetCount: 5,
			Deadline:    now.AddDate(0, 0, 7),
			Reward: Reward{
				ID:          "reward-taskmaster",
				Name:        "Task Master Badge",
				Description: "You are a master of tasks!",
				XPValue:     100,
				CoinValue:   50,
				Type:        RewardBadge,
				IconURL:     "/assets/rewards/taskmaster.png",
			},
		},
	}
}
