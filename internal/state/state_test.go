package state

import (
	"testing"
	"time"
)

func TestGrantRewardDeduplicates(t *testing.T) {
	s := Seed(time.Now())

	if !s.GrantReward(FirstTaskBadge()) {
		t.Fatalf("first grant refused")
	}
	if s.GrantReward(FirstTaskBadge()) {
		t.Fatalf("duplicate grant accepted")
	}
	if len(s.User.Rewards) != 1 {
		t.Fatalf("rewards=%d, want 1", len(s.User.Rewards))
	}
}

func TestTaskIndexSurvivesRemoval(t *testing.T) {
	s := Seed(time.Now())
	s.AddTask(Task{ID: "a", Title: "A", Difficulty: DifficultyEasy})
	s.AddTask(Task{ID: "b", Title: "B", Difficulty: DifficultyMedium})
	s.AddTask(Task{ID: "c", Title: "C", Difficulty: DifficultyHard})

	if !s.RemoveTask("b") {
		t.Fatalf("remove failed")
	}
	if s.RemoveTask("b") {
		t.Fatalf("double remove succeeded")
	}
	if s.Task("b") != nil {
		t.Fatalf("removed task still indexed")
	}
	if got := s.Task("c"); got == nil || got.Title != "C" {
		t.Fatalf("index stale after removal: %+v", got)
	}
	if got := s.CompletedTaskCount(); got != 0 {
		t.Fatalf("completed count=%d, want 0", got)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := Seed(time.Now())
	s.AddTask(Task{ID: "a", Title: "A", Difficulty: DifficultyEasy})

	u := s.UserCopy()
	u.Avatar.Items[0].Equipped = false
	u.Coins = 999
	if !s.User.Avatar.Items[0].Equipped {
		t.Fatalf("snapshot mutation leaked into avatar state")
	}
	if s.User.Coins == 999 {
		t.Fatalf("snapshot mutation leaked into profile")
	}

	tasks := s.TasksCopy()
	tasks[0].Title = "changed"
	if s.Tasks[0].Title != "A" {
		t.Fatalf("snapshot mutation leaked into tasks")
	}

	cs := s.ChallengesCopy()
	cs[0].CurrentCount = 42
	if s.Challenges[0].CurrentCount == 42 {
		t.Fatalf("snapshot mutation leaked into challenges")
	}
}

func TestSeedCatalog(t *testing.T) {
	s := Seed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	if len(s.User.Avatar.Items) != 5 {
		t.Fatalf("avatar items=%d, want 5", len(s.User.Avatar.Items))
	}
	perType := map[ItemType]int{}
	for _, item := range s.User.Avatar.Items {
		if !item.Type.IsValid() {
			t.Fatalf("invalid item type %q", item.Type)
		}
		if item.Equipped {
			perType[item.Type]++
			if !item.Unlocked {
				t.Fatalf("seed equips locked item %s", item.ID)
			}
		}
	}
	for typ, n := range perType {
		if n != 1 {
			t.Fatalf("%d %s items equipped in seed, want 1", n, typ)
		}
	}

	c := s.Challenges[0]
	if c.TargetCount != 5 || c.CurrentCount != 0 || c.Completed {
		t.Fatalf("starter challenge=%+v", c)
	}
	want := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	if !c.Deadline.Equal(want) {
		t.Fatalf("challenge deadline=%v, want %v", c.Deadline, want)
	}
}
