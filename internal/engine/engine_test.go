package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(ctx, storage.NewStore(db, log), log)
	if err != nil {
		_ = db.Close()
		t.Fatalf("new service: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func addTask(t *testing.T, svc *Service, title string, d state.Difficulty) string {
	t.Helper()
	ctx := context.Background()
	task, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:      title,
		Difficulty: d,
		Deadline:   time.Now().AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("CreateTask(%q): %v", title, err)
	}
	return task.ID
}

func TestCreateTaskValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "   ", Difficulty: state.DifficultyEasy}); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "ok", Difficulty: "nope"}); err == nil {
		t.Fatalf("expected error for invalid difficulty")
	}
	if got := len(svc.Tasks()); got != 0 {
		t.Fatalf("rejected creates left %d tasks behind", got)
	}
}

func TestFirstTaskScenario(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := addTask(t, svc, "Water the plants", state.DifficultyEasy)
	res, err := svc.CompleteTask(ctx, id)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !res.FirstTask {
		t.Fatalf("expected FirstTask=true")
	}
	if res.XPAwarded != 10 || res.CoinsAwarded != 5 {
		t.Fatalf("task payout = (%d, %d), want (10, 5)", res.XPAwarded, res.CoinsAwarded)
	}

	u := svc.UserProfile()
	// 10 task XP + 50 badge XP, still below the level-1 threshold of 100.
	if u.Level != 1 || u.XP != 60 {
		t.Fatalf("got level=%d xp=%d, want level=1 xp=60", u.Level, u.XP)
	}
	if u.Coins != 15 {
		t.Fatalf("coins=%d, want 15", u.Coins)
	}
	if u.CompletedTasks != 1 {
		t.Fatalf("completedTasks=%d, want 1", u.CompletedTasks)
	}
	if len(u.Rewards) != 1 || u.Rewards[0].Name != "First Task" {
		t.Fatalf("rewards=%v, want the First Task badge", u.Rewards)
	}

	cs := svc.Challenges()
	if len(cs) != 1 || cs[0].CurrentCount != 1 {
		t.Fatalf("starter challenge count=%v, want 1", cs)
	}
}

func TestDoubleCompleteDoesNotDoubleAward(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := addTask(t, svc, "Read a chapter", state.DifficultyMedium)
	if _, err := svc.CompleteTask(ctx, id); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	before := svc.UserProfile()

	res, err := svc.CompleteTask(ctx, id)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if !res.AlreadyCompleted {
		t.Fatalf("expected AlreadyCompleted on second call")
	}

	after := svc.UserProfile()
	if after.XP != before.XP || after.Coins != before.Coins || after.CompletedTasks != before.CompletedTasks {
		t.Fatalf("second complete changed profile: %+v → %+v", before, after)
	}
	if got := svc.Challenges()[0].CurrentCount; got != 1 {
		t.Fatalf("challenge count=%d, want 1", got)
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.CompleteTask(context.Background(), "missing")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
	if nf.Kind != "task" {
		t.Fatalf("kind=%q, want task", nf.Kind)
	}
}

func TestDeleteTaskKeepsRewards(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := addTask(t, svc, "One-off errand", state.DifficultyEasy)
	if _, err := svc.CompleteTask(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	before := svc.UserProfile()

	if err := svc.DeleteTask(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(svc.Tasks()); got != 0 {
		t.Fatalf("tasks left after delete: %d", got)
	}

	after := svc.UserProfile()
	if after.XP != before.XP || after.Coins != before.Coins || after.CompletedTasks != before.CompletedTasks || len(after.Rewards) != len(before.Rewards) {
		t.Fatalf("delete reversed rewards: %+v → %+v", before, after)
	}

	var nf NotFoundError
	if err := svc.DeleteTask(ctx, id); !errors.As(err, &nf) {
		t.Fatalf("second delete err=%v, want NotFoundError", err)
	}
}

func TestChallengeCompletesExactlyOnce(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	var lastRes *CompleteResult
	for i := 0; i < 5; i++ {
		id := addTask(t, svc, "Chore", state.DifficultyEasy)
		res, err := svc.CompleteTask(ctx, id)
		if err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
		lastRes = res
	}

	if len(lastRes.ChallengesCompleted) != 1 || lastRes.ChallengesCompleted[0] != "Task Master" {
		t.Fatalf("ChallengesCompleted=%v, want [Task Master]", lastRes.ChallengesCompleted)
	}

	c := svc.Challenges()[0]
	if !c.Completed || c.CurrentCount != c.TargetCount {
		t.Fatalf("challenge=%+v, want completed at target", c)
	}

	u := svc.UserProfile()
	// 5*10 task XP + 50 badge + 100 challenge = 200; threshold(1)=100 → level 2 with 100 left.
	if u.Level != 2 || u.XP != 100 {
		t.Fatalf("got level=%d xp=%d, want level=2 xp=100", u.Level, u.XP)
	}
	// 5*5 + 10 badge + 50 challenge.
	if u.Coins != 85 {
		t.Fatalf("coins=%d, want 85", u.Coins)
	}

	grants := 0
	for _, r := range u.Rewards {
		if r.ID == c.Reward.ID {
			grants++
		}
	}
	if grants != 1 {
		t.Fatalf("challenge reward granted %d times, want 1", grants)
	}

	// A sixth completion must not move or re-pay the finished challenge.
	id := addTask(t, svc, "Chore six", state.DifficultyEasy)
	if _, err := svc.CompleteTask(ctx, id); err != nil {
		t.Fatalf("sixth complete: %v", err)
	}
	c = svc.Challenges()[0]
	if c.CurrentCount != c.TargetCount {
		t.Fatalf("completed challenge advanced to %d", c.CurrentCount)
	}
	u = svc.UserProfile()
	grants = 0
	for _, r := range u.Rewards {
		if r.ID == c.Reward.ID {
			grants++
		}
	}
	if grants != 1 {
		t.Fatalf("challenge reward granted %d times after extra completion", grants)
	}
}

func TestJoinAndCompleteChallengeAreAcks(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	before := svc.Challenges()[0]
	if err := svc.JoinChallenge(ctx, before.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.CompleteChallenge(ctx, before.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	after := svc.Challenges()[0]
	if after.CurrentCount != before.CurrentCount || after.Completed != before.Completed {
		t.Fatalf("ack commands changed challenge state: %+v → %+v", before, after)
	}

	var nf NotFoundError
	if err := svc.JoinChallenge(ctx, "missing"); !errors.As(err, &nf) {
		t.Fatalf("join unknown err=%v, want NotFoundError", err)
	}
}

func TestUnlockGatedByLevelRegardlessOfCoins(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	svc.st.User.Level = 2
	svc.st.User.Coins = 10_000

	if svc.UnlockItem(ctx, "hair-2") {
		t.Fatalf("unlock succeeded below required level")
	}
	u := svc.UserProfile()
	if u.Coins != 10_000 {
		t.Fatalf("coins changed on failed unlock: %d", u.Coins)
	}
	if item := findItem(u, "hair-2"); item == nil || item.Unlocked {
		t.Fatalf("item state changed on failed unlock: %+v", item)
	}
}

func TestUnlockGatedByCoinsAtSufficientLevel(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// hair-2 requires level 3 and costs 3*50 = 150.
	svc.st.User.Level = 3
	svc.st.User.Coins = 149

	if svc.UnlockItem(ctx, "hair-2") {
		t.Fatalf("unlock succeeded with insufficient coins")
	}
	u := svc.UserProfile()
	if u.Coins != 149 {
		t.Fatalf("coins changed on failed unlock: %d", u.Coins)
	}
	if item := findItem(u, "hair-2"); item == nil || item.Unlocked {
		t.Fatalf("item state changed on failed unlock: %+v", item)
	}
}

func TestUnlockDeductsCost(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	svc.st.User.Level = 3
	svc.st.User.Coins = 200

	if !svc.UnlockItem(ctx, "hair-2") {
		t.Fatalf("unlock failed at sufficient level and balance")
	}
	u := svc.UserProfile()
	if u.Coins != 50 {
		t.Fatalf("coins=%d, want 50 (cost 3*50)", u.Coins)
	}
	if item := findItem(u, "hair-2"); item == nil || !item.Unlocked {
		t.Fatalf("item not unlocked: %+v", item)
	}

	// Unlocking again is a no-op, coins untouched.
	if svc.UnlockItem(ctx, "hair-2") {
		t.Fatalf("second unlock reported success")
	}
	if got := svc.UserProfile().Coins; got != 50 {
		t.Fatalf("coins=%d after repeated unlock, want 50", got)
	}
}

func TestEquipKeepsOnePerType(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Locked items cannot be equipped.
	if svc.EquipItem(ctx, "hair-2") {
		t.Fatalf("equipped a locked item")
	}

	svc.st.User.Level = 3
	svc.st.User.Coins = 150
	if !svc.UnlockItem(ctx, "hair-2") {
		t.Fatalf("unlock failed")
	}
	if !svc.EquipItem(ctx, "hair-2") {
		t.Fatalf("equip failed")
	}

	u := svc.UserProfile()
	equippedHair := 0
	for _, item := range u.Avatar.Items {
		if item.Type != state.ItemHair {
			continue
		}
		if item.Equipped {
			equippedHair++
			if item.ID != "hair-2" {
				t.Fatalf("wrong hair equipped: %s", item.ID)
			}
		}
	}
	if equippedHair != 1 {
		t.Fatalf("%d hair items equipped, want exactly 1", equippedHair)
	}

	// Other slots are untouched.
	if item := findItem(u, "face-1"); item == nil || !item.Equipped {
		t.Fatalf("face slot disturbed: %+v", item)
	}
}

func TestStreakDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	complete := func() {
		id := addTask(t, svc, "Daily thing", state.DifficultyEasy)
		if _, err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	complete()
	complete() // same day, streak unchanged
	if got := svc.UserProfile().StreakDays; got != 1 {
		t.Fatalf("streak=%d after day one, want 1", got)
	}

	day = day.AddDate(0, 0, 1)
	complete()
	if got := svc.UserProfile().StreakDays; got != 2 {
		t.Fatalf("streak=%d after consecutive day, want 2", got)
	}

	day = day.AddDate(0, 0, 3)
	complete()
	if got := svc.UserProfile().StreakDays; got != 1 {
		t.Fatalf("streak=%d after a gap, want 1", got)
	}
}

func TestSuggestionsBootstrapPair(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	// An open task must not count as history.
	addTask(t, svc, "Still open", state.DifficultyHard)

	got := svc.Suggestions()
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	for _, s := range got {
		if s.Difficulty != state.DifficultyEasy {
			t.Fatalf("bootstrap suggestion difficulty=%s, want easy", s.Difficulty)
		}
	}
	if got[0].Title == got[1].Title {
		t.Fatalf("bootstrap suggestions are not distinct")
	}
	if len(svc.Tasks()) != 1 {
		t.Fatalf("suggestions were persisted")
	}
}

func TestSuggestionsPreferredDifficulty(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		id := addTask(t, svc, "Gym", state.DifficultyMedium)
		if _, err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}
	id := addTask(t, svc, "Dishes", state.DifficultyEasy)
	if _, err := svc.CompleteTask(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got := svc.Suggestions()
	if len(got) != 1 || got[0].Difficulty != state.DifficultyMedium {
		t.Fatalf("suggestions=%v, want one medium suggestion", got)
	}
}

func TestSuggestionsTieBreaksToEasierTier(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for _, d := range []state.Difficulty{state.DifficultyExpert, state.DifficultyEasy} {
		id := addTask(t, svc, "Tied", d)
		if _, err := svc.CompleteTask(ctx, id); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	got := svc.Suggestions()
	if len(got) != 1 || got[0].Difficulty != state.DifficultyEasy {
		t.Fatalf("suggestions=%v, want the easier tier to win the tie", got)
	}
}

func TestSearchTasks(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	addTask(t, svc, "Write the quarterly report", state.DifficultyHard)
	addTask(t, svc, "Water the plants", state.DifficultyEasy)

	got := svc.SearchTasks("report")
	if len(got) != 1 || got[0].Title != "Write the quarterly report" {
		t.Fatalf("search=%v, want only the report task", got)
	}

	if got := svc.SearchTasks(""); len(got) != 2 {
		t.Fatalf("empty query returned %d tasks, want 2", len(got))
	}
}

func findItem(u state.User, id string) *state.AvatarItem {
	for i := range u.Avatar.Items {
		if u.Avatar.Items[i].ID == id {
			return &u.Avatar.Items[i]
		}
	}
	return nil
}
