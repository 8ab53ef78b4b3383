package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Difficulty  state.Difficulty
	Deadline    time.Time
}

type CompleteResult struct {
	TaskID              string
	AlreadyCompleted    bool
	XPAwarded           int
	CoinsAwarded        int
	LevelBefore         int
	LevelAfter          int
	LevelUp             bool
	FirstTask           bool
	ChallengesCompleted []string // titles of challenges that finished on this completion
}

// CreateTask validates the input and appends a fresh task. No reward side
// effects happen here; everything pays out on completion.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*state.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ValidationError{Field: "title", Reason: "is required"}
	}
	if !in.Difficulty.IsValid() {
		return nil, ValidationError{Field: "difficulty", Reason: "must be one of easy|medium|hard|expert"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := state.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Difficulty:  in.Difficulty,
		Deadline:    in.Deadline,
		CreatedAt:   s.now(),
	}
	s.st.AddTask(t)
	s.log.Debug("task created", slog.String("id", t.ID), slog.String("difficulty", string(t.Difficulty)))

	s.persist(ctx)
	return &t, nil
}

// CompleteTask marks the task done and runs the whole payout chain: task
// reward, first-task badge, challenge advancement, streak upkeep and level
// resolution. Completing an already-completed task is a no-op so nothing can
// ever be awarded twice for the same task.
func (s *Service) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.st.Task(id)
	if t == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	if t.Completed {
		return &CompleteResult{TaskID: id, AlreadyCompleted: true, LevelBefore: s.st.User.Level, LevelAfter: s.st.User.Level}, nil
	}

	now := s.now()
	u := &s.st.User
	levelBefore := u.Level

	t.Completed = true
	t.CompletedAt = &now

	xp, coins := TaskReward(t.Difficulty)
	u.XP += xp
	u.Coins += coins

	// Guard the badge with the pre-increment counter. The whole operation
	// runs under the service mutex, so the stale-read hazard of the original
	// reactive implementation cannot occur.
	firstTask := u.CompletedTasks == 0
	u.CompletedTasks++
	s.updateStreak(u, now)

	if firstTask {
		badge := state.FirstTaskBadge()
		if s.st.GrantReward(badge) {
			u.XP += badge.XPValue
			u.Coins += badge.CoinValue
		}
	}

	completed := s.advanceChallenges()
	gained := ResolveLevel(u)

	res := &CompleteResult{
		TaskID:              id,
		XPAwarded:           xp,
		CoinsAwarded:        coins,
		LevelBefore:         levelBefore,
		LevelAfter:          u.Level,
		LevelUp:             gained > 0,
		FirstTask:           firstTask,
		ChallengesCompleted: completed,
	}
	s.log.Debug("task completed",
		slog.String("id", id),
		slog.Int("xp", xp),
		slog.Int("coins", coins),
		slog.Int("level", u.Level))

	s.persist(ctx)
	return res, nil
}

// DeleteTask removes the task regardless of completion state. Rewards
// already granted stay granted: deletion is not un-completing, and the
// completed-tasks counter is monotonic.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.st.RemoveTask(id) {
		return NotFoundError{Kind: "task", ID: id}
	}
	s.log.Debug("task deleted", slog.String("id", id))
	s.persist(ctx)
	return nil
}

// updateStreak counts consecutive calendar days with at least one
// completion. Same day: unchanged. Next day: +1. Any gap: back to 1.
func (s *Service) updateStreak(u *state.User, now time.Time) {
	defer func() { u.LastCompletedAt = &now }()

	if u.LastCompletedAt == nil {
		u.StreakDays = 1
		return
	}
	last := *u.LastCompletedAt
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	if ly == ny && lm == nm && ld == nd {
		return
	}
	if now.Sub(time.Date(ly, lm, ld, 0, 0, 0, 0, now.Location())) < 48*time.Hour {
		u.StreakDays++
		return
	}
	u.StreakDays = 1
}
