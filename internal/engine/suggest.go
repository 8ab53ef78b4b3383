package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

// Suggestions derives candidate tasks from completion history. Read-only:
// suggestions carry fresh ids, are never persisted, and only become real
// tasks when a caller feeds one back through CreateTask.
func (s *Service) Suggestions() []state.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	counts := map[state.Difficulty]int{}
	completed := 0
	for i := range s.st.Tasks {
		if s.st.Tasks[i].Completed {
			counts[s.st.Tasks[i].Difficulty]++
			completed++
		}
	}

	if completed == 0 {
		// Fixed onboarding pair for brand-new users.
		return []state.Task{
			{
				ID:          uuid.NewString(),
				Title:       "Set up your daily goals",
				Description: "Plan your day by listing important tasks",
				Difficulty:  state.DifficultyEasy,
				Deadline:    now.AddDate(0, 0, 1),
				CreatedAt:   now,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Complete your first task",
				Description: "Start your productivity journey by completing one task",
				Difficulty:  state.DifficultyEasy,
				Deadline:    now.AddDate(0, 0, 1),
				CreatedAt:   now,
			},
		}
	}

	// Most common tier wins; ties go to the first maximum in ascending
	// enumeration order.
	preferred := state.DifficultyEasy
	maxCount := 0
	for _, d := range state.Difficulties {
		if counts[d] > maxCount {
			maxCount = counts[d]
			preferred = d
		}
	}

	return []state.Task{
		{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Suggested %s task", preferred),
			Description: fmt.Sprintf("A task based on your preference for %s difficulty tasks", preferred),
			Difficulty:  preferred,
			Deadline:    now.AddDate(0, 0, 2),
			CreatedAt:   now,
		},
	}
}
