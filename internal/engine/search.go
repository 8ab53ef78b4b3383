package engine

import (
	"github.com/sahilm/fuzzy"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

type taskTitles []state.Task

func (t taskTitles) String(i int) string { return t[i].Title }
func (t taskTitles) Len() int            { return len(t) }

// SearchTasks fuzzy-matches the query against task titles and returns the
// matching tasks ordered by match score. An empty query returns everything.
func (s *Service) SearchTasks(query string) []state.Task {
	tasks := s.Tasks()
	if query == "" {
		return tasks
	}

	matches := fuzzy.FindFrom(query, taskTitles(tasks))
	out := make([]state.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, tasks[m.Index])
	}
	return out
}
