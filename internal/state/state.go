package state

import "time"

// State is the single source of truth for the user profile, task collection
// and challenge collection. It is not safe for concurrent use; the engine
// service serializes access behind a mutex.
type State struct {
	User       User
	Tasks      []Task
	Challenges []Challenge

	taskIndex      map[string]int
	challengeIndex map[string]int
}

func New(user User, tasks []Task, challenges []Challenge) *State {
	s := &State{
		User:       user,
		Tasks:      tasks,
		Challenges: challenges,
	}
	s.reindex()
	return s
}

// Seed builds the initial state: seed profile, starter challenge, no tasks.
func Seed(now time.Time) *State {
	return New(SeedUser(), nil, SeedChallenges(now))
}

func (s *State) reindex() {
	s.taskIndex = make(map[string]int, len(s.Tasks))
	for i := range s.Tasks {
		s.taskIndex[s.Tasks[i].ID] = i
	}
	s.challengeIndex = make(map[string]int, len(s.Challenges))
	for i := range s.Challenges {
		s.challengeIndex[s.Challenges[i].ID] = i
	}
}

// Task returns a pointer into the task collection, or nil when the id is
// unknown. The pointer is invalidated by AddTask/RemoveTask.
func (s *State) Task(id string) *Task {
	i, ok := s.taskIndex[id]
	if !ok {
		return nil
	}
	return &s.Tasks[i]
}

func (s *State) Challenge(id string) *Challenge {
	i, ok := s.challengeIndex[id]
	if !ok {
		return nil
	}
	return &s.Challenges[i]
}

func (s *State) AvatarItem(id string) *AvatarItem {
	for i := range s.User.Avatar.Items {
		if s.User.Avatar.Items[i].ID == id {
			return &s.User.Avatar.Items[i]
		}
	}
	return nil
}

func (s *State) AddTask(t Task) {
	s.Tasks = append(s.Tasks, t)
	s.taskIndex[t.ID] = len(s.Tasks) - 1
}

func (s *State) RemoveTask(id string) bool {
	i, ok := s.taskIndex[id]
	if !ok {
		return false
	}
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	s.reindex()
	return true
}

func (s *State) CompletedTaskCount() int {
	n := 0
	for i := range s.Tasks {
		if s.Tasks[i].Completed {
			n++
		}
	}
	return n
}

func (s *State) HasReward(id string) bool {
	for i := range s.User.Rewards {
		if s.User.Rewards[i].ID == id {
			return true
		}
	}
	return false
}

// GrantReward appends r to the user's rewards unless a reward with the same
// id was granted before. It does not credit XP or coins; that stays with the
// caller so level resolution happens in one place.
func (s *State) GrantReward(r Reward) bool {
	if s.HasReward(r.ID) {
		return false
	}
	s.User.Rewards = append(s.User.Rewards, r)
	return true
}

// Snapshot copies. Queries hand these out so callers can never mutate the
// aggregate behind the service's back.

func (s *State) UserCopy() User {
	u := s.User
	u.Avatar.Items = append([]AvatarItem(nil), s.User.Avatar.Items...)
	u.Rewards = append([]Reward(nil), s.User.Rewards...)
	if s.User.LastCompletedAt != nil {
		t := *s.User.LastCompletedAt
		u.LastCompletedAt = &t
	}
	return u
}

func (s *State) TasksCopy() []Task {
	out := make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			t.CompletedAt = &at
		}
		out[i] = t
	}
	return out
}

func (s *State) ChallengesCopy() []Challenge {
	return append([]Challenge(nil), s.Challenges...)
}
