package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/storage"
)

// Service is the progression engine behind the command/query surface.
// A single mutex serializes every operation: the aggregate is small and the
// spec'd single-writer discipline rules out finer-grained locking.
type Service struct {
	mu    sync.Mutex
	st    *state.State
	store *storage.Store
	log   *slog.Logger

	now func() time.Time
}

// NewService loads the progress state from the store (falling back to the
// seed catalog when records are absent or unreadable) and wraps it.
func NewService(ctx context.Context, store *storage.Store, log *slog.Logger) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}
	st, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{st: st, store: store, log: log, now: time.Now}, nil
}

// persist mirrors the committed in-memory state to storage after a command.
// Best effort by design: the in-memory state is the durability boundary, so
// failures are logged and never propagated to the caller.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.st); err != nil {
		s.log.Warn("state save failed", slog.Any("error", err))
	}
}

// Tasks returns a snapshot of the task collection.
func (s *Service) Tasks() []state.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.TasksCopy()
}

// UserProfile returns a snapshot of the user profile.
func (s *Service) UserProfile() state.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.UserCopy()
}

// Challenges returns a snapshot of the challenge collection.
func (s *Service) Challenges() []state.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.ChallengesCopy()
}
