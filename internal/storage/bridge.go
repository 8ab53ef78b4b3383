package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

// Store serializes the progress state to the key-value records and back.
// Dates round-trip as RFC 3339 and enumerations as their string values, so
// a load after a save reproduces the state exactly.
type Store struct {
	kv  *KV
	log *slog.Logger
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: NewKV(db), log: log}
}

// Load reads the three records. A record that is absent or unreadable falls
// back to its seed default; a corrupt store must never take the engine down.
func (s *Store) Load(ctx context.Context) (*state.State, error) {
	now := time.Now()

	var tasks []state.Task
	if !s.loadRecord(ctx, RecordTasks, &tasks) {
		tasks = nil
	}

	user := state.SeedUser()
	if !s.loadRecord(ctx, RecordUser, &user) {
		user = state.SeedUser()
	}

	challenges := state.SeedChallenges(now)
	if !s.loadRecord(ctx, RecordChallenges, &challenges) {
		challenges = state.SeedChallenges(now)
	}

	return state.New(user, tasks, challenges), nil
}

// loadRecord reports whether v now holds a decoded stored value. Read errors
// and corrupt payloads are logged and treated as "use the default".
func (s *Store) loadRecord(ctx context.Context, key string, v any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("record unreadable, using seed default", slog.String("record", key), slog.Any("error", err))
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn("record corrupt, using seed default", slog.String("record", key), slog.Any("error", err))
		return false
	}
	return true
}

// Save mirrors the state into the three records in one transaction.
func (s *Store) Save(ctx context.Context, st *state.State) error {
	tasks, err := json.Marshal(st.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	user, err := json.Marshal(st.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	challenges, err := json.Marshal(st.Challenges)
	if err != nil {
		return fmt.Errorf("marshal challenges: %w", err)
	}

	return s.kv.PutAll(ctx, map[string][]byte{
		RecordTasks:      tasks,
		RecordUser:       user,
		RecordChallenges: challenges,
	})
}
