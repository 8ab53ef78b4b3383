package engine

import (
	"context"
	"log/slog"
)

// advanceChallenges moves every active challenge forward by one qualifying
// task completion. A challenge that reaches its target flips to completed
// and pays its reward exactly once; completed challenges never move again.
// Caller holds the service mutex and runs level resolution afterwards.
func (s *Service) advanceChallenges() []string {
	u := &s.st.User
	var finished []string

	for i := range s.st.Challenges {
		c := &s.st.Challenges[i]
		if c.Completed {
			continue
		}
		c.CurrentCount++
		if c.CurrentCount < c.TargetCount {
			continue
		}
		c.CurrentCount = c.TargetCount
		c.Completed = true
		if s.st.GrantReward(c.Reward) {
			u.XP += c.Reward.XPValue
			u.Coins += c.Reward.CoinValue
		}
		finished = append(finished, c.Title)
		s.log.Debug("challenge completed",
			slog.String("id", c.ID),
			slog.String("reward", c.Reward.Name))
	}
	return finished
}

// JoinChallenge acknowledges the command without a state transition; the
// only engine-driven challenge transition is automatic, via task
// completion. Unknown ids are still rejected so callers can catch typos.
func (s *Service) JoinChallenge(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.Challenge(id) == nil {
		return NotFoundError{Kind: "challenge", ID: id}
	}
	s.log.Info("challenge joined", slog.String("id", id))
	return nil
}

// CompleteChallenge is acknowledged but carries no transition either;
// challenges complete themselves when their counter reaches the target.
func (s *Service) CompleteChallenge(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.Challenge(id) == nil {
		return NotFoundError{Kind: "challenge", ID: id}
	}
	s.log.Info("challenge completion requested", slog.String("id", id))
	return nil
}
