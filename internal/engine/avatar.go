package engine

import (
	"context"
	"log/slog"
)

// UnlockCostPerLevel is the coin cost multiplier: unlocking an item costs
// item.UnlockLevel * 50 coins.
const UnlockCostPerLevel = 50

// UnlockItem unlocks an avatar item when the user's level and coin balance
// allow it, deducting the cost. Insufficient level or coins, an unknown id
// or an already-unlocked item are silent no-ops: these are expected
// user-facing states, and callers read the returned bool (or re-query the
// profile) to tell "nothing happened" from success.
func (s *Service) UnlockItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.st.AvatarItem(id)
	if item == nil || item.Unlocked {
		s.log.Debug("unlock skipped", slog.String("item", id))
		return false
	}
	u := &s.st.User
	cost := item.UnlockLevel * UnlockCostPerLevel
	if u.Level < item.UnlockLevel || u.Coins < cost {
		s.log.Debug("unlock gated",
			slog.String("item", id),
			slog.Int("required_level", item.UnlockLevel),
			slog.Int("cost", cost))
		return false
	}

	u.Coins -= cost
	item.Unlocked = true
	s.log.Debug("item unlocked", slog.String("item", id), slog.Int("cost", cost))

	s.persist(ctx)
	return true
}

// EquipItem equips an unlocked item and unequips every other item of the
// same type, keeping at most one equipped per slot. Unknown or locked items
// are silent no-ops.
func (s *Service) EquipItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.st.AvatarItem(id)
	if target == nil || !target.Unlocked {
		s.log.Debug("equip skipped", slog.String("item", id))
		return false
	}

	items := s.st.User.Avatar.Items
	for i := range items {
		if items[i].Type == target.Type {
			items[i].Equipped = items[i].ID == id
		}
	}
	s.log.Debug("item equipped", slog.String("item", id), slog.String("type", string(target.Type)))

	s.persist(ctx)
	return true
}
