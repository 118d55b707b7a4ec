package reward

import (
	"fmt"

	"github.com/osse101/skillforge/internal/domain"
)

// Status of a tier for one player.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
)

// TierView is a tier as seen by a player.
type TierView struct {
	Tier
	Status  Status   `json:"status"`
	Claimed []string `json:"claimed"`
}

// Status computes a tier's status for a player at skillLevel.
func (t *Tree) Status(claims Claims, skillLevel int, number int) (Status, error) {
	tier, ok := t.Tier(number)
	if !ok {
		return "", fmt.Errorf("%w: %s tier %d", domain.ErrTierNotFound, t.skill, number)
	}
	return t.status(claims, skillLevel, tier), nil
}

func (t *Tree) status(claims Claims, skillLevel int, tier *Tier) Status {
	switch {
	case skillLevel < tier.UnlockLevel:
		return StatusLocked
	case len(claims[t.skill][tier.Number]) >= tier.RequiredSelections:
		return StatusClaimed
	default:
		return StatusAvailable
	}
}

// Claim picks rewardID from tier. It succeeds only while the tier is available,
// the reward belongs to the tier and it was not picked before.
func (t *Tree) Claim(claims Claims, skillLevel int, number int, rewardID string) (Reward, error) {
	tier, ok := t.Tier(number)
	if !ok {
		return Reward{}, fmt.Errorf("%w: %s tier %d", domain.ErrTierNotFound, t.skill, number)
	}
	r, ok := tier.Reward(rewardID)
	if !ok {
		return Reward{}, fmt.Errorf("%w: %s in tier %d", domain.ErrRewardNotFound, rewardID, number)
	}
	if claims.Has(t.skill, number, rewardID) {
		return Reward{}, fmt.Errorf("%w: %s", domain.ErrRewardAlreadyClaimed, rewardID)
	}
	switch t.status(claims, skillLevel, tier) {
	case StatusLocked:
		return Reward{}, fmt.Errorf("%w: tier %d unlocks at level %d", domain.ErrTierLocked, number, tier.UnlockLevel)
	case StatusClaimed:
		return Reward{}, fmt.Errorf("%w: tier %d", domain.ErrTierComplete, number)
	}

	claims.add(t.skill, number, rewardID)
	return r, nil
}

// ResetAll clears every claim of the tree's skill and returns how many were removed.
func (t *Tree) ResetAll(claims Claims) int {
	removed := 0
	for _, ids := range claims[t.skill] {
		removed += len(ids)
	}
	delete(claims, t.skill)
	return removed
}

// View lists every tier with status and claimed ids.
func (t *Tree) View(claims Claims, skillLevel int) []TierView {
	out := make([]TierView, 0, len(t.tiers))
	for i := range t.tiers {
		tier := &t.tiers[i]
		claimed := claims.Claimed(t.skill, tier.Number)
		if claimed == nil {
			claimed = []string{}
		}
		out = append(out, TierView{
			Tier:    *tier,
			Status:  t.status(claims, skillLevel, tier),
			Claimed: claimed,
		})
	}
	return out
}

// Bonuses sums the stat bonuses of every claimed reward, keyed by stat name.
func (t *Tree) Bonuses(claims Claims) map[string]float64 {
	out := make(map[string]float64)
	for number, ids := range claims[t.skill] {
		tier, ok := t.Tier(number)
		if !ok {
			continue
		}
		for _, id := range ids {
			if r, ok := tier.Reward(id); ok && r.Stat != "" {
				out[r.Stat] += r.Amount
			}
		}
	}
	return out
}
