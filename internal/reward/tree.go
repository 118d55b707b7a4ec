// Package reward implements the level-gated "pick N of M" reward tree. It has no
// token cost; claims are monotonic until a full reset.
package reward

import (
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/skillforge/internal/domain"
)

// ErrInvalidConfig reports a malformed reward tree document.
var ErrInvalidConfig = errors.New("invalid reward configuration")

// Reward is one selectable option of a tier.
type Reward struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Stat        string  `json:"stat,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
}

// Tier is a level-gated group of rewards.
type Tier struct {
	Number             int      `json:"tier"`
	UnlockLevel        int      `json:"unlock_level"`
	RequiredSelections int      `json:"required_selections"`
	Rewards            []Reward `json:"rewards"`
}

// Reward looks up an option by id.
func (t *Tier) Reward(id string) (Reward, bool) {
	for _, r := range t.Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// TreeConfig is the JSON document of one skill's reward tree.
type TreeConfig struct {
	Version     string       `json:"version"`
	Skill       domain.Skill `json:"skill"`
	Description string       `json:"description"`
	Tiers       []Tier       `json:"tiers"`
}

// Tree is an immutable, validated reward tree.
type Tree struct {
	skill domain.Skill
	tiers []Tier
}

// Build validates config and returns the tree with tiers ordered by number.
func Build(config *TreeConfig) (*Tree, error) {
	if config == nil || len(config.Tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers defined", ErrInvalidConfig)
	}
	if !config.Skill.Valid() {
		return nil, fmt.Errorf("%w: unknown skill", ErrInvalidConfig)
	}

	tiers := make([]Tier, len(config.Tiers))
	copy(tiers, config.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Number < tiers[j].Number })

	seenRewards := make(map[string]int)
	for i, tier := range tiers {
		if i > 0 && tiers[i-1].Number == tier.Number {
			return nil, fmt.Errorf("%w: duplicate tier %d", ErrInvalidConfig, tier.Number)
		}
		if i > 0 && tier.UnlockLevel < tiers[i-1].UnlockLevel {
			return nil, fmt.Errorf("%w: tier %d unlocks before tier %d", ErrInvalidConfig, tier.Number, tiers[i-1].Number)
		}
		if tier.UnlockLevel < 1 || tier.UnlockLevel > 100 {
			return nil, fmt.Errorf("%w: tier %d has unlock level %d", ErrInvalidConfig, tier.Number, tier.UnlockLevel)
		}
		if tier.RequiredSelections < 1 || tier.RequiredSelections > len(tier.Rewards) {
			return nil, fmt.Errorf("%w: tier %d requires %d of %d rewards", ErrInvalidConfig, tier.Number, tier.RequiredSelections, len(tier.Rewards))
		}
		for _, r := range tier.Rewards {
			if r.ID == "" {
				return nil, fmt.Errorf("%w: tier %d has a reward without id", ErrInvalidConfig, tier.Number)
			}
			if prev, dup := seenRewards[r.ID]; dup {
				return nil, fmt.Errorf("%w: reward %s appears in tiers %d and %d", ErrInvalidConfig, r.ID, prev, tier.Number)
			}
			seenRewards[r.ID] = tier.Number
		}
		tiers[i].Rewards = append([]Reward(nil), tier.Rewards...)
	}

	return &Tree{skill: config.Skill, tiers: tiers}, nil
}

// Skill is the skill this tree belongs to.
func (t *Tree) Skill() domain.Skill { return t.skill }

// Tiers returns the tiers in order.
func (t *Tree) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Tier looks up a tier by number.
func (t *Tree) Tier(number int) (*Tier, bool) {
	for i := range t.tiers {
		if t.tiers[i].Number == number {
			return &t.tiers[i], true
		}
	}
	return nil, false
}
