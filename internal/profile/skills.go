package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/skill"
	"github.com/osse101/skillforge/internal/token"
)

// LevelResult describes an award to the profile-level XP track.
type LevelResult struct {
	OldLevel     int   `json:"old_level"`
	NewLevel     int   `json:"new_level"`
	Experience   int64 `json:"experience"`
	LevelsGained int   `json:"levels_gained"`
}

// GrantXP awards skill XP to the active profile, crediting milestone tokens.
func (m *Manager) GrantXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, amount int64) (skill.XPResult, error) {
	var res skill.XPResult
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		r, err := p.Skills.AddXP(sk, amount, p.TokenLedger)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return skill.XPResult{}, err
	}

	if amount > 0 {
		m.publish(ctx, event.New(event.SkillXPGained, ownerID, p.ID, event.XPGainedPayloadV1{
			Skill:     sk,
			Amount:    amount,
			NewLevel:  res.NewLevel,
			CurrentXP: res.CurrentXP,
		}))
	}
	if res.LevelsGained > 0 {
		logger.ForOwner(ctx, ownerID).Info(LogMsgLevelUp,
			"skill", sk, "old_level", res.OldLevel, "new_level", res.NewLevel)
		m.publish(ctx, event.NewLevelUpEvent(ownerID, p.ID, sk, res.OldLevel, res.NewLevel))
	}
	if len(res.Grants) > 0 {
		granted := make(map[domain.TokenTier]int)
		for _, g := range res.Grants {
			granted[g.Tier]++
		}
		logger.ForOwner(ctx, ownerID).Info(LogMsgTokensGranted, "skill", sk, "grants", len(res.Grants))
		m.publish(ctx, event.New(event.TokensGranted, ownerID, p.ID, event.TokensGrantedPayloadV1{Skill: sk, Tokens: granted}))
	}
	return res, nil
}

// GrantProfileXP advances the profile-level track on the same curve as skills.
// It grants no tokens.
func (m *Manager) GrantProfileXP(ctx context.Context, ownerID uuid.UUID, amount int64) (LevelResult, error) {
	if amount < 0 {
		return LevelResult{}, fmt.Errorf("%w: xp amount must not be negative", domain.ErrInvalidInput)
	}
	var res LevelResult
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		level, xp, gained := skill.AddXP(p.Level, p.Experience, amount)
		res = LevelResult{OldLevel: p.Level, NewLevel: level, Experience: xp, LevelsGained: gained}
		p.Level, p.Experience = level, xp
		return nil
	})
	return res, err
}

// SetSkillLevel is an admin override. It never grants or revokes tokens.
func (m *Manager) SetSkillLevel(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, level int) (skill.State, error) {
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		return p.Skills.SetLevel(sk, level)
	})
	if err != nil {
		return skill.State{}, err
	}
	return p.Skills.Get(sk), nil
}

// SetSkillXP is an admin override. It never levels up or grants tokens.
func (m *Manager) SetSkillXP(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, xp int64) (skill.State, error) {
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		return p.Skills.SetXP(sk, xp)
	})
	if err != nil {
		return skill.State{}, err
	}
	return p.Skills.Get(sk), nil
}

// TokenBalances returns every tier's balance for a skill, zeros included.
func (m *Manager) TokenBalances(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (token.Balances, error) {
	if !sk.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownSkill, uint8(sk))
	}
	p, err := m.view(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(token.Balances, len(domain.AllTiers()))
	for _, tier := range domain.AllTiers() {
		out[tier] = p.TokenLedger.Count(sk, tier)
	}
	return out, nil
}

// UpgradeNode buys the next level of a graph tree node.
func (m *Manager) UpgradeNode(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, nodeID string) (progression.UpgradeResult, error) {
	tree, err := m.trees.Tree(sk)
	if err != nil {
		return progression.UpgradeResult{}, err
	}

	var res progression.UpgradeResult
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		r, err := tree.Upgrade(p.TreeProgress, p.TokenLedger, nodeID)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		if isGameplayRejection(err) {
			logger.ForOwner(ctx, ownerID).Debug(LogMsgNodeUpgradeRejected, "skill", sk, "node_id", nodeID, "reason", err)
		}
		return progression.UpgradeResult{}, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgNodeUpgraded,
		"skill", sk, "node_id", nodeID, "level", res.NewLevel, "cost", res.Cost)
	m.publish(ctx, event.NewNodeUpgradedEvent(ownerID, p.ID, sk, nodeID, res.NewLevel, res.Cost, res.Debited))
	return res, nil
}

// ResetTree refunds every refundable node of a skill's tree.
func (m *Manager) ResetTree(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (progression.ResetResult, error) {
	tree, err := m.trees.Tree(sk)
	if err != nil {
		return progression.ResetResult{}, err
	}

	var res progression.ResetResult
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		res = tree.Reset(p.TreeProgress, p.TokenLedger)
		return nil
	})
	if err != nil {
		return progression.ResetResult{}, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgTreeReset, "skill", sk, "nodes_reset", len(res.NodesReset))
	m.publish(ctx, event.New(event.TreeReset, ownerID, p.ID, event.TreeResetPayloadV1{
		Skill:      sk,
		NodesReset: len(res.NodesReset),
		Refunded:   res.Refunded,
	}))
	return res, nil
}

// SkillTreeView lists a skill's nodes as the active profile sees them.
func (m *Manager) SkillTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]progression.NodeView, error) {
	tree, err := m.trees.Tree(sk)
	if err != nil {
		return nil, err
	}
	p, err := m.view(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return tree.View(p.TreeProgress, p.TokenLedger), nil
}

// ClaimReward picks one option of a reward tier. Tier gates use the skill's level.
func (m *Manager) ClaimReward(ctx context.Context, ownerID uuid.UUID, sk domain.Skill, tier int, rewardID string) (reward.Reward, error) {
	tree, err := m.rewards.Tree(sk)
	if err != nil {
		return reward.Reward{}, err
	}

	var claimed reward.Reward
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		r, err := tree.Claim(p.RewardClaims, p.Skills.Get(sk).Level, tier, rewardID)
		if err != nil {
			return err
		}
		claimed = r
		return nil
	})
	if err != nil {
		if isGameplayRejection(err) {
			logger.ForOwner(ctx, ownerID).Debug(LogMsgRewardClaimRejected, "skill", sk, "tier", tier, "reward_id", rewardID, "reason", err)
		}
		return reward.Reward{}, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgRewardClaimed, "skill", sk, "tier", tier, "reward_id", rewardID)
	m.publish(ctx, event.NewRewardClaimedEvent(ownerID, p.ID, sk, tier, rewardID))
	return claimed, nil
}

// ResetRewards clears every claim for a skill and returns how many were cleared.
func (m *Manager) ResetRewards(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) (int, error) {
	tree, err := m.rewards.Tree(sk)
	if err != nil {
		return 0, err
	}

	var cleared int
	p, err := m.Update(ctx, ownerID, func(p *Profile) error {
		cleared = tree.ResetAll(p.RewardClaims)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.ForOwner(ctx, ownerID).Info(LogMsgRewardsReset, "skill", sk, "cleared", cleared)
	m.publish(ctx, event.New(event.RewardTreesReset, ownerID, p.ID, event.RewardResetPayloadV1{Cleared: cleared}))
	return cleared, nil
}

// RewardTreeView lists a skill's reward tiers with their status.
func (m *Manager) RewardTreeView(ctx context.Context, ownerID uuid.UUID, sk domain.Skill) ([]reward.TierView, error) {
	tree, err := m.rewards.Tree(sk)
	if err != nil {
		return nil, err
	}
	p, err := m.view(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return tree.View(p.RewardClaims, p.Skills.Get(sk).Level), nil
}

// RewardBonuses sums the stat bonuses of every claimed reward across all skills.
func (m *Manager) RewardBonuses(ctx context.Context, ownerID uuid.UUID) (map[string]float64, error) {
	p, err := m.view(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, sk := range m.rewards.Skills() {
		tree, err := m.rewards.Tree(sk)
		if err != nil {
			return nil, err
		}
		for stat, amount := range tree.Bonuses(p.RewardClaims) {
			out[stat] += amount
		}
	}
	return out, nil
}

// isGameplayRejection reports the expected outcomes of tree and reward actions.
func isGameplayRejection(err error) bool {
	for _, target := range []error{
		domain.ErrNodeNotEligible,
		domain.ErrInsufficientTokens,
		domain.ErrNodeMaxLevel,
		domain.ErrTierLocked,
		domain.ErrTierComplete,
		domain.ErrRewardAlreadyClaimed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
