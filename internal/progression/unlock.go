package progression

import (
	"fmt"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/token"
)

// UpgradeResult describes a successful node upgrade.
type UpgradeResult struct {
	Skill    domain.Skill   `json:"skill"`
	NodeID   string         `json:"node_id"`
	NewLevel int            `json:"new_level"`
	Cost     int            `json:"cost"`
	Debited  token.Balances `json:"debited"`
}

// ResetResult describes a tree reset.
type ResetResult struct {
	Skill      domain.Skill   `json:"skill"`
	NodesReset []string       `json:"nodes_reset"`
	Refunded   token.Balances `json:"refunded"`
}

// NodeView is one node as seen by a player.
type NodeView struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Level         int              `json:"level"`
	MaxLevel      int              `json:"max_level"`
	RequiredTier  domain.TokenTier `json:"required_tier"`
	Root          bool             `json:"root"`
	Special       bool             `json:"special"`
	Eligible      bool             `json:"eligible"`
	NextCost      int              `json:"next_cost"`
	Affordable    bool             `json:"affordable"`
	Prerequisites []Edge           `json:"prerequisites,omitempty"`
}

// Level returns a node's effective level. The root always counts as unlocked.
func (t *Tree) Level(progress Progress, node *Node) int {
	lvl := min(progress.Level(t.skill, node.ID), node.MaxLevel)
	if node.Root && lvl < 1 {
		return 1
	}
	return lvl
}

// IsEligible reports whether the node can take its next level as far as the
// graph is concerned. An unlocked node stays eligible; a locked node needs at
// least one prerequisite edge whose source meets the edge's minimum level.
func (t *Tree) IsEligible(progress Progress, nodeID string) (bool, error) {
	node, ok := t.nodes[nodeID]
	if !ok {
		return false, fmt.Errorf("%w: %s/%s", domain.ErrNodeNotFound, t.skill, nodeID)
	}
	return t.eligible(progress, node), nil
}

func (t *Tree) eligible(progress Progress, node *Node) bool {
	if t.Level(progress, node) > 0 {
		return true
	}
	for _, edge := range node.Prerequisites {
		from, ok := t.nodes[edge.From]
		if !ok {
			continue
		}
		if t.Level(progress, from) >= edge.MinLevel {
			return true
		}
	}
	return false
}

// CanAfford compares every balance at or above the node's tier with the cost of
// the level after currentLevel. A maxed node is never affordable.
func (t *Tree) CanAfford(ledger token.Ledger, node *Node, currentLevel int) bool {
	cost, ok := node.CostAtLevel(currentLevel + 1)
	if !ok {
		return false
	}
	return ledger.Available(t.skill, node.RequiredTier) >= cost
}

// Upgrade raises a node by one level, paying from ledger. On any error neither
// progress nor ledger is changed.
func (t *Tree) Upgrade(progress Progress, ledger token.Ledger, nodeID string) (UpgradeResult, error) {
	node, ok := t.nodes[nodeID]
	if !ok {
		return UpgradeResult{}, fmt.Errorf("%w: %s/%s", domain.ErrNodeNotFound, t.skill, nodeID)
	}

	current := t.Level(progress, node)
	if current >= node.MaxLevel {
		return UpgradeResult{}, fmt.Errorf("%w: %s at level %d", domain.ErrNodeMaxLevel, nodeID, current)
	}
	if !t.eligible(progress, node) {
		return UpgradeResult{}, fmt.Errorf("%w: %s", domain.ErrNodeNotEligible, nodeID)
	}

	cost, _ := node.CostAtLevel(current + 1)
	debited, ok := ledger.Spend(t.skill, node.RequiredTier, cost)
	if !ok {
		return UpgradeResult{}, fmt.Errorf("%w: %s needs %d %s+ tokens", domain.ErrInsufficientTokens, nodeID, cost, node.RequiredTier)
	}

	progress.set(t.skill, node.ID, current+1)
	return UpgradeResult{
		Skill:    t.skill,
		NodeID:   node.ID,
		NewLevel: current + 1,
		Cost:     cost,
		Debited:  debited,
	}, nil
}

// Reset clears every unlocked node except the root and special nodes, refunding
// what each level cost into the node's required tier.
func (t *Tree) Reset(progress Progress, ledger token.Ledger) ResetResult {
	res := ResetResult{Skill: t.skill, NodesReset: []string{}, Refunded: token.Balances{}}
	for _, node := range t.order {
		if node.RefundExempt() {
			continue
		}
		level := progress.Level(t.skill, node.ID)
		if level <= 0 {
			continue
		}
		refund := node.SpentThrough(level)
		if refund > 0 {
			ledger.Add(t.skill, node.RequiredTier, refund)
			res.Refunded[node.RequiredTier] += refund
		}
		progress.set(t.skill, node.ID, 0)
		res.NodesReset = append(res.NodesReset, node.ID)
	}
	return res
}

// View renders every node with the player's level, eligibility and next cost.
func (t *Tree) View(progress Progress, ledger token.Ledger) []NodeView {
	out := make([]NodeView, 0, len(t.order))
	for _, node := range t.order {
		level := t.Level(progress, node)
		next, hasNext := node.CostAtLevel(level + 1)
		eligible := hasNext && t.eligible(progress, node)
		out = append(out, NodeView{
			ID:            node.ID,
			Name:          node.Name,
			Description:   node.Description,
			Level:         level,
			MaxLevel:      node.MaxLevel,
			RequiredTier:  node.RequiredTier,
			Root:          node.Root,
			Special:       node.Special,
			Eligible:      eligible,
			NextCost:      next,
			Affordable:    eligible && t.CanAfford(ledger, node, level),
			Prerequisites: append([]Edge(nil), node.Prerequisites...),
		})
	}
	return out
}
