package progression

import "github.com/osse101/skillforge/internal/domain"

// Edge is a prerequisite: the node is reachable once From is at MinLevel or higher.
type Edge struct {
	From     string `json:"from"`
	MinLevel int    `json:"min_level"`
}

// Node is a read-only catalogue entry of a skill tree.
type Node struct {
	ID            string
	Name          string
	Description   string
	MaxLevel      int
	RequiredTier  domain.TokenTier
	Root          bool
	Special       bool
	Prerequisites []Edge

	// costs[i] is the token cost of reaching level i+1; validated to cover 1..MaxLevel.
	costs []int
}

// CostAtLevel returns the cost of reaching level. ok is false outside 1..MaxLevel.
func (n *Node) CostAtLevel(level int) (cost int, ok bool) {
	if level < 1 || level > n.MaxLevel {
		return 0, false
	}
	return n.costs[level-1], true
}

// Costs returns a copy of the per-level costs, index 0 being level 1.
func (n *Node) Costs() []int {
	out := make([]int, len(n.costs))
	copy(out, n.costs)
	return out
}

// SpentThrough is what reaching level cost in total.
func (n *Node) SpentThrough(level int) int {
	level = min(level, n.MaxLevel)
	total := 0
	for i := 0; i < level; i++ {
		total += n.costs[i]
	}
	return total
}

// RefundExempt reports whether a tree reset leaves this node alone.
func (n *Node) RefundExempt() bool {
	return n.Root || n.Special
}
